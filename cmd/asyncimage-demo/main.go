package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/valvoline/CachedAsyncImage/internal/config"
	"github.com/valvoline/CachedAsyncImage/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.valvoline.cachedasyncimage.demo"
	AppName = "AsyncImage Gallery"

	WindowWidth  = 920
	WindowHeight = 640
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewGalleryTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	gallery := ui.NewGallery(myWindow, settings)
	myWindow.SetContent(gallery.Build())

	// Show and run
	myWindow.ShowAndRun()
}
