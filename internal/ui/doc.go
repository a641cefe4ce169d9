package ui

// Package ui contains the Fyne-based interface of the demo gallery: a grid
// of remote images rendered through the asyncimage widget, plus the settings
// dialog and theme. It exists to exercise the library the way a consumer
// would, including the replace-the-instance retry contract.
