package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	asyncimage "github.com/valvoline/CachedAsyncImage"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestCachePolicy(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if policy := settings.GetCachePolicy(); policy != asyncimage.CacheUseCached {
		t.Errorf("Expected default policy %s, got %s", asyncimage.CacheUseCached, policy)
	}

	// Test setting custom value
	settings.SetCachePolicy(asyncimage.CacheIgnoreLocal)
	if policy := settings.GetCachePolicy(); policy != asyncimage.CacheIgnoreLocal {
		t.Errorf("Expected policy %s, got %s", asyncimage.CacheIgnoreLocal, policy)
	}

	// Unknown stored values fall back to the default
	app.Preferences().SetString(KeyCachePolicy, "bogus")
	if policy := settings.GetCachePolicy(); policy != asyncimage.CacheUseCached {
		t.Errorf("Expected fallback policy %s, got %s", asyncimage.CacheUseCached, policy)
	}
}

func TestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if timeout := settings.GetTimeout(); timeout != DefaultTimeoutSeconds*time.Second {
		t.Errorf("Expected default timeout %ds, got %s", DefaultTimeoutSeconds, timeout)
	}

	settings.SetTimeoutSeconds(5)
	if timeout := settings.GetTimeout(); timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %s", timeout)
	}

	// Values below the minimum are clamped
	settings.SetTimeoutSeconds(0)
	if timeout := settings.GetTimeout(); timeout != MinTimeoutSeconds*time.Second {
		t.Errorf("Expected clamped timeout %ds, got %s", MinTimeoutSeconds, timeout)
	}
}

func TestFadeDuration(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if fade := settings.GetFadeDuration(); fade != DefaultFadeMillis*time.Millisecond {
		t.Errorf("Expected default fade %dms, got %s", DefaultFadeMillis, fade)
	}

	settings.SetFadeMillis(0)
	if fade := settings.GetFadeDuration(); fade != 0 {
		t.Errorf("Expected zero fade to disable the animation, got %s", fade)
	}
}

func TestGalleryURLs(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// First run seeds the defaults
	urls := settings.GetGalleryURLs()
	if len(urls) != len(DefaultGalleryURLs) {
		t.Errorf("Expected %d seeded URLs, got %d", len(DefaultGalleryURLs), len(urls))
	}

	custom := []string{"https://example.com/a.png"}
	settings.SetGalleryURLs(custom)

	urls = settings.GetGalleryURLs()
	if len(urls) != 1 || urls[0] != custom[0] {
		t.Errorf("Expected persisted gallery %v, got %v", custom, urls)
	}
}
