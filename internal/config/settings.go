package config

import (
	"time"

	"fyne.io/fyne/v2"

	asyncimage "github.com/valvoline/CachedAsyncImage"
)

// Settings keys for Fyne preferences
const (
	KeyCachePolicy    = "cache_policy"
	KeyTimeoutSeconds = "fetch_timeout_seconds"
	KeyFadeMillis     = "fade_duration_millis"
	KeyGalleryURLs    = "gallery_urls"
)

// Default values
const (
	DefaultTimeoutSeconds = 60
	DefaultFadeMillis     = 300
	MinTimeoutSeconds     = 1
)

// DefaultGalleryURLs seeds a first-run gallery
var DefaultGalleryURLs = []string{
	"https://picsum.photos/seed/valvoline/400/300",
	"https://picsum.photos/seed/asyncimage/400/300",
}

// Settings manages demo application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCachePolicy returns the cache policy applied to new gallery images
func (s *Settings) GetCachePolicy() asyncimage.CachePolicy {
	value := s.app.Preferences().String(KeyCachePolicy)
	for _, policy := range s.GetCachePolicyOptions() {
		if value == string(policy) {
			return policy
		}
	}
	return asyncimage.CacheUseCached
}

// SetCachePolicy sets the cache policy for new gallery images
func (s *Settings) SetCachePolicy(policy asyncimage.CachePolicy) {
	s.app.Preferences().SetString(KeyCachePolicy, string(policy))
}

// GetCachePolicyOptions returns the selectable cache policies
func (s *Settings) GetCachePolicyOptions() []asyncimage.CachePolicy {
	return []asyncimage.CachePolicy{
		asyncimage.CacheUseCached,
		asyncimage.CacheIgnoreLocal,
		asyncimage.CacheReloadAndStore,
		asyncimage.CacheOnly,
	}
}

// GetTimeout returns the fetch timeout for new gallery images
func (s *Settings) GetTimeout() time.Duration {
	seconds := s.app.Preferences().IntWithFallback(KeyTimeoutSeconds, DefaultTimeoutSeconds)
	if seconds < MinTimeoutSeconds {
		seconds = DefaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// SetTimeoutSeconds sets the fetch timeout in whole seconds
func (s *Settings) SetTimeoutSeconds(seconds int) {
	if seconds < MinTimeoutSeconds {
		seconds = MinTimeoutSeconds
	}
	s.app.Preferences().SetInt(KeyTimeoutSeconds, seconds)
}

// GetFadeDuration returns the cross-fade duration for new gallery images
func (s *Settings) GetFadeDuration() time.Duration {
	millis := s.app.Preferences().IntWithFallback(KeyFadeMillis, DefaultFadeMillis)
	if millis < 0 {
		millis = DefaultFadeMillis
	}
	return time.Duration(millis) * time.Millisecond
}

// SetFadeMillis sets the cross-fade duration in milliseconds
func (s *Settings) SetFadeMillis(millis int) {
	if millis < 0 {
		millis = 0
	}
	s.app.Preferences().SetInt(KeyFadeMillis, millis)
}

// GetGalleryURLs returns the persisted gallery, seeding defaults on first run
func (s *Settings) GetGalleryURLs() []string {
	urls := s.app.Preferences().StringList(KeyGalleryURLs)
	if len(urls) == 0 {
		s.SetGalleryURLs(DefaultGalleryURLs)
		return append([]string(nil), DefaultGalleryURLs...)
	}
	return urls
}

// SetGalleryURLs persists the gallery image list
func (s *Settings) SetGalleryURLs(urls []string) {
	s.app.Preferences().SetStringList(KeyGalleryURLs, urls)
}
