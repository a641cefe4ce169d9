package config

// Package config persists the demo gallery settings through Fyne
// Preferences: the cache policy, fetch timeout, cross-fade duration and
// the list of gallery URLs. Readers validate stored values and fall back
// to defaults, so callers never see an unusable setting.
