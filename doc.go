package asyncimage

// Package asyncimage provides a Fyne widget that loads a remote image
// asynchronously and cross-fades between rendered load phases. The caller
// supplies a pure render function mapping each phase (idle, loaded, failed)
// to a canvas object; the widget owns the fetch lifecycle, binding it to
// visibility: one fetch starts when the widget appears and is cancelled when
// it disappears. Response caching is delegated entirely to the HTTP client's
// transport via request cache-control directives.
