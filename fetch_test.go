package asyncimage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// pngBytes encodes a small RGBA image for test servers
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestFetcher_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes(t, 8, 6))
	}))
	defer srv.Close()

	f := newFetcher(newRequest(srv.URL+"/img.png"), srv.Client())
	phase, ok := f.run(context.Background())

	if !ok {
		t.Fatal("run() reported cancellation for a successful fetch")
	}
	if phase.Kind() != PhaseLoaded {
		t.Fatalf("phase = %s, expected Loaded", phase.Kind())
	}
	b := phase.Image().Bounds()
	if b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("decoded size = %dx%d, expected 8x6", b.Dx(), b.Dy())
	}
}

func TestFetcher_HTTPErrorBecomesFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := newFetcher(newRequest(srv.URL+"/missing.png"), srv.Client())
	phase, ok := f.run(context.Background())

	if !ok {
		t.Fatal("an HTTP error is a failure, not a cancellation")
	}
	if phase.Kind() != PhaseFailed {
		t.Fatalf("phase = %s, expected Failed", phase.Kind())
	}

	var statusErr *StatusError
	if !errors.As(phase.Err(), &statusErr) {
		t.Fatalf("error %v should carry a *StatusError", phase.Err())
	}
	if statusErr.Code != http.StatusNotFound {
		t.Errorf("status code = %d, expected 404", statusErr.Code)
	}
}

func TestFetcher_DecodeFailureBecomesFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not an image"))
	}))
	defer srv.Close()

	f := newFetcher(newRequest(srv.URL+"/img.png"), srv.Client())
	phase, ok := f.run(context.Background())

	if !ok {
		t.Fatal("a decode failure is a failure, not a cancellation")
	}
	if phase.Kind() != PhaseFailed {
		t.Fatalf("phase = %s, expected Failed", phase.Kind())
	}
	if !errors.Is(phase.Err(), ErrDecode) {
		t.Errorf("error %v should wrap ErrDecode", phase.Err())
	}
}

func TestFetcher_CancellationDeliversNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan bool, 1)

	f := newFetcher(newRequest(srv.URL+"/img.png"), srv.Client())
	go func() {
		_, ok := f.run(ctx)
		done <- ok
	}()

	cancel()

	select {
	case ok := <-done:
		if ok {
			t.Error("a cancelled fetch must not resolve a phase")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled fetch did not return")
	}
}

func TestFetcher_CancellationDuringDecodeDeliversNothing(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Send only the PNG signature, then stall so the decoder blocks
		// reading the body until the fetch is cancelled.
		w.Write([]byte("\x89PNG\r\n\x1a\n"))
		if fl, ok := w.(http.Flusher); ok {
			fl.Flush()
		}
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan bool, 1)

	f := newFetcher(newRequest(srv.URL+"/img.png"), srv.Client())
	go func() {
		_, ok := f.run(ctx)
		done <- ok
	}()

	<-started
	cancel()

	select {
	case ok := <-done:
		if ok {
			t.Error("cancellation observed mid-decode must not resolve a phase")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled fetch did not return")
	}
}

func TestFetcher_TimeoutBecomesFailed(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	request := newRequest(srv.URL + "/img.png")
	request.timeout = 50 * time.Millisecond

	f := newFetcher(request, srv.Client())
	phase, ok := f.run(context.Background())

	if !ok {
		t.Fatal("a timeout is a failure, not a cancellation")
	}
	if phase.Kind() != PhaseFailed {
		t.Fatalf("phase = %s, expected Failed", phase.Kind())
	}
	if !errors.Is(phase.Err(), context.DeadlineExceeded) {
		t.Errorf("error %v should wrap context.DeadlineExceeded", phase.Err())
	}
}

func TestFetcher_SendsPolicyHeaders(t *testing.T) {
	headers := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Get("Cache-Control")
		w.Write(pngBytes(t, 1, 1))
	}))
	defer srv.Close()

	request := newRequest(srv.URL + "/img.png")
	request.policy = CacheIgnoreLocal

	f := newFetcher(request, srv.Client())
	if phase, _ := f.run(context.Background()); phase.Kind() != PhaseLoaded {
		t.Fatalf("phase = %s, expected Loaded", phase.Kind())
	}
	if got := <-headers; got != "no-cache" {
		t.Errorf("Cache-Control on the wire = %q, expected no-cache", got)
	}
}
