package asyncimage

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"net/http"

	// Stdlib codecs registered for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"

	// Extended codecs so common web formats decode out of the box.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode marks response bytes that could not be decoded into an image.
// Decode failures surface as a failed phase like any other fetch error.
var ErrDecode = errors.New("undecodable image data")

// StatusError reports a response with a non-success HTTP status
type StatusError struct {
	Code   int
	Status string
}

// Error returns the error message
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status: %s", e.Status)
}

// fetcher performs exactly one image fetch and resolves it into a phase
type fetcher struct {
	request *Request
	client  *http.Client
	id      string // short correlation id for log lines
}

// newFetcher creates a fetcher for the given descriptor. A nil client falls
// back to http.DefaultClient.
func newFetcher(request *Request, client *http.Client) *fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &fetcher{
		request: request,
		client:  client,
		id:      uuid.NewString()[:8],
	}
}

// run executes the fetch and returns the resolved phase. The second return
// is false when cancellation was observed, in which case no phase may be
// delivered at all.
func (f *fetcher) run(ctx context.Context) (Phase, bool) {
	ctx, cancel := context.WithTimeout(ctx, f.request.Timeout())
	defer cancel()

	img, err := f.fetch(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("asyncimage: fetch %s cancelled: %s", f.id, f.request.target())
			return Phase{}, false
		}
		log.Printf("asyncimage: fetch %s failed: %v", f.id, err)
		return Failed(err), true
	}

	b := img.Bounds()
	log.Printf("asyncimage: fetch %s loaded %dx%d: %s", f.id, b.Dx(), b.Dy(), f.request.target())
	return Loaded(img), true
}

// fetch performs the request and decodes the response body
func (f *fetcher) fetch(ctx context.Context) (image.Image, error) {
	req, err := f.request.build(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", f.request.target(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	img, format, err := image.Decode(resp.Body)
	if err != nil {
		// A cancelled body read surfaces through the decoder; report it
		// as cancellation, not as bad image data.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fetch %s: %w", f.request.target(), ctx.Err())
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	log.Printf("asyncimage: fetch %s decoded %s image", f.id, format)

	return img, nil
}
