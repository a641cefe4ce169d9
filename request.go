package asyncimage

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// CachePolicy instructs the HTTP transport how to use or bypass previously
// stored responses. Policies map onto standard request cache-control
// directives; the widget itself keeps no cache of its own.
type CachePolicy string

const (
	// CacheUseCached honors whatever the transport has cached (default)
	CacheUseCached CachePolicy = "UseCached"

	// CacheIgnoreLocal forces revalidation, bypassing locally stored responses
	CacheIgnoreLocal CachePolicy = "IgnoreLocal"

	// CacheReloadAndStore refetches from origin and lets caches store the result
	CacheReloadAndStore CachePolicy = "ReloadAndStore"

	// CacheOnly answers only from cache and never reaches the origin
	CacheOnly CachePolicy = "CacheOnly"
)

// Default construction values
const (
	DefaultTimeout = 60 * time.Second
)

// String returns the string representation of CachePolicy
func (cp CachePolicy) String() string {
	return string(cp)
}

// apply sets the request headers implementing the policy
func (cp CachePolicy) apply(h http.Header) {
	switch cp {
	case CacheIgnoreLocal:
		h.Set("Cache-Control", "no-cache")
	case CacheReloadAndStore:
		h.Set("Cache-Control", "no-cache")
		h.Set("Pragma", "no-cache")
	case CacheOnly:
		h.Set("Cache-Control", "only-if-cached")
	}
}

// Request is the immutable descriptor of one outbound image fetch: a target
// URL or a fully pre-built request (mutually exclusive), a cache policy, a
// timeout, and an optional explicit rendering scale. A Request that carries
// neither a URL nor a pre-built request never triggers a fetch.
type Request struct {
	url     string
	raw     *http.Request
	policy  CachePolicy
	timeout time.Duration
	scale   float32
}

// newRequest returns a descriptor for url with default policy and timeout
func newRequest(url string) *Request {
	return &Request{
		url:     url,
		policy:  CacheUseCached,
		timeout: DefaultTimeout,
	}
}

// newRawRequest wraps a caller-built request. The raw request's own headers
// survive; only the cache policy headers are layered on top.
func newRawRequest(raw *http.Request) *Request {
	return &Request{
		raw:     raw,
		policy:  CacheUseCached,
		timeout: DefaultTimeout,
	}
}

// valid reports whether the descriptor can produce an outbound request
func (r *Request) valid() bool {
	return r != nil && (r.url != "" || r.raw != nil)
}

// Timeout returns the fetch deadline applied to the whole operation
func (r *Request) Timeout() time.Duration {
	if r == nil || r.timeout <= 0 {
		return DefaultTimeout
	}
	return r.timeout
}

// Policy returns the cache policy the fetch will advertise
func (r *Request) Policy() CachePolicy {
	if r == nil || r.policy == "" {
		return CacheUseCached
	}
	return r.policy
}

// build produces the outbound request bound to ctx with policy headers applied
func (r *Request) build(ctx context.Context) (*http.Request, error) {
	if !r.valid() {
		return nil, fmt.Errorf("no request configured")
	}

	var req *http.Request
	if r.raw != nil {
		req = r.raw.Clone(ctx)
	} else {
		var err error
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
		if err != nil {
			return nil, fmt.Errorf("build request for %s: %w", r.url, err)
		}
	}

	r.Policy().apply(req.Header)
	return req, nil
}

// target returns the request URL for logging
func (r *Request) target() string {
	if r == nil {
		return ""
	}
	if r.raw != nil && r.raw.URL != nil {
		return r.raw.URL.String()
	}
	return r.url
}
