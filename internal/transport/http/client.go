package http

import (
	"net/http"
	"time"

	"github.com/oshokin/lyrics-grabber/internal/utils"
)

// ClientOptions configures NewClient.
type ClientOptions struct {
	// Timeout bounds a whole request, including reading the body.
	Timeout time.Duration
	// UserAgent overrides DefaultUserAgent when set.
	UserAgent string
	// Base is the innermost transport, http.DefaultTransport when nil.
	Base http.RoundTripper
}

// NewClient builds an *http.Client whose transport chain is
// User-Agent injection -> debug logging -> base.
func NewClient(opts ClientOptions) *http.Client {
	base := opts.Base
	if base == nil {
		base = http.DefaultTransport
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &http.Client{
		Transport: NewUserAgentInjector(
			NewLogTransport(base, 0),
			utils.NewSimpleUserAgentProvider(userAgent)),
		Timeout: timeout,
	}
}
