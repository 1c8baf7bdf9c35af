package browser

import "errors"

// Static error definitions for better error handling.
var (
	// ErrFetcherClosed indicates that FetchHTML was called after Close.
	ErrFetcherClosed = errors.New("browser fetcher is closed")
	// ErrEmptyURL indicates that no page address was given.
	ErrEmptyURL = errors.New("page URL is empty")
)
