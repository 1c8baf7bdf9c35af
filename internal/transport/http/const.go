package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 15 * time.Second

	// DefaultMaxLogLength caps how much of a request or response dump is logged.
	DefaultMaxLogLength uint64 = 4096

	// DefaultUserAgent mimics a desktop browser; lyrics.com rejects obvious bot agents.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36" //nolint: lll
)
