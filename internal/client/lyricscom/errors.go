package lyricscom

import "errors"

// Static error definitions for better error handling.
var (
	// ErrRequestFailed indicates that the page could not be downloaded at all.
	ErrRequestFailed = errors.New("request to lyrics.com failed")
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrPageTooLarge indicates that a page exceeded the configured size limit.
	ErrPageTooLarge = errors.New("page exceeds size limit")
	// ErrMalformedHTML indicates that the page could not be parsed as HTML.
	ErrMalformedHTML = errors.New("malformed HTML")
)
