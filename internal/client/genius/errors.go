package genius

import "errors"

// Static error definitions for better error handling.
var (
	// ErrMissingAccessToken indicates that the client was created without a token.
	ErrMissingAccessToken = errors.New("genius access token is missing")
	// ErrRequestFailed indicates that Genius could not be reached.
	ErrRequestFailed = errors.New("request to Genius failed")
	// ErrUnauthorized indicates that Genius rejected the access token.
	ErrUnauthorized = errors.New("genius rejected the access token")
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrMalformedResponse indicates that a response could not be decoded.
	ErrMalformedResponse = errors.New("malformed Genius response")
	// ErrPageTooLarge indicates that a song page exceeded the configured size limit.
	ErrPageTooLarge = errors.New("page exceeds size limit")
)
