// Package http provides custom HTTP transport utilities,
// including request/response logging and User-Agent header injection.
// NewClient assembles them into the *http.Client shared by the lyrics clients.
package http
