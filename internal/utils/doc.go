// Package utils provides small helpers shared across the application:
// content type checks for HTTP logging, text normalization for scraped lyrics,
// case-insensitive term matching and the User-Agent provider used by the HTTP transport.
package utils
