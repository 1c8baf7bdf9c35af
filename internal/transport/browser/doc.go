// Package browser renders web pages with a headless Chromium driven by go-rod.
// It backs the "browser" fetch mode, used when a site refuses plain HTTP clients.
package browser
