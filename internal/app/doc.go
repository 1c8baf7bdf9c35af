// Package app wires clients and services together and runs the interactive
// scrape and Genius sessions behind the CLI commands.
package app
