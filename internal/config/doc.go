// Package config loads, validates and saves the lyrics-grabber settings.
// The Genius token from the environment wins over the YAML file,
// and the file wins over built-in defaults.
package config
