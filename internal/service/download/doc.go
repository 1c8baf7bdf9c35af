// Package download fetches the audio of a chosen song with yt-dlp
// and optionally embeds its lyrics into the downloaded file.
package download
