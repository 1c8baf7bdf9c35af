// Package lyricscom scrapes lyrics.com.
//
// There is no public API, so the client downloads the search results page,
// follows the song links it finds and extracts title, artist and lyrics
// from each song page with goquery. Requests are spaced by a polite delay
// and parsed song pages are kept in an LRU cache.
package lyricscom
