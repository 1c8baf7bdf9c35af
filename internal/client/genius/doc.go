// Package genius is a client for Genius.
//
// Searches and artist/album listings go to the JSON APIs: the public one
// under genius.com/api and the authenticated one at api.genius.com, both
// called with the bearer access token. Lyrics are not exposed by either API,
// so they are scraped from the song page and cached per URL.
package genius
