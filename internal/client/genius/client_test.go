package genius

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/lyrics-grabber/internal/config"
)

const (
	testToken = "test-token"

	lyricsSearchJSON = `{"meta":{"status":200},"response":{"sections":[
		{"type":"lyric","hits":[
			{"index":"lyric","type":"song","result":{"id":1,"title":"Bohemian Rhapsody","url":"%[1]s/Queen-bohemian-rhapsody-lyrics","primary_artist":{"id":10,"name":"Queen"}}},
			{"index":"lyric","type":"song","result":{"id":2,"title":"Bohemian Rhapsody (Live)","url":"%[1]s/Queen-bohemian-rhapsody-live-lyrics","primary_artist":{"id":10,"name":"Queen"}}}
		]},
		{"type":"top_hit","hits":[]}
	]}}`

	searchJSON = `{"meta":{"status":200},"response":{"hits":[
		{"index":"song","type":"song","result":{"id":1,"title":"Bohemian Rhapsody","url":"https://genius.com/Queen-bohemian-rhapsody-lyrics","primary_artist":{"id":10,"name":"Queen"},"song_art_image_url":"https://images.genius.com/art.jpg"}}
	]}}`

	albumsJSON = `{"meta":{"status":200},"response":{"albums":[
		{"id":20,"name":"A Night at the Opera","url":"https://genius.com/albums/Queen/A-night-at-the-opera","cover_art_url":"https://images.genius.com/opera.jpg"}
	],"next_page":2}}`

	tracksJSON = `{"meta":{"status":200},"response":{"tracks":[
		{"number":11,"song":{"id":1,"title":"Bohemian Rhapsody","url":"https://genius.com/Queen-bohemian-rhapsody-lyrics","primary_artist":{"id":10,"name":"Queen"}}}
	],"next_page":null}}`

	songsJSON = `{"meta":{"status":200},"response":{"songs":[
		{"id":1,"title":"Bohemian Rhapsody","url":"https://genius.com/Queen-bohemian-rhapsody-lyrics","primary_artist":{"id":10,"name":"Queen"}}
	],"next_page":null}}`

	songPageHTML = `<html><body><div data-lyrics-container="true">Is this the real life?<br>Is this just fantasy?</div></body></html>`
)

type geniusServer struct {
	server      *httptest.Server
	pageHits    atomic.Int32
	pageAuth    atomic.Value
	lastQuery   atomic.Value
	lastPerPage atomic.Value
}

func newGeniusServer(t *testing.T) *geniusServer {
	t.Helper()

	gs := &geniusServer{}

	writeJSON := func(w http.ResponseWriter, body string) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/search/lyrics", func(w http.ResponseWriter, r *http.Request) {
		gs.lastQuery.Store(r.URL.Query().Get("q"))
		writeJSON(w, fmt.Sprintf(lyricsSearchJSON, gs.server.URL))
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		gs.lastQuery.Store(r.URL.Query().Get("q"))
		writeJSON(w, searchJSON)
	})
	mux.HandleFunc("/api/artists/10/albums", func(w http.ResponseWriter, r *http.Request) {
		gs.lastPerPage.Store(r.URL.Query().Get("per_page") + "/" + r.URL.Query().Get("page"))
		writeJSON(w, albumsJSON)
	})
	mux.HandleFunc("/api/albums/20/tracks", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, tracksJSON)
	})
	mux.HandleFunc("/artists/10/songs", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, songsJSON)
	})
	mux.HandleFunc("/artists/66/songs", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{"meta":{"status":404,"message":"Not found"},"response":{}}`)
	})
	// Song pages live on the public website and never see the token.
	pages := http.NewServeMux()
	pages.HandleFunc("/Queen-bohemian-rhapsody-lyrics", func(w http.ResponseWriter, r *http.Request) {
		gs.pageHits.Add(1)
		gs.pageAuth.Store(r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(songPageHTML))
	})
	pages.HandleFunc("/Queen-blocked-lyrics", func(w http.ResponseWriter, r *http.Request) {
		gs.pageAuth.Store(r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("/garbage", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, "{not json")
	})

	gs.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, pattern := pages.Handler(r); pattern != "" {
			handler.ServeHTTP(w, r)

			return
		}

		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}

		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(gs.server.Close)

	return gs
}

func testConfig(baseURL, token string) *config.Config {
	return &config.Config{
		GeniusAccessToken:    token,
		GeniusWebBaseURL:     baseURL,
		GeniusAPIBaseURL:     baseURL,
		PageCacheSize:        8,
		ParsedRequestTimeout: 5 * time.Second,
		ParsedMaxPageSize:    1 << 20,
	}
}

func newTestClient(t *testing.T, gs *geniusServer, token string) *ClientImpl {
	t.Helper()

	client, err := NewClient(testConfig(gs.server.URL, token))
	require.NoError(t, err)

	impl, ok := client.(*ClientImpl)
	require.True(t, ok)

	return impl
}

func TestNewClient_RequiresToken(t *testing.T) {
	t.Parallel()

	client, err := NewClient(testConfig("https://genius.com", "  "))
	require.ErrorIs(t, err, ErrMissingAccessToken)
	assert.Nil(t, client)
}

func TestClientImpl_SearchLyrics(t *testing.T) {
	t.Parallel()

	gs := newGeniusServer(t)
	client := newTestClient(t, gs, testToken)

	hits, err := client.SearchLyrics(context.Background(), "  is this the real life  ")
	require.NoError(t, err)
	require.Len(t, hits, 2)

	assert.Equal(t, "is this the real life", gs.lastQuery.Load())
	assert.Equal(t, HitTypeSong, hits[0].Type)
	assert.Equal(t, "Bohemian Rhapsody", hits[0].Result.Title)
	assert.Equal(t, "Queen", hits[0].Result.ArtistName())
	assert.Equal(t, "Bohemian Rhapsody (Live)", hits[1].Result.Title)
}

func TestClientImpl_SearchLyrics_EmptyFragment(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, newGeniusServer(t), testToken)

	hits, err := client.SearchLyrics(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestClientImpl_SearchSongs(t *testing.T) {
	t.Parallel()

	gs := newGeniusServer(t)
	client := newTestClient(t, gs, testToken)

	hits, err := client.SearchSongs(context.Background(), "Bohemian Rhapsody Queen")
	require.NoError(t, err)
	require.Len(t, hits, 1)

	assert.Equal(t, "Bohemian Rhapsody Queen", gs.lastQuery.Load())
	assert.Equal(t, "https://images.genius.com/art.jpg", hits[0].Result.ArtworkURL())
}

func TestClientImpl_Listings(t *testing.T) {
	t.Parallel()

	gs := newGeniusServer(t)
	client := newTestClient(t, gs, testToken)
	ctx := context.Background()

	albums, err := client.GetArtistAlbums(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, albums.Albums, 1)
	assert.Equal(t, "A Night at the Opera", albums.Albums[0].Name)
	assert.Equal(t, 2, albums.NextPage)
	assert.Equal(t, "50/1", gs.lastPerPage.Load())

	tracks, err := client.GetAlbumTracks(ctx, 20, 1)
	require.NoError(t, err)
	require.Len(t, tracks.Tracks, 1)
	assert.Equal(t, 11, tracks.Tracks[0].Number)
	assert.Zero(t, tracks.NextPage)

	songs, err := client.GetArtistSongs(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, songs.Songs, 1)
	assert.Equal(t, "Bohemian Rhapsody", songs.Songs[0].Title)
}

func TestClientImpl_FetchLyrics_UsesCache(t *testing.T) {
	t.Parallel()

	gs := newGeniusServer(t)
	client := newTestClient(t, gs, testToken)
	songURL := gs.server.URL + "/Queen-bohemian-rhapsody-lyrics"

	lyrics, err := client.FetchLyrics(context.Background(), songURL)
	require.NoError(t, err)
	assert.Equal(t, "Is this the real life?\nIs this just fantasy?", lyrics)

	lyrics, err = client.FetchLyrics(context.Background(), songURL)
	require.NoError(t, err)
	assert.NotEmpty(t, lyrics)
	assert.EqualValues(t, 1, gs.pageHits.Load())
	assert.Empty(t, gs.pageAuth.Load(), "song pages are fetched without the access token")
}

func TestClientImpl_FetchLyrics_BlockedPageIsNotAuthError(t *testing.T) {
	t.Parallel()

	gs := newGeniusServer(t)
	client := newTestClient(t, gs, testToken)

	_, err := client.FetchLyrics(context.Background(), gs.server.URL+"/Queen-blocked-lyrics")
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
	require.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "403")
	assert.Empty(t, gs.pageAuth.Load())
}

func TestClientImpl_Errors(t *testing.T) {
	t.Parallel()

	gs := newGeniusServer(t)
	ctx := context.Background()

	_, err := newTestClient(t, gs, "wrong-token").SearchLyrics(ctx, "hello")
	require.ErrorIs(t, err, ErrUnauthorized)

	client := newTestClient(t, gs, testToken)

	_, err = client.GetArtistSongs(ctx, 66, 1)
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
	assert.Contains(t, err.Error(), "Not found")

	_, err = client.GetAlbumTracks(ctx, 404, 1)
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)

	_, err = fetchJSON[hitsResponse](client, ctx, gs.server.URL, "garbage", nil)
	require.ErrorIs(t, err, ErrMalformedResponse)

	client.apiURL = "http://127.0.0.1:1"
	_, err = client.SearchSongs(ctx, "anything")
	require.ErrorIs(t, err, ErrRequestFailed)
}

func TestCheckStatus(t *testing.T) {
	t.Parallel()

	require.NoError(t, checkStatus(http.StatusOK))
	require.ErrorIs(t, checkStatus(http.StatusUnauthorized), ErrUnauthorized)
	require.ErrorIs(t, checkStatus(http.StatusForbidden), ErrUnauthorized)
	require.ErrorIs(t, checkStatus(http.StatusTooManyRequests), ErrUnexpectedHTTPStatus)
}
