package lyricscom

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	return doc
}

func TestParseSongLinks(t *testing.T) {
	t.Parallel()

	baseURL, err := url.Parse("https://www.lyrics.com")
	require.NoError(t, err)

	doc := mustDocument(t, `<html><body>
		<a href="/artist/Adele">Adele</a>
		<a href="/lyric/1/Adele/Hello">Hello</a>
		<a href="/lyric/1/Adele/Hello">Hello again</a>
		<a href="https://elsewhere.example/lyric/9">External</a>
		<a href="/lyric/2/Lionel+Richie/Hello">Hello</a>
		<a>No href</a>
		<a href="/lyric/3/Evanescence/Hello">Hello</a>
	</body></html>`)

	links := parseSongLinks(doc, baseURL, 10)
	assert.Equal(t, []string{
		"https://www.lyrics.com/lyric/1/Adele/Hello",
		"https://www.lyrics.com/lyric/2/Lionel+Richie/Hello",
		"https://www.lyrics.com/lyric/3/Evanescence/Hello",
	}, links)

	assert.Len(t, parseSongLinks(doc, baseURL, 2), 2)
	assert.Empty(t, parseSongLinks(doc, baseURL, 0))
	assert.Empty(t, parseSongLinks(mustDocument(t, "<p>No results</p>"), baseURL, 10))

	// A huge limit is bounded by the document, not preallocated.
	assert.Len(t, parseSongLinks(doc, baseURL, 1<<40), 3)
}

func TestParseSongPage(t *testing.T) {
	t.Parallel()

	longLine := strings.Repeat("la ", 40)

	tests := []struct {
		name     string
		html     string
		expected SongPage
	}{
		{
			name: "regular song page",
			html: `<h1 id="lyric-title-text">Hello Lyrics</h1>
				<h3><a href="/artist/Adele">Adele</a></h3>
				<pre id="lyric-body-text">Hello, it's me<br>
I was wondering if after all these years you'd like to meet</pre>`,
			expected: SongPage{
				Title:  "Hello",
				Artist: "Adele",
				Lyrics: "Hello, it's me\nI was wondering if after all these years you'd like to meet",
			},
		},
		{
			name: "artist from link and long pre fallback",
			html: `<h1>Someone Like You</h1>
				<a href="/artist/Adele">Adele Lyrics</a>
				<pre>` + longLine + "\n" + longLine + `</pre>`,
			expected: SongPage{
				Title:  "Someone Like You",
				Artist: "Adele",
				Lyrics: strings.TrimSpace(longLine) + "\n" + strings.TrimSpace(longLine),
			},
		},
		{
			name: "longest multi-line div",
			html: `<h1>Song</h1><h3>Band</h3>
				<pre>short</pre>
				<div><p>one</p><p>two</p></div>
				<div><p>` + longLine + `</p><p>second</p><p>third</p></div>`,
			expected: SongPage{
				Title:  "Song",
				Artist: "Band",
				Lyrics: strings.TrimSpace(longLine) + "\nsecond\nthird",
			},
		},
		{
			name: "nothing recognizable",
			html: `<p>Page moved</p>`,
			expected: SongPage{
				Title:  UnknownTitle,
				Artist: UnknownArtist,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := parseSongPage(mustDocument(t, tt.html), "https://www.lyrics.com/lyric/1")

			assert.Equal(t, "https://www.lyrics.com/lyric/1", page.URL)
			assert.Equal(t, tt.expected.Title, page.Title)
			assert.Equal(t, tt.expected.Artist, page.Artist)
			assert.Equal(t, tt.expected.Lyrics, page.Lyrics)
			assert.Equal(t, tt.expected.Lyrics != "", page.HasLyrics())
		})
	}
}

func TestTextLines_SkipsScripts(t *testing.T) {
	t.Parallel()

	doc := mustDocument(t, `<div id="x">first<script>var a = 1;</script><br/> second <!-- note --></div>`)

	assert.Equal(t, "first\nsecond", textLines(doc.Find("#x")))
}
