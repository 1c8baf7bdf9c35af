package lyrics

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/lyrics-grabber/internal/client/lyricscom"
	mock_lyricscom "github.com/oshokin/lyrics-grabber/internal/client/lyricscom/mocks"
	"github.com/oshokin/lyrics-grabber/internal/config"
)

var errPageBroken = errors.New("page broken")

func newScrapeTestService(t *testing.T, maxResults int64) (ScrapeService, *mock_lyricscom.MockClient, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mock_lyricscom.NewMockClient(ctrl)
	progress := new(bytes.Buffer)

	return NewScrapeService(&config.Config{MaxResults: maxResults}, client, progress), client, progress
}

func helloPages() []*lyricscom.SongPage {
	return []*lyricscom.SongPage{
		{URL: "https://www.lyrics.com/lyric/1/Adele/Hello", Title: "Hello", Artist: "Adele", Lyrics: "Hello, it's me"},
		{URL: "https://www.lyrics.com/lyric/2/Lionel+Richie/Hello", Title: "Hello", Artist: "Lionel Richie", Lyrics: "Hello, is it me you're looking for"},
		{URL: "https://www.lyrics.com/lyric/3/Oasis/Hello", Title: "Hello", Artist: "Oasis", Lyrics: "I don't feel as if I know you"},
	}
}

func TestScrapeService_HelloScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, client, progress := newScrapeTestService(t, 10)
	pages := helloPages()

	client.EXPECT().
		SearchSongURLs(gomock.Any(), "Hello", 10).
		Return([]string{pages[0].URL, pages[1].URL, pages[2].URL}, nil)

	for _, page := range pages {
		client.EXPECT().FetchSongPage(gomock.Any(), page.URL).Return(page, nil).AnyTimes()
	}

	results, err := service.Search(ctx, "Hello")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, SearchResult{Title: "Hello", Artist: "Lionel Richie", URL: pages[1].URL}, results[1])
	assert.NotEmpty(t, progress.String())

	index, err := ParseSelection("2", len(results))
	require.NoError(t, err)

	doc, err := service.FetchLyrics(ctx, results[index])
	require.NoError(t, err)
	assert.Equal(t, "Hello", doc.Title)
	assert.Equal(t, "Lionel Richie", doc.Artist)
	assert.Equal(t, pages[1].Lyrics, doc.Body)
	assert.Equal(t, pages[1].URL, doc.URL)
}

func TestScrapeService_EmptyQuerySendsNoRequest(t *testing.T) {
	t.Parallel()

	service, _, progress := newScrapeTestService(t, 10)

	for _, query := range []string{"", "   "} {
		results, err := service.Search(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, results)
	}

	assert.Empty(t, progress.String())
}

func TestScrapeService_RepeatedQueryIsStable(t *testing.T) {
	t.Parallel()

	service, client, _ := newScrapeTestService(t, 10)
	pages := helloPages()

	client.EXPECT().
		SearchSongURLs(gomock.Any(), "Hello", 10).
		Return([]string{pages[0].URL, pages[1].URL, pages[2].URL}, nil).
		Times(2)

	for _, page := range pages {
		client.EXPECT().FetchSongPage(gomock.Any(), page.URL).Return(page, nil).Times(2)
	}

	first, err := service.Search(context.Background(), "Hello")
	require.NoError(t, err)

	second, err := service.Search(context.Background(), "Hello")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScrapeService_SkipsFailingPagesAndDuplicates(t *testing.T) {
	t.Parallel()

	service, client, _ := newScrapeTestService(t, 10)
	pages := helloPages()
	duplicate := *pages[0]

	client.EXPECT().
		SearchSongURLs(gomock.Any(), "Hello", 10).
		Return([]string{pages[0].URL, pages[1].URL, pages[0].URL, pages[2].URL}, nil)

	gomock.InOrder(
		client.EXPECT().FetchSongPage(gomock.Any(), pages[0].URL).Return(pages[0], nil),
		client.EXPECT().FetchSongPage(gomock.Any(), pages[1].URL).Return(nil, errPageBroken),
		client.EXPECT().FetchSongPage(gomock.Any(), pages[0].URL).Return(&duplicate, nil),
		client.EXPECT().FetchSongPage(gomock.Any(), pages[2].URL).Return(pages[2], nil),
	)

	results, err := service.Search(context.Background(), "Hello")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Adele", results[0].Artist)
	assert.Equal(t, "Oasis", results[1].Artist)
}

func TestScrapeService_CapsAtMaxResults(t *testing.T) {
	t.Parallel()

	service, client, _ := newScrapeTestService(t, 2)
	pages := helloPages()

	client.EXPECT().
		SearchSongURLs(gomock.Any(), "Hello", 2).
		Return([]string{pages[0].URL, pages[1].URL, pages[2].URL}, nil)
	client.EXPECT().FetchSongPage(gomock.Any(), pages[0].URL).Return(pages[0], nil)
	client.EXPECT().FetchSongPage(gomock.Any(), pages[1].URL).Return(pages[1], nil)

	results, err := service.Search(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestScrapeService_ErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		clientErr error
		expected  error
	}{
		{name: "transport failure", clientErr: lyricscom.ErrRequestFailed, expected: ErrNetwork},
		{name: "bad status", clientErr: lyricscom.ErrUnexpectedHTTPStatus, expected: ErrRemote},
		{name: "oversized page", clientErr: lyricscom.ErrPageTooLarge, expected: ErrRemote},
		{name: "canceled", clientErr: context.Canceled, expected: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, client, _ := newScrapeTestService(t, 10)

			client.EXPECT().SearchSongURLs(gomock.Any(), "Hello", 10).Return(nil, tt.clientErr)

			results, err := service.Search(context.Background(), "Hello")
			require.ErrorIs(t, err, tt.expected)
			assert.Nil(t, results)
		})
	}
}

func TestScrapeService_CancelDuringPageFetch(t *testing.T) {
	t.Parallel()

	service, client, _ := newScrapeTestService(t, 10)
	pages := helloPages()

	client.EXPECT().
		SearchSongURLs(gomock.Any(), "Hello", 10).
		Return([]string{pages[0].URL, pages[1].URL}, nil)
	client.EXPECT().FetchSongPage(gomock.Any(), pages[0].URL).Return(nil, context.Canceled)

	_, err := service.Search(context.Background(), "Hello")
	require.ErrorIs(t, err, context.Canceled)
}

func TestScrapeService_FetchLyricsWithoutBody(t *testing.T) {
	t.Parallel()

	service, client, _ := newScrapeTestService(t, 10)
	result := SearchResult{Title: "Hello", Artist: "Adele", URL: "https://www.lyrics.com/lyric/1"}

	client.EXPECT().
		FetchSongPage(gomock.Any(), result.URL).
		Return(&lyricscom.SongPage{URL: result.URL, Title: "Different", Artist: "Someone"}, nil)

	doc, err := service.FetchLyrics(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, result.Title, doc.Title)
	assert.Equal(t, result.Artist, doc.Artist)
	assert.False(t, doc.HasBody())
}
