package lyrics

//go:generate $MOCKGEN -source=presenter.go -destination=mocks/presenter_mock.go

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Presenter prints search results and lyrics.
type Presenter interface {
	// ShowResults prints a numbered list of results followed by the cancel entry.
	ShowResults(results []SearchResult)
	// ShowAlbums prints a numbered list of albums followed by the cancel entry.
	ShowAlbums(albums []AlbumRef)
	// ShowAlbumGroups prints a numbered list of album groups with their song counts.
	ShowAlbumGroups(groups []AlbumGroup)
	// ShowLyrics prints a lyrics document between a header and a footer.
	ShowLyrics(doc *LyricsDocument)
	// ShowMessage prints one informational line.
	ShowMessage(format string, args ...any)
}

// PresenterImpl writes plain text, styling headers only when the output is a terminal.
type PresenterImpl struct {
	out         io.Writer
	headerStyle lipgloss.Style
}

const (
	// noLyricsText replaces an empty lyrics body.
	noLyricsText = "(No lyrics returned.)"
	// lyricsFooter closes the lyrics block.
	lyricsFooter = "--- end of lyrics ---"
)

// NewPresenter creates and returns a new instance of Presenter.
func NewPresenter(out io.Writer) Presenter {
	// A renderer bound to out falls back to plain text for pipes and buffers.
	renderer := lipgloss.NewRenderer(out)

	return &PresenterImpl{
		out:         out,
		headerStyle: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

// ShowResults prints a numbered list of results followed by the cancel entry.
func (p *PresenterImpl) ShowResults(results []SearchResult) {
	p.println()
	p.println(p.headerStyle.Render("Matches:"))

	for i, result := range results {
		p.printf("%d. %s — %s\n", i+1, result.Title, result.Artist)
	}

	p.printf("%s. Cancel\n", CancelKey)
}

// ShowAlbums prints a numbered list of albums followed by the cancel entry.
func (p *PresenterImpl) ShowAlbums(albums []AlbumRef) {
	p.println()
	p.println(p.headerStyle.Render("Albums:"))

	for i, album := range albums {
		p.printf("%d. %s\n", i+1, album.Name)
	}

	p.printf("%s. Cancel\n", CancelKey)
}

// ShowAlbumGroups prints a numbered list of album groups with their song counts.
func (p *PresenterImpl) ShowAlbumGroups(groups []AlbumGroup) {
	p.println()
	p.println(p.headerStyle.Render("Album groups:"))

	for i, group := range groups {
		p.printf("%d. %s (%d songs)\n", i+1, group.Name, len(group.Songs))
	}

	p.printf("%s. Cancel\n", CancelKey)
}

// ShowLyrics prints a lyrics document between a header and a footer.
func (p *PresenterImpl) ShowLyrics(doc *LyricsDocument) {
	if doc == nil {
		return
	}

	body := doc.Body
	if !doc.HasBody() {
		body = noLyricsText
	}

	p.println()
	p.println(p.headerStyle.Render(fmt.Sprintf("--- %s — %s ---", doc.Title, doc.Artist)))
	p.println()
	p.println(body)
	p.println()
	p.println(lyricsFooter)
	p.println()
}

// ShowMessage prints one informational line.
func (p *PresenterImpl) ShowMessage(format string, args ...any) {
	p.printf(format+"\n", args...)
}

func (p *PresenterImpl) println(args ...any) {
	_, _ = fmt.Fprintln(p.out, args...)
}

func (p *PresenterImpl) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}
