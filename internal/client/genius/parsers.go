package genius

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/oshokin/lyrics-grabber/internal/utils"
)

// parseLyricsPage extracts the lyrics text from a genius.com song page.
// Line breaks come from <br>; annotation widgets inside the blocks are dropped.
func parseLyricsPage(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	containers := doc.Find(lyricsContainerSelector)
	if containers.Length() == 0 {
		containers = doc.Find(legacyLyricsSelector)
	}

	blocks := make([]string, 0, containers.Length())

	containers.Each(func(_ int, s *goquery.Selection) {
		s.Find(excludedFromSelectionSelector).Remove()
		s.Find("br").ReplaceWithHtml("\n")

		if text := strings.TrimSpace(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	return utils.NormalizeMultilineText(strings.Join(blocks, "\n")), nil
}
