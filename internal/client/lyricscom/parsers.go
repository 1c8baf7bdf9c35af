package lyricscom

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/oshokin/lyrics-grabber/internal/utils"
)

// parseSongLinks returns unique absolute song page URLs in document order, at most limit.
func parseSongLinks(doc *goquery.Document, baseURL *url.URL, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var (
		links []string
		seen  = make(map[string]struct{})
	)

	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if !strings.HasPrefix(href, songLinkPrefix) {
			return true
		}

		ref, err := url.Parse(href)
		if err != nil {
			return true
		}

		absolute := baseURL.ResolveReference(ref).String()
		if _, ok := seen[absolute]; ok {
			return true
		}

		seen[absolute] = struct{}{}
		links = append(links, absolute)

		return len(links) < limit
	})

	return links
}

// parseSongPage extracts title, artist and lyrics from a song page.
// Missing parts degrade to defaults instead of failing.
func parseSongPage(doc *goquery.Document, pageURL string) *SongPage {
	page := &SongPage{
		URL:    pageURL,
		Title:  parseTitle(doc),
		Artist: parseArtist(doc),
		Lyrics: parseLyrics(doc),
	}

	if page.Title == "" {
		page.Title = UnknownTitle
	}

	if page.Artist == "" {
		page.Artist = UnknownArtist
	}

	return page
}

func parseTitle(doc *goquery.Document) string {
	title := utils.CollapseSpaces(doc.Find("h1").First().Text())

	return strings.TrimSpace(strings.ReplaceAll(title, titleSuffix, ""))
}

// parseArtist prefers the first h3, then the first link to an artist page.
func parseArtist(doc *goquery.Document) string {
	artist := utils.CollapseSpaces(doc.Find("h3").First().Text())
	if artist == "" {
		artist = utils.CollapseSpaces(doc.Find(`a[href^="` + artistLinkPrefix + `"]`).First().Text())
	}

	return strings.TrimSpace(strings.ReplaceAll(artist, artistNoise, ""))
}

// parseLyrics tries the dedicated lyrics block, then any long pre,
// then the longest multi-line div.
func parseLyrics(doc *goquery.Document) string {
	if body := doc.Find(lyricsBodySelector).First(); body.Length() > 0 {
		return textLines(body)
	}

	if pre := doc.Find("pre").First(); pre.Length() > 0 && len(pre.Text()) > minLyricsLength {
		return textLines(pre)
	}

	var best string

	doc.Find("div").Each(func(_ int, s *goquery.Selection) {
		text := textLines(s)
		if len(text) > len(best) &&
			len(text) > minLyricsLength &&
			strings.Count(text, "\n") >= minLyricsLineBreaks {
			best = text
		}
	})

	return best
}

// textLines joins the text nodes under the selection with newlines,
// so markup such as <br> or nested links still splits lines.
func textLines(s *goquery.Selection) string {
	var lines []string

	collectTextLines(s, &lines)

	return utils.NormalizeMultilineText(strings.Join(lines, "\n"))
}

func collectTextLines(s *goquery.Selection, lines *[]string) {
	s.Contents().Each(func(_ int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "#text":
			if text := strings.TrimSpace(child.Text()); text != "" {
				*lines = append(*lines, text)
			}
		case "script", "style", "#comment":
		default:
			collectTextLines(child, lines)
		}
	})
}
