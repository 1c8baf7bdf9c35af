// Package lyrics holds the search-and-show workflow shared by both pipelines.
//
// ScrapeService searches lyrics.com, GeniusService searches Genius.
// Both turn client payloads into SearchResult and LyricsDocument values,
// classify client failures into a small set of sentinel errors and leave
// every prompt to the caller: the pure parsers in selection.go validate
// raw input, the Presenter prints.
package lyrics
