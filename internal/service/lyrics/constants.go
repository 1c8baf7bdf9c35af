package lyrics

const (
	// maxListPages bounds paginated Genius listings.
	maxListPages = 10
	// progressDescription labels the song page progress bar.
	progressDescription = "Fetching song pages"
)

// nonSongTerms mark Genius entries that are not songs (track lists, credits and similar).
//
//nolint:gochecknoglobals // Read-only lookup table.
var nonSongTerms = []string{
	"Tracklist",
	"Track List",
	"Album Art",
	"Liner Notes",
	"Booklet",
	"Credits",
	"Interview",
	"Skit",
	"Setlist",
}
