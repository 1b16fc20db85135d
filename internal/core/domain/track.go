package domain

import "strconv"

// Track represents a catalog track in the domain layer. Immutable once
// retrieved from the catalog.
type Track struct {
	ID          string
	Title       string
	Artists     []string // ordered, primary artist first
	Album       string
	ReleaseDate string // "2006", "2006-01" or "2006-01-02"
	Popularity  int    // 0-100
	URI         string
}

// ReleaseYear parses the year component of the release date. ok is false
// when the date is missing or unparsable.
func (t Track) ReleaseYear() (int, bool) {
	if len(t.ReleaseDate) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(t.ReleaseDate[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// Artist represents a catalog artist with its genre tags.
type Artist struct {
	ID         string
	Name       string
	Genres     []string // possibly empty
	Popularity int
}
