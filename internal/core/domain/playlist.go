package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Catalog API limits: names are hard-capped at 100 characters, descriptions
// at 300. Names are clipped below the cap to leave room for the ellipsis.
const (
	maxNameLength = 90
	nameClip      = 87
	maxDescLength = 300
	descClip      = 297
)

// Playlist is a created (or to-be-created) playlist on the listener's account.
type Playlist struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Public      bool
	TrackURIs   []string
	URL         string
}

// CleanPlaylistName sanitizes a concept name for the catalog API: characters
// the API rejects are stripped, whitespace runs collapse to single spaces,
// and overlong names are clipped with an ellipsis. An empty result falls
// back to a date-stamped default. Idempotent.
func CleanPlaylistName(name string, now time.Time) string {
	cleaned := collapseWhitespace(stripReservedChars(name))

	if runes := []rune(cleaned); len(runes) > maxNameLength {
		cleaned = string(runes[:nameClip]) + "..."
	}

	if cleaned == "" {
		cleaned = "AI Playlist " + now.Format("01-02")
	}

	return cleaned
}

// ComposeDescription builds the playlist description from the top primary
// genres, the concept's target mood, and the generation date, clipped to the
// catalog's 300-character limit.
func ComposeDescription(primaryGenres []string, targetMood string, now time.Time) string {
	genres := primaryGenres
	if len(genres) > 3 {
		genres = genres[:3]
	}
	if targetMood == "" {
		targetMood = "Balanced"
	}

	desc := fmt.Sprintf(
		"AI-curated playlist. Genres: %s. Mood: %s. Generated %s",
		strings.Join(genres, ", "), targetMood, now.Format("2006-01-02"),
	)

	if runes := []rune(desc); len(runes) > maxDescLength {
		desc = string(runes[:descClip]) + "..."
	}

	return desc
}

func stripReservedChars(input string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return -1
		}
		return r
	}, input)
}

func collapseWhitespace(input string) string {
	var out strings.Builder
	lastSpace := false
	for _, r := range input {
		if unicode.IsSpace(r) {
			if !lastSpace {
				out.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		out.WriteRune(r)
		lastSpace = false
	}

	return strings.TrimSpace(out.String())
}
