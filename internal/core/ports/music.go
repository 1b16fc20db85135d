package ports

import (
	"context"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
)

// TimeRange selects how far back listening history reaches.
type TimeRange string

const (
	RangeShort  TimeRange = "short_term"
	RangeMedium TimeRange = "medium_term"
	RangeLong   TimeRange = "long_term"
)

// MusicProvider is the combined identity-provider and catalog contract the
// pipeline runs against. Implementations carry their own authenticated
// session; the core treats it as an opaque handle bound to one listener.
type MusicProvider interface {
	// CurrentUserID identifies the listener the session is bound to.
	CurrentUserID(ctx context.Context) (string, error)

	// Listening history reads. History lists of wrapped shapes (recently
	// played, saved) are normalized to plain tracks at this boundary.
	TopArtists(ctx context.Context, timeRange TimeRange, limit int) ([]domain.Artist, error)
	TopTracks(ctx context.Context, timeRange TimeRange, limit int) ([]domain.Track, error)
	RecentlyPlayed(ctx context.Context, limit int) ([]domain.Track, error)
	SavedTracks(ctx context.Context, limit int) ([]domain.Track, error)

	// SearchTracks issues one track-typed catalog search.
	SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error)

	// Playlist writes.
	CreatePlaylist(ctx context.Context, ownerID, name, description string, public bool) (domain.Playlist, error)
	AddTracks(ctx context.Context, playlistID string, uris []string) error
}
