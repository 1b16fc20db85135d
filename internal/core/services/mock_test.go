package services

import (
	"context"
	"errors"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
	"github.com/cadenza-labs/cadenza/internal/core/ports"
)

// mockProvider is a configurable in-memory MusicProvider.
type mockProvider struct {
	userID     string
	userErr    error
	artists    []domain.Artist
	artistsErr error
	tracks     []domain.Track
	tracksErr  error
	recent     []domain.Track
	saved      []domain.Track

	searchFn      func(query string, limit int) ([]domain.Track, error)
	searchQueries []string

	createdPlaylists []domain.Playlist
	createErr        error
	addedBatches     [][]string
	addErr           error
}

var _ ports.MusicProvider = (*mockProvider)(nil)

func (m *mockProvider) CurrentUserID(ctx context.Context) (string, error) {
	if m.userErr != nil {
		return "", m.userErr
	}
	if m.userID == "" {
		return "listener-1", nil
	}
	return m.userID, nil
}

func (m *mockProvider) TopArtists(ctx context.Context, _ ports.TimeRange, _ int) ([]domain.Artist, error) {
	return m.artists, m.artistsErr
}

func (m *mockProvider) TopTracks(ctx context.Context, _ ports.TimeRange, _ int) ([]domain.Track, error) {
	return m.tracks, m.tracksErr
}

func (m *mockProvider) RecentlyPlayed(ctx context.Context, _ int) ([]domain.Track, error) {
	return m.recent, nil
}

func (m *mockProvider) SavedTracks(ctx context.Context, _ int) ([]domain.Track, error) {
	return m.saved, nil
}

func (m *mockProvider) SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	m.searchQueries = append(m.searchQueries, query)
	if m.searchFn != nil {
		return m.searchFn(query, limit)
	}
	return nil, errors.New("search not configured")
}

func (m *mockProvider) CreatePlaylist(ctx context.Context, ownerID, name, description string, public bool) (domain.Playlist, error) {
	if m.createErr != nil {
		return domain.Playlist{}, m.createErr
	}
	p := domain.Playlist{
		ID:          "pl-1",
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Public:      public,
	}
	m.createdPlaylists = append(m.createdPlaylists, p)
	return p, nil
}

func (m *mockProvider) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	if m.addErr != nil {
		return m.addErr
	}
	batch := make([]string, len(uris))
	copy(batch, uris)
	m.addedBatches = append(m.addedBatches, batch)
	return nil
}

// mockGenerator is a canned TextGenerator.
type mockGenerator struct {
	response string
	err      error
	calls    int
}

var _ ports.TextGenerator = (*mockGenerator)(nil)

func (g *mockGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func zeroJitter() float64 { return 0 }
