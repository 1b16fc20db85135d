package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
	"github.com/cadenza-labs/cadenza/internal/core/ports"
)

type mockRunRepo struct {
	saved []domain.RunRecord
	err   error
}

var _ ports.RunRepository = (*mockRunRepo)(nil)

func (r *mockRunRepo) Save(ctx context.Context, run domain.RunRecord) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, run)
	return nil
}

func (r *mockRunRepo) Recent(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	return r.saved, nil
}

// newTestPipeline wires a pipeline with no AI, no pacing delay, and zero
// scoring jitter.
func newTestPipeline(provider *mockProvider, history ports.RunRepository) *Pipeline {
	p := NewPipeline(provider, nil, history)
	p.retriever = NewRetriever(provider, time.Microsecond)
	p.scorer = NewScorerWithJitter(zeroJitter)
	return p
}

func TestPipeline_GenerateEndToEnd(t *testing.T) {
	// Two top artists, AI disabled, three candidates none of which are in
	// history, playlist size two.
	provider := &mockProvider{
		artists: []domain.Artist{
			{ID: "a1", Name: "A", Genres: []string{"pop"}},
			{ID: "a2", Name: "B", Genres: []string{"pop", "rock"}},
		},
		tracks: []domain.Track{
			{ID: "h1", Title: "Old Favorite", Artists: []string{"A"}, URI: "spotify:track:h1"},
		},
		searchFn: func(query string, limit int) ([]domain.Track, error) {
			if query != "new music" {
				return nil, nil
			}
			return []domain.Track{
				{ID: "c1", Title: "One", Artists: []string{"Nobody"}, ReleaseDate: "1999", URI: "spotify:track:c1"},
				{ID: "c2", Title: "Two", Artists: []string{"A"}, ReleaseDate: "2023", URI: "spotify:track:c2"},
				{ID: "c3", Title: "Three", Artists: []string{"Nobody"}, ReleaseDate: "2015", URI: "spotify:track:c3"},
			}, nil
		},
	}
	history := &mockRunRepo{}
	p := newTestPipeline(provider, history)

	result, err := p.Generate(context.Background(), Options{PlaylistSize: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Selected) != 2 {
		t.Fatalf("selected: got %d, want 2", len(result.Selected))
	}
	// c2 matches similar artist A (+15) and the 2020s era (+3); c3 matches
	// the 2010s era (+3); c1 scores zero.
	if result.Selected[0].Track.ID != "c2" || result.Selected[1].Track.ID != "c3" {
		t.Fatalf("ranking: got %s, %s", result.Selected[0].Track.ID, result.Selected[1].Track.ID)
	}
	if !strings.Contains(result.Description, "pop") {
		t.Fatalf("description missing primary genre: %q", result.Description)
	}
	if !strings.Contains(result.Description, "Balanced") {
		t.Fatalf("description missing default mood: %q", result.Description)
	}
	if len(provider.createdPlaylists) != 1 {
		t.Fatalf("expected one created playlist, got %d", len(provider.createdPlaylists))
	}
	if len(history.saved) != 1 || history.saved[0].TrackCount != 2 {
		t.Fatalf("run not recorded: %+v", history.saved)
	}
}

func TestPipeline_ExcludesHistoryTracks(t *testing.T) {
	provider := &mockProvider{
		artists: []domain.Artist{{ID: "a1", Name: "A", Genres: []string{"pop"}}},
		tracks:  []domain.Track{{ID: "top-1", URI: "spotify:track:top-1"}},
		recent:  []domain.Track{{ID: "recent-1"}},
		saved:   []domain.Track{{ID: "saved-1"}},
		searchFn: func(query string, limit int) ([]domain.Track, error) {
			return []domain.Track{
				{ID: "top-1", URI: "u1"},
				{ID: "recent-1", URI: "u2"},
				{ID: "saved-1", URI: "u3"},
				{ID: "fresh", URI: "u4"},
			}, nil
		},
	}
	p := newTestPipeline(provider, nil)

	result, err := p.Generate(context.Background(), Options{PlaylistSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Selected) != 1 || result.Selected[0].Track.ID != "fresh" {
		t.Fatalf("history leak: %+v", result.Selected)
	}
}

func TestPipeline_NoListeningHistoryIsTerminal(t *testing.T) {
	provider := &mockProvider{
		artistsErr: errors.New("upstream unavailable"),
		tracksErr:  errors.New("upstream unavailable"),
	}
	p := newTestPipeline(provider, nil)

	_, err := p.Generate(context.Background(), Options{})
	if !errors.Is(err, ErrNoListeningHistory) {
		t.Fatalf("expected ErrNoListeningHistory, got %v", err)
	}
}

func TestPipeline_NoCandidatesIsTerminal(t *testing.T) {
	provider := &mockProvider{
		artists: []domain.Artist{{ID: "a1", Name: "A", Genres: []string{"pop"}}},
		searchFn: func(query string, limit int) ([]domain.Track, error) {
			return nil, errors.New("upstream unavailable")
		},
	}
	p := newTestPipeline(provider, nil)

	_, err := p.Generate(context.Background(), Options{})
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestPipeline_RunRecordingFailureIsNotFatal(t *testing.T) {
	provider := &mockProvider{
		artists: []domain.Artist{{ID: "a1", Name: "A", Genres: []string{"pop"}}},
		searchFn: func(query string, limit int) ([]domain.Track, error) {
			return []domain.Track{{ID: "c1", URI: "u1"}}, nil
		},
	}
	p := newTestPipeline(provider, &mockRunRepo{err: errors.New("disk full")})

	if _, err := p.Generate(context.Background(), Options{PlaylistSize: 1}); err != nil {
		t.Fatalf("recording failure must not fail the run: %v", err)
	}
}

func TestPipeline_PreviewCreatesNothing(t *testing.T) {
	provider := &mockProvider{
		artists: []domain.Artist{{ID: "a1", Name: "A", Genres: []string{"pop"}}},
		searchFn: func(query string, limit int) ([]domain.Track, error) {
			return []domain.Track{
				{ID: "c1", URI: "spotify:track:c1"},
				{ID: "c2", URI: "spotify:track:c2"},
			}, nil
		},
	}
	p := newTestPipeline(provider, nil)

	preview, err := p.GeneratePreview(context.Background(), Options{PlaylistSize: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(provider.createdPlaylists) != 0 || len(provider.addedBatches) != 0 {
		t.Fatalf("preview must not write to the catalog")
	}
	if len(preview.TrackURIs) != 1 {
		t.Fatalf("uris: got %d, want 1", len(preview.TrackURIs))
	}
	if preview.Name == "" || preview.Description == "" {
		t.Fatalf("preview missing name or description: %+v", preview)
	}
}
