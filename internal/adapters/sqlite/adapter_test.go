package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
)

func TestAdapter_SaveAndRecent(t *testing.T) {
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer a.Close()

	run := domain.RunRecord{
		ID:          "run-1",
		PlaylistID:  "pl-1",
		Name:        "Night Drive - 2024-06-15",
		Description: "AI-curated playlist. Genres: pop. Mood: Balanced. Generated 2024-06-15",
		TrackCount:  2,
		CreatedAt:   time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		Tracks: []domain.RunTrack{
			{Position: 1, TrackID: "t1", Title: "One", Artists: "Artist A", Score: 18},
			{Position: 2, TrackID: "t2", Title: "Two", Artists: "Artist B, Artist C", Score: 3},
		},
	}
	if err := a.Save(context.Background(), run); err != nil {
		t.Fatalf("save run: %v", err)
	}

	runs, err := a.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs: got %d, want 1", len(runs))
	}

	got := runs[0]
	if got.ID != run.ID || got.PlaylistID != run.PlaylistID || got.Name != run.Name {
		t.Fatalf("run fields: got %+v", got)
	}
	if got.TrackCount != 2 || len(got.Tracks) != 2 {
		t.Fatalf("tracks: got count=%d len=%d, want 2/2", got.TrackCount, len(got.Tracks))
	}
	if got.Tracks[0].TrackID != "t1" || got.Tracks[1].TrackID != "t2" {
		t.Fatalf("track order: got %+v", got.Tracks)
	}
	if got.Tracks[1].Artists != "Artist B, Artist C" {
		t.Fatalf("artists: got %q", got.Tracks[1].Artists)
	}
}

func TestAdapter_SaveGeneratesMissingID(t *testing.T) {
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer a.Close()

	run := domain.RunRecord{
		PlaylistID: "pl-1",
		Name:       "Discovery Mix",
		TrackCount: 0,
		CreatedAt:  time.Now().UTC(),
	}
	if err := a.Save(context.Background(), run); err != nil {
		t.Fatalf("save run: %v", err)
	}

	runs, err := a.Recent(context.Background(), 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 1 || runs[0].ID == "" {
		t.Fatalf("expected generated run id, got %+v", runs)
	}
}

func TestAdapter_RecentOrdersNewestFirst(t *testing.T) {
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer a.Close()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"run-old", "run-mid", "run-new"} {
		run := domain.RunRecord{
			ID:         id,
			PlaylistID: "pl-" + id,
			Name:       id,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
		if err := a.Save(context.Background(), run); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	runs, err := a.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs: got %d, want 2", len(runs))
	}
	if runs[0].ID != "run-new" || runs[1].ID != "run-mid" {
		t.Fatalf("order: got %s, %s", runs[0].ID, runs[1].ID)
	}
}
