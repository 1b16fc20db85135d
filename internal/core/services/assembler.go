package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
	"github.com/cadenza-labs/cadenza/internal/core/ports"
)

// Catalog API caps one add-tracks call at 100 URIs.
const addTracksBatchSize = 100

// AssembledPlaylist is the result of one assembly: the created playlist,
// the selected scored tracks, and the composed description for display.
type AssembledPlaylist struct {
	Playlist    domain.Playlist
	Selected    []domain.ScoredCandidate
	Description string
}

// Assembler selects the final tracks and persists the playlist on the
// listener's account.
type Assembler struct {
	catalog ports.MusicProvider
	now     func() time.Time
}

// NewAssembler constructs an Assembler.
func NewAssembler(catalog ports.MusicProvider) *Assembler {
	return &Assembler{catalog: catalog, now: time.Now}
}

// Assemble takes the deduplicated, ranked candidates, selects the first
// playlistSize entries, and creates a private playlist with them. Fewer
// candidates than requested is tolerated (with a warning below half); zero
// candidates is terminal. A failed add-tracks batch is logged and skipped,
// never aborting the remaining batches.
func (a *Assembler) Assemble(ctx context.Context, ranked []domain.ScoredCandidate, playlistSize int, concept domain.PlaylistConcept, analysis domain.TasteAnalysis, ownerID string) (*AssembledPlaylist, error) {
	if len(ranked) == 0 {
		return nil, ErrNoCandidates
	}

	selected := ranked
	if len(selected) > playlistSize {
		selected = selected[:playlistSize]
	}
	if len(selected) < playlistSize/2 {
		log.Printf("WARN assembler: only %d of %d requested tracks available", len(selected), playlistSize)
	}

	now := a.now()

	rawName := concept.Name
	if rawName == "" {
		rawName = "AI Discovery - " + now.Format("2006-01-02")
	}
	name := domain.CleanPlaylistName(rawName, now)
	description := domain.ComposeDescription(analysis.PrimaryGenres, concept.TargetMood, now)

	playlist, err := a.catalog.CreatePlaylist(ctx, ownerID, name, description, false)
	if err != nil {
		return nil, fmt.Errorf("assembler: create playlist: %w", err)
	}
	log.Printf("INFO assembler: created playlist %q (%s)", name, playlist.ID)

	uris := make([]string, 0, len(selected))
	for _, candidate := range selected {
		uris = append(uris, candidate.Track.URI)
	}

	for start := 0; start < len(uris); start += addTracksBatchSize {
		end := min(start+addTracksBatchSize, len(uris))
		batch := uris[start:end]
		if err := a.catalog.AddTracks(ctx, playlist.ID, batch); err != nil {
			log.Printf("WARN assembler: add batch %d failed, skipping: %v", start/addTracksBatchSize+1, err)
			continue
		}
	}

	playlist.OwnerID = ownerID
	playlist.Description = description
	playlist.TrackURIs = uris

	return &AssembledPlaylist{
		Playlist:    playlist,
		Selected:    selected,
		Description: description,
	}, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
