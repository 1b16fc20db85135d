// Package services implements the curation pipeline: profile summarization,
// taste analysis, concept generation, query synthesis, candidate retrieval,
// scoring, deduplication and playlist assembly.
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
	"github.com/cadenza-labs/cadenza/internal/core/ports"
)

// Terminal pipeline failures. Everything else is recovered locally by
// fallback or skip policies.
var (
	ErrNoListeningHistory = errors.New("pipeline: no top artists or top tracks available")
	ErrNoCandidates       = errors.New("pipeline: no candidate tracks found")
)

const (
	defaultPlaylistSize = 25
	historyFetchLimit   = 50
	perQueryLimit       = 15
)

// Options configures one generation run.
type Options struct {
	PlaylistSize int             // > 0; defaults to 25
	TimeRange    ports.TimeRange // defaults to medium term
	Mood         string          // optional concept hint
	Theme        string          // optional concept hint
	Occasion     string          // optional concept hint
}

// Result is the bundle a successful run hands back to the caller.
type Result struct {
	Playlist    domain.Playlist
	Selected    []domain.ScoredCandidate
	Analysis    domain.TasteAnalysis
	Concept     domain.PlaylistConcept
	Description string
}

// Preview is a dry run: everything Result carries except no playlist is
// created on the listener's account.
type Preview struct {
	OwnerID     string
	Name        string
	Description string
	TrackURIs   []string
	Selected    []domain.ScoredCandidate
	Analysis    domain.TasteAnalysis
	Concept     domain.PlaylistConcept
}

// Pipeline runs the full curation flow against its injected collaborators.
// Construction wires everything per run; there is no hidden lifecycle.
type Pipeline struct {
	catalog   ports.MusicProvider
	analyzer  *Analyzer
	concepts  *ConceptGenerator
	retriever *Retriever
	scorer    *Scorer
	assembler *Assembler
	history   ports.RunRepository // optional
}

// NewPipeline constructs a Pipeline. gen may be nil to run without AI;
// history may be nil to skip run recording.
func NewPipeline(catalog ports.MusicProvider, gen ports.TextGenerator, history ports.RunRepository) *Pipeline {
	return &Pipeline{
		catalog:   catalog,
		analyzer:  NewAnalyzer(gen),
		concepts:  NewConceptGenerator(gen),
		retriever: NewRetriever(catalog, 0),
		scorer:    NewScorer(),
		assembler: NewAssembler(catalog),
		history:   history,
	}
}

// Generate runs the whole pipeline and creates the playlist.
func (p *Pipeline) Generate(ctx context.Context, opts Options) (*Result, error) {
	run, err := p.curate(ctx, opts)
	if err != nil {
		return nil, err
	}

	assembled, err := p.assembler.Assemble(ctx, run.unique, run.size, run.concept, run.analysis, run.ownerID)
	if err != nil {
		return nil, err
	}

	p.recordRun(ctx, assembled)

	return &Result{
		Playlist:    assembled.Playlist,
		Selected:    assembled.Selected,
		Analysis:    run.analysis,
		Concept:     run.concept,
		Description: assembled.Description,
	}, nil
}

// GeneratePreview runs the whole pipeline but stops short of creating the
// playlist, returning what would be written for caller display.
func (p *Pipeline) GeneratePreview(ctx context.Context, opts Options) (*Preview, error) {
	run, err := p.curate(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(run.unique) == 0 {
		return nil, ErrNoCandidates
	}

	selected := run.unique
	if len(selected) > run.size {
		selected = selected[:run.size]
	}

	now := time.Now()
	rawName := run.concept.Name
	if rawName == "" {
		rawName = "AI Discovery - " + now.Format("2006-01-02")
	}

	uris := make([]string, 0, len(selected))
	for _, candidate := range selected {
		uris = append(uris, candidate.Track.URI)
	}

	return &Preview{
		OwnerID:     run.ownerID,
		Name:        domain.CleanPlaylistName(rawName, now),
		Description: domain.ComposeDescription(run.analysis.PrimaryGenres, run.concept.TargetMood, now),
		TrackURIs:   uris,
		Selected:    selected,
		Analysis:    run.analysis,
		Concept:     run.concept,
	}, nil
}

// curation is the shared front half of a run: history in, deduplicated
// ranked candidates out.
type curation struct {
	ownerID  string
	size     int
	analysis domain.TasteAnalysis
	concept  domain.PlaylistConcept
	unique   []domain.ScoredCandidate
}

func (p *Pipeline) curate(ctx context.Context, opts Options) (*curation, error) {
	size := opts.PlaylistSize
	if size <= 0 {
		size = defaultPlaylistSize
	}
	timeRange := opts.TimeRange
	if timeRange == "" {
		timeRange = ports.RangeMedium
	}

	ownerID, err := p.catalog.CurrentUserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: resolve listener: %w", err)
	}

	// History reads degrade to empty on failure; only a fully empty taste
	// signal is terminal.
	topArtists := fetchList(ctx, "top artists", func(ctx context.Context) ([]domain.Artist, error) {
		return p.catalog.TopArtists(ctx, timeRange, historyFetchLimit)
	})
	topTracks := fetchList(ctx, "top tracks", func(ctx context.Context) ([]domain.Track, error) {
		return p.catalog.TopTracks(ctx, timeRange, historyFetchLimit)
	})
	recentlyPlayed := fetchList(ctx, "recently played", func(ctx context.Context) ([]domain.Track, error) {
		return p.catalog.RecentlyPlayed(ctx, historyFetchLimit)
	})
	savedTracks := fetchList(ctx, "saved tracks", func(ctx context.Context) ([]domain.Track, error) {
		return p.catalog.SavedTracks(ctx, historyFetchLimit)
	})

	if len(topArtists) == 0 && len(topTracks) == 0 {
		return nil, ErrNoListeningHistory
	}

	analysis := p.analyzer.Analyze(ctx, topArtists, topTracks, recentlyPlayed)
	concept := p.concepts.Concept(ctx, opts.Mood, opts.Theme, opts.Occasion)

	queries := BuildSearchQueries(analysis, concept)
	log.Printf("INFO pipeline: synthesized %d search queries", len(queries))

	candidates := p.retriever.Retrieve(ctx, queries, perQueryLimit)
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	log.Printf("INFO pipeline: retrieved %d candidate tracks", len(candidates))

	scored := p.scorer.Score(candidates, analysis)
	unique := Dedupe(scored, topTracks, recentlyPlayed, savedTracks)
	log.Printf("INFO pipeline: %d unique tracks after history filtering", len(unique))

	return &curation{
		ownerID:  ownerID,
		size:     size,
		analysis: analysis,
		concept:  concept,
		unique:   unique,
	}, nil
}

func (p *Pipeline) recordRun(ctx context.Context, assembled *AssembledPlaylist) {
	if p.history == nil {
		return
	}

	record := domain.RunRecord{
		PlaylistID:  assembled.Playlist.ID,
		Name:        assembled.Playlist.Name,
		Description: assembled.Description,
		TrackCount:  len(assembled.Selected),
		CreatedAt:   time.Now(),
	}
	for i, candidate := range assembled.Selected {
		record.Tracks = append(record.Tracks, domain.RunTrack{
			Position: i + 1,
			TrackID:  candidate.Track.ID,
			Title:    candidate.Track.Title,
			Artists:  strings.Join(candidate.Track.Artists, ", "),
			Score:    candidate.Score,
		})
	}

	if err := p.history.Save(ctx, record); err != nil {
		log.Printf("WARN pipeline: recording run failed: %v", err)
	}
}

func fetchList[T any](ctx context.Context, what string, fetch func(context.Context) ([]T, error)) []T {
	items, err := fetch(ctx)
	if err != nil {
		log.Printf("WARN pipeline: fetching %s failed, continuing with none: %v", what, err)
		return nil
	}
	return items
}
