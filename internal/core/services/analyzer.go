package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
	"github.com/cadenza-labs/cadenza/internal/core/ports"
)

const analysisPromptFormat = `Analyze this user's music taste based on their top artists and tracks. Provide insights and recommendations.

TOP ARTISTS: %s

TOP TRACKS: %s

Please provide a detailed analysis in the following JSON format:
{
    "music_personality": "Brief description of their music personality",
    "primary_genres": ["genre1", "genre2", "genre3"],
    "mood_preferences": ["mood1", "mood2", "mood3"],
    "discovery_suggestions": {
        "similar_artists": ["artist1", "artist2", "artist3"],
        "genre_exploration": ["genre1", "genre2"],
        "era_preferences": ["era1", "era2"]
    },
    "playlist_themes": [
        {"name": "Theme Name", "description": "Theme description", "search_terms": ["term1", "term2"]},
        {"name": "Theme Name 2", "description": "Theme description", "search_terms": ["term1", "term2"]}
    ],
    "creative_insights": "Unique observations about their music taste",
    "recommended_search_strategies": ["strategy1", "strategy2", "strategy3"]
}

Make sure to provide specific, actionable insights that can help discover new music.`

// Analyzer turns a listener's history into a TasteAnalysis. With no
// generator configured it produces the deterministic fallback; with one, it
// prompts once and degrades to the fallback on any transport or parse
// failure. Analyze never fails outward.
type Analyzer struct {
	gen ports.TextGenerator
}

// NewAnalyzer constructs an Analyzer. gen may be nil to disable AI analysis.
func NewAnalyzer(gen ports.TextGenerator) *Analyzer {
	return &Analyzer{gen: gen}
}

// Analyze produces the taste analysis for one pipeline run.
func (a *Analyzer) Analyze(ctx context.Context, topArtists []domain.Artist, topTracks []domain.Track, recentlyPlayed []domain.Track) domain.TasteAnalysis {
	if a.gen == nil {
		return FallbackAnalysis(topArtists, topTracks)
	}

	artistData, err := json.MarshalIndent(SummarizeArtists(topArtists), "", "  ")
	if err != nil {
		log.Printf("WARN analyzer: marshal artist profile: %v", err)
		return FallbackAnalysis(topArtists, topTracks)
	}
	trackData, err := json.MarshalIndent(SummarizeTracks(topTracks), "", "  ")
	if err != nil {
		log.Printf("WARN analyzer: marshal track profile: %v", err)
		return FallbackAnalysis(topArtists, topTracks)
	}

	prompt := fmt.Sprintf(analysisPromptFormat, artistData, trackData)

	response, err := a.gen.Complete(ctx, prompt)
	if err != nil {
		log.Printf("WARN analyzer: generation failed, using fallback analysis: %v", err)
		return FallbackAnalysis(topArtists, topTracks)
	}

	var analysis domain.TasteAnalysis
	if err := DecodeResponse(response, &analysis); err != nil {
		log.Printf("WARN analyzer: unusable response, using fallback analysis: %v", err)
		return FallbackAnalysis(topArtists, topTracks)
	}

	return analysis
}

// FallbackAnalysis is the deterministic analysis used when the generative
// text service is disabled or fails.
func FallbackAnalysis(topArtists []domain.Artist, topTracks []domain.Track) domain.TasteAnalysis {
	genres := rankGenres(topArtists)

	similar := make([]string, 0, 3)
	for _, artist := range topArtists {
		if len(similar) == 3 {
			break
		}
		similar = append(similar, artist.Name)
	}

	return domain.TasteAnalysis{
		Personality:     "Diverse music listener with varied tastes",
		PrimaryGenres:   firstN(genres, 3),
		MoodPreferences: []string{"energetic", "chill", "upbeat"},
		Discovery: domain.DiscoverySuggestions{
			SimilarArtists:   similar,
			GenreExploration: firstN(genres, 2),
			EraPreferences:   []string{"2020s", "2010s"},
		},
		Themes: []domain.PlaylistTheme{
			{
				Name:        "Discovery Mix",
				Description: "New tracks based on your taste",
				SearchTerms: []string{"new music", "trending"},
			},
		},
		Insight: "Based on your listening history, you enjoy a mix of popular and emerging artists.",
		SearchStrategies: []string{
			domain.StrategyGenreBased,
			domain.StrategyArtistSimilar,
			domain.StrategyYearBased,
		},
	}
}

// rankGenres orders genre tags by frequency across the supplied artists,
// ties broken by first-seen order.
func rankGenres(artists []domain.Artist) []string {
	counts := make(map[string]int)
	var order []string
	for _, artist := range artists {
		for _, genre := range artist.Genres {
			if counts[genre] == 0 {
				order = append(order, genre)
			}
			counts[genre]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	return order
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		values = values[:n]
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
