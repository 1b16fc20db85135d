package services

import (
	"fmt"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
)

// BuildSearchQueries expands the taste analysis and playlist concept into
// catalog search query strings. Duplicates are intentionally kept; the
// deduplicator filters repeated tracks after retrieval. Order only matters
// for request pacing downstream.
func BuildSearchQueries(analysis domain.TasteAnalysis, concept domain.PlaylistConcept) []string {
	var queries []string

	for _, strategy := range analysis.SearchStrategies {
		switch strategy {
		case domain.StrategyGenreBased:
			for _, genre := range analysis.PrimaryGenres {
				queries = append(queries, fmt.Sprintf("genre:%q", genre))
				queries = append(queries, genre+" 2024")
			}
		case domain.StrategyArtistSimilar:
			for _, artist := range analysis.Discovery.SimilarArtists {
				queries = append(queries, fmt.Sprintf("artist:%q", artist))
			}
		case domain.StrategyMoodBased:
			for _, mood := range analysis.MoodPreferences {
				queries = append(queries, mood+" music")
			}
		}
	}

	for _, theme := range analysis.Themes {
		queries = append(queries, theme.SearchTerms...)
	}

	for _, era := range analysis.Discovery.EraPreferences {
		queries = append(queries, era+" music")
	}

	queries = append(queries, concept.SearchQueries...)

	return queries
}
