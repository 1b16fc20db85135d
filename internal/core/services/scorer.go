package services

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
)

const (
	artistMatchWeight = 15.0
	popularityWeight  = 5.0
	eraMatchWeight    = 3.0
	discoveryJitter   = 3.0
)

// Scorer ranks candidate tracks against the taste analysis. Signals are
// additive and independent; a bounded random term is always added so repeat
// runs favor discovery over identical output.
type Scorer struct {
	// jitter returns the random term in [0, discoveryJitter). Replace it
	// with a zero function for deterministic scoring.
	jitter func() float64
}

// NewScorer constructs a Scorer with the default random source.
func NewScorer() *Scorer {
	return &Scorer{jitter: func() float64 { return rand.Float64() * discoveryJitter }}
}

// NewScorerWithJitter constructs a Scorer with a caller-supplied random term
// source.
func NewScorerWithJitter(jitter func() float64) *Scorer {
	return &Scorer{jitter: jitter}
}

// Score assigns each candidate a score and returns the candidates sorted
// descending, stable by retrieval order on ties.
func (s *Scorer) Score(candidates []domain.Track, analysis domain.TasteAnalysis) []domain.ScoredCandidate {
	similar := make(map[string]struct{}, len(analysis.Discovery.SimilarArtists))
	for _, artist := range analysis.Discovery.SimilarArtists {
		similar[strings.ToLower(artist)] = struct{}{}
	}
	personality := strings.ToLower(analysis.Personality)

	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, track := range candidates {
		score := 0.0
		var factors []string

		if matchesSimilarArtist(track, similar) {
			score += artistMatchWeight
			factors = append(factors, domain.FactorArtistMatch)
		}

		// Popularity alignment with the personality text. The substring
		// checks are the documented contract; mainstream wins on overlap.
		if track.Popularity > 0 {
			if strings.Contains(personality, "mainstream") {
				if track.Popularity > 70 {
					score += popularityWeight
					factors = append(factors, domain.FactorMainstreamMatch)
				}
			} else if strings.Contains(personality, "indie") {
				if track.Popularity < 50 {
					score += popularityWeight
					factors = append(factors, domain.FactorIndieMatch)
				}
			}
		}

		// An unparsable release date skips only the era signals.
		if year, ok := track.ReleaseYear(); ok {
			for _, era := range analysis.Discovery.EraPreferences {
				switch {
				case era == "2020s" && year >= 2020:
					score += eraMatchWeight
					factors = append(factors, domain.FactorEra2020s)
				case era == "2010s" && year >= 2010 && year < 2020:
					score += eraMatchWeight
					factors = append(factors, domain.FactorEra2010s)
				}
			}
		}

		score += s.jitter()

		scored = append(scored, domain.ScoredCandidate{
			Track:   track,
			Score:   score,
			Factors: factors,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

func matchesSimilarArtist(track domain.Track, similar map[string]struct{}) bool {
	for _, name := range track.Artists {
		if _, ok := similar[strings.ToLower(name)]; ok {
			return true
		}
	}
	return false
}
