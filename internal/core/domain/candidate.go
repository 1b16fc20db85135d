package domain

// Scoring factor tags, retained per candidate for observability.
const (
	FactorArtistMatch     = "ai_artist_match"
	FactorMainstreamMatch = "mainstream_match"
	FactorIndieMatch      = "indie_match"
	FactorEra2020s        = "era_2020s"
	FactorEra2010s        = "era_2010s"
)

// ScoredCandidate wraps a retrieved track with its score and the signals
// that contributed to it.
type ScoredCandidate struct {
	Track   Track
	Score   float64
	Factors []string
}
