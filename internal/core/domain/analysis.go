package domain

// Search strategies the query synthesizer understands. The fallback analysis
// may also emit "year-based", which the synthesizer ignores; era queries come
// from the era-preference list instead.
const (
	StrategyGenreBased    = "genre-based"
	StrategyArtistSimilar = "artist-similar"
	StrategyMoodBased     = "mood-based"
	StrategyYearBased     = "year-based"
)

// DiscoverySuggestions groups the analysis hints used to widen the search
// beyond the listener's existing library.
type DiscoverySuggestions struct {
	SimilarArtists   []string `json:"similar_artists"`
	GenreExploration []string `json:"genre_exploration"`
	EraPreferences   []string `json:"era_preferences"`
}

// PlaylistTheme is one themed angle the analysis suggests for the playlist.
type PlaylistTheme struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SearchTerms []string `json:"search_terms"`
}

// TasteAnalysis is the structured result of analyzing a listener's history.
// Produced once per pipeline run and never mutated afterwards. The JSON tags
// mirror the response schema requested from the generative text service.
type TasteAnalysis struct {
	Personality      string               `json:"music_personality"`
	PrimaryGenres    []string             `json:"primary_genres"`
	MoodPreferences  []string             `json:"mood_preferences"`
	Discovery        DiscoverySuggestions `json:"discovery_suggestions"`
	Themes           []PlaylistTheme      `json:"playlist_themes"`
	Insight          string               `json:"creative_insights"`
	SearchStrategies []string             `json:"recommended_search_strategies"`
}
