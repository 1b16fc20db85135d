package domain

// Energy levels a concept can target.
const (
	EnergyHigh   = "high"
	EnergyMedium = "medium"
	EnergyLow    = "low"
)

// PlaylistConcept is the creative framing of a playlist: what to call it,
// what it should feel like, and which catalog queries express it. Produced
// once per pipeline run. The JSON tags mirror the response schema requested
// from the generative text service.
type PlaylistConcept struct {
	Name             string   `json:"playlist_name"`
	Description      string   `json:"description"`
	TargetMood       string   `json:"target_mood"`
	SearchQueries    []string `json:"search_queries"`
	GenreFocus       []string `json:"genre_focus"`
	Energy           string   `json:"energy_level"`
	CreativeElements []string `json:"creative_elements"`
}
