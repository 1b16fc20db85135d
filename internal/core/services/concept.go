package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
	"github.com/cadenza-labs/cadenza/internal/core/ports"
)

const conceptPromptFormat = `Create a creative playlist concept based on the following parameters:
- Mood: %s
- Theme: %s
- Occasion: %s

Provide a response in JSON format:
{
    "playlist_name": "Creative playlist name",
    "description": "Detailed description of the playlist concept",
    "target_mood": "The mood this playlist should evoke",
    "search_queries": ["search1", "search2", "search3", "search4", "search5"],
    "genre_focus": ["genre1", "genre2"],
    "energy_level": "high/medium/low",
    "creative_elements": ["element1", "element2"]
}

Make the concept unique and engaging.`

// ConceptGenerator produces the creative playlist concept from optional
// mood/theme/occasion hints. Concept never fails outward: a disabled
// generator or any failure yields a date-stamped deterministic default.
type ConceptGenerator struct {
	gen ports.TextGenerator
	now func() time.Time
}

// NewConceptGenerator constructs a ConceptGenerator. gen may be nil to
// disable AI concepts.
func NewConceptGenerator(gen ports.TextGenerator) *ConceptGenerator {
	return &ConceptGenerator{gen: gen, now: time.Now}
}

// Concept produces the playlist concept for one pipeline run. Empty hints
// are prompted as the literal "Any".
func (g *ConceptGenerator) Concept(ctx context.Context, mood, theme, occasion string) domain.PlaylistConcept {
	if g.gen == nil {
		return g.defaultConcept("Discovery Mix", "Curated playlist based on your music taste")
	}

	prompt := fmt.Sprintf(conceptPromptFormat, orAny(mood), orAny(theme), orAny(occasion))

	response, err := g.gen.Complete(ctx, prompt)
	if err != nil {
		log.Printf("WARN concept: generation failed, using default concept: %v", err)
		return g.defaultConcept("AI Discovery", "AI-curated playlist based on your music taste")
	}

	var concept domain.PlaylistConcept
	if err := DecodeResponse(response, &concept); err != nil {
		log.Printf("WARN concept: unusable response, using default concept: %v", err)
		return g.defaultConcept("AI Discovery", "AI-curated playlist based on your music taste")
	}

	return concept
}

// defaultConcept is the deterministic concept used when the generative text
// service is disabled or fails. TargetMood stays empty so the description
// composer applies its "Balanced" default.
func (g *ConceptGenerator) defaultConcept(namePrefix, description string) domain.PlaylistConcept {
	return domain.PlaylistConcept{
		Name:             fmt.Sprintf("%s - %s", namePrefix, g.now().Format("2006-01-02")),
		Description:      description,
		SearchQueries:    []string{"new music", "trending", "indie"},
		GenreFocus:       []string{"pop", "alternative"},
		Energy:           domain.EnergyMedium,
		CreativeElements: []string{"discovery", "variety"},
	}
}

func orAny(hint string) string {
	if hint == "" {
		return "Any"
	}
	return hint
}
