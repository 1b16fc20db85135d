package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
)

func frozenConceptGenerator(gen *mockGenerator) *ConceptGenerator {
	var g *ConceptGenerator
	if gen == nil {
		g = NewConceptGenerator(nil)
	} else {
		g = NewConceptGenerator(gen)
	}
	g.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestConceptGenerator_Disabled(t *testing.T) {
	g := frozenConceptGenerator(nil)
	concept := g.Concept(context.Background(), "", "", "")

	want := domain.PlaylistConcept{
		Name:             "Discovery Mix - 2024-06-15",
		Description:      "Curated playlist based on your music taste",
		SearchQueries:    []string{"new music", "trending", "indie"},
		GenreFocus:       []string{"pop", "alternative"},
		Energy:           domain.EnergyMedium,
		CreativeElements: []string{"discovery", "variety"},
	}
	if !reflect.DeepEqual(concept, want) {
		t.Fatalf("got %+v, want %+v", concept, want)
	}
}

func TestConceptGenerator_FailureUsesDistinctDefault(t *testing.T) {
	tests := []struct {
		name string
		gen  *mockGenerator
	}{
		{name: "transport failure", gen: &mockGenerator{err: errors.New("timeout")}},
		{name: "unparsable response", gen: &mockGenerator{response: "plain prose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := frozenConceptGenerator(tt.gen)
			concept := g.Concept(context.Background(), "happy", "", "")

			if concept.Name != "AI Discovery - 2024-06-15" {
				t.Fatalf("name: got %q", concept.Name)
			}
			if concept.Description != "AI-curated playlist based on your music taste" {
				t.Fatalf("description: got %q", concept.Description)
			}
			if !reflect.DeepEqual(concept.SearchQueries, []string{"new music", "trending", "indie"}) {
				t.Fatalf("queries: got %v", concept.SearchQueries)
			}
		})
	}
}

func TestConceptGenerator_ParsesResponse(t *testing.T) {
	gen := &mockGenerator{response: `{"playlist_name": "Neon Nights", "description": "Synths after dark", "target_mood": "Electric", "search_queries": ["synthwave"], "genre_focus": ["electronic"], "energy_level": "high", "creative_elements": ["retro"]}`}
	g := frozenConceptGenerator(gen)

	concept := g.Concept(context.Background(), "electric", "night drive", "road trip")

	if concept.Name != "Neon Nights" {
		t.Fatalf("name: got %q", concept.Name)
	}
	if concept.TargetMood != "Electric" {
		t.Fatalf("target mood: got %q", concept.TargetMood)
	}
	if concept.Energy != domain.EnergyHigh {
		t.Fatalf("energy: got %q", concept.Energy)
	}
}
