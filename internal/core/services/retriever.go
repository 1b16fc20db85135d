package services

import (
	"context"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
	"github.com/cadenza-labs/cadenza/internal/core/ports"
)

const defaultSearchInterval = 100 * time.Millisecond

// Retriever issues catalog searches for a batch of queries with fixed
// inter-request pacing to stay inside the catalog API's rate limits.
type Retriever struct {
	catalog ports.MusicProvider
	limiter *rate.Limiter
}

// NewRetriever constructs a Retriever. interval <= 0 uses the default pacing.
func NewRetriever(catalog ports.MusicProvider, interval time.Duration) *Retriever {
	if interval <= 0 {
		interval = defaultSearchInterval
	}
	return &Retriever{
		catalog: catalog,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Retrieve runs every query and aggregates all returned tracks, untouched
// and in retrieval order. A single query's failure is logged and skipped;
// it never aborts the batch. The caller treats an empty aggregate as the
// terminal "no candidates" condition.
func (r *Retriever) Retrieve(ctx context.Context, queries []string, perQueryLimit int) []domain.Track {
	var all []domain.Track

	for _, query := range queries {
		if err := r.limiter.Wait(ctx); err != nil {
			log.Printf("WARN retriever: pacing interrupted: %v", err)
			return all
		}

		tracks, err := r.catalog.SearchTracks(ctx, query, perQueryLimit)
		if err != nil {
			log.Printf("WARN retriever: search failed for query %q: %v", query, err)
			continue
		}
		all = append(all, tracks...)
	}

	return all
}
