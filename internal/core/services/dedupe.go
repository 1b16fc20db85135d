package services

import "github.com/cadenza-labs/cadenza/internal/core/domain"

// Dedupe filters scored candidates against the listener's history and
// against themselves. History lists arrive already normalized to plain
// tracks at the adapter boundary, whatever wrapper shape the catalog used.
// Candidates are walked in their given (score-sorted) order: the first
// occurrence of each track identifier survives, anything historical or
// identifier-less is dropped. Single pass, order-preserving.
func Dedupe(candidates []domain.ScoredCandidate, history ...[]domain.Track) []domain.ScoredCandidate {
	historyIDs := make(map[string]struct{})
	for _, list := range history {
		for _, track := range list {
			if track.ID != "" {
				historyIDs[track.ID] = struct{}{}
			}
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	unique := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		id := candidate.Track.ID
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		if _, owned := historyIDs[id]; owned {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, candidate)
	}

	return unique
}
