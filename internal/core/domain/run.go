package domain

import "time"

// RunRecord is the persisted audit record of one generation run.
type RunRecord struct {
	ID          string
	PlaylistID  string
	Name        string
	Description string
	TrackCount  int
	CreatedAt   time.Time
	Tracks      []RunTrack
}

// RunTrack is one selected track within a recorded run.
type RunTrack struct {
	Position int
	TrackID  string
	Title    string
	Artists  string // display string, comma-joined
	Score    float64
}
