package services

import "github.com/cadenza-labs/cadenza/internal/core/domain"

// profileCap bounds how many records reach the analysis prompt, keeping the
// payload small.
const profileCap = 20

// SummarizeArtists reduces raw top-artist records to the compact shape used
// for prompting. Pure transformation; empty input yields an empty list.
func SummarizeArtists(artists []domain.Artist) []domain.ArtistProfile {
	if len(artists) > profileCap {
		artists = artists[:profileCap]
	}

	profiles := make([]domain.ArtistProfile, 0, len(artists))
	for _, a := range artists {
		profiles = append(profiles, domain.ArtistProfile{
			Name:       a.Name,
			Genres:     a.Genres,
			Popularity: a.Popularity,
		})
	}

	return profiles
}

// SummarizeTracks reduces raw top-track records to the compact shape used
// for prompting. The primary artist stands in for the full credit list.
func SummarizeTracks(tracks []domain.Track) []domain.TrackProfile {
	if len(tracks) > profileCap {
		tracks = tracks[:profileCap]
	}

	profiles := make([]domain.TrackProfile, 0, len(tracks))
	for _, t := range tracks {
		primary := ""
		if len(t.Artists) > 0 {
			primary = t.Artists[0]
		}
		profiles = append(profiles, domain.TrackProfile{
			Name:        t.Title,
			Artist:      primary,
			Album:       t.Album,
			ReleaseDate: t.ReleaseDate,
			Popularity:  t.Popularity,
		})
	}

	return profiles
}
