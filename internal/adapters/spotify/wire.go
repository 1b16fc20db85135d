package spotify

import "github.com/cadenza-labs/cadenza/internal/core/domain"

// Wire types for the Spotify Web API. The API returns tracks in two shapes:
// plain track objects (top tracks, search results) and wrapper items with a
// nested track (recently played, saved tracks). Both are normalized to
// domain.Track right here so the core only ever sees one shape.

type spotifyArtist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
}

func (sa spotifyArtist) toDomain() domain.Artist {
	return domain.Artist{
		ID:         sa.ID,
		Name:       sa.Name,
		Genres:     sa.Genres,
		Popularity: sa.Popularity,
	}
}

type spotifyAlbum struct {
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date"`
}

type spotifyTrack struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	URI        string          `json:"uri"`
	Popularity int             `json:"popularity"`
	Artists    []spotifyArtist `json:"artists"`
	Album      spotifyAlbum    `json:"album"`
}

func (st spotifyTrack) toDomain() domain.Track {
	artists := make([]string, 0, len(st.Artists))
	for _, a := range st.Artists {
		artists = append(artists, a.Name)
	}

	return domain.Track{
		ID:          st.ID,
		Title:       st.Name,
		Artists:     artists,
		Album:       st.Album.Name,
		ReleaseDate: st.Album.ReleaseDate,
		Popularity:  st.Popularity,
		URI:         st.URI,
	}
}

// trackItem is the wrapper shape used by recently-played and saved-tracks
// responses.
type trackItem struct {
	Track spotifyTrack `json:"track"`
}

func mapTracks(items []spotifyTrack) []domain.Track {
	tracks := make([]domain.Track, 0, len(items))
	for _, st := range items {
		tracks = append(tracks, st.toDomain())
	}
	return tracks
}

func mapTrackItems(items []trackItem) []domain.Track {
	tracks := make([]domain.Track, 0, len(items))
	for _, item := range items {
		tracks = append(tracks, item.Track.toDomain())
	}
	return tracks
}

// spotifyPlaylist is the playlist creation response.
type spotifyPlaylist struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Public       bool   `json:"public"`
	Owner        struct {
		ID string `json:"id"`
	} `json:"owner"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

func (sp spotifyPlaylist) toDomain() domain.Playlist {
	return domain.Playlist{
		ID:          sp.ID,
		OwnerID:     sp.Owner.ID,
		Name:        sp.Name,
		Description: sp.Description,
		Public:      sp.Public,
		URL:         sp.ExternalURLs.Spotify,
	}
}
