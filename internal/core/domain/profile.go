package domain

// ArtistProfile is the compact artist record embedded in analysis prompts.
type ArtistProfile struct {
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
}

// TrackProfile is the compact track record embedded in analysis prompts.
type TrackProfile struct {
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	ReleaseDate string `json:"release_date"`
	Popularity  int    `json:"popularity"`
}
