package spotify

import (
	"context"
	"fmt"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
)

type createPlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Public      bool   `json:"public"`
}

type addTracksRequest struct {
	URIs []string `json:"uris"`
}

// CreatePlaylist creates a playlist on the listener's account and returns
// the created playlist reference.
func (c *Client) CreatePlaylist(ctx context.Context, ownerID, name, description string, public bool) (domain.Playlist, error) {
	u := fmt.Sprintf("%s/users/%s/playlists", c.baseURL, ownerID)
	body := createPlaylistRequest{Name: name, Description: description, Public: public}

	var sp spotifyPlaylist
	if err := c.postJSON(ctx, u, body, &sp); err != nil {
		return domain.Playlist{}, err
	}

	return sp.toDomain(), nil
}

// AddTracks appends one batch of track URIs to a playlist. The caller is
// responsible for keeping batches within the API's 100-URI cap.
func (c *Client) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	u := fmt.Sprintf("%s/playlists/%s/tracks", c.baseURL, playlistID)
	return c.postJSON(ctx, u, addTracksRequest{URIs: uris}, nil)
}
