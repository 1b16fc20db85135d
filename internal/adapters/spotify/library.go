package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
	"github.com/cadenza-labs/cadenza/internal/core/ports"
)

// CurrentUserID resolves the listener the injected session is bound to.
func (c *Client) CurrentUserID(ctx context.Context) (string, error) {
	var user struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/me", &user); err != nil {
		return "", err
	}
	if user.ID == "" {
		return "", fmt.Errorf("spotify adapter: profile response missing id")
	}
	return user.ID, nil
}

// TopArtists returns the listener's top artists for the given time range.
func (c *Client) TopArtists(ctx context.Context, timeRange ports.TimeRange, limit int) ([]domain.Artist, error) {
	u := c.baseURL + "/me/top/artists?" + url.Values{
		"time_range": {string(timeRange)},
		"limit":      {strconv.Itoa(limit)},
	}.Encode()

	var body struct {
		Items []spotifyArtist `json:"items"`
	}
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	artists := make([]domain.Artist, 0, len(body.Items))
	for _, sa := range body.Items {
		artists = append(artists, sa.toDomain())
	}
	return artists, nil
}

// TopTracks returns the listener's top tracks for the given time range.
// This endpoint returns plain track objects.
func (c *Client) TopTracks(ctx context.Context, timeRange ports.TimeRange, limit int) ([]domain.Track, error) {
	u := c.baseURL + "/me/top/tracks?" + url.Values{
		"time_range": {string(timeRange)},
		"limit":      {strconv.Itoa(limit)},
	}.Encode()

	var body struct {
		Items []spotifyTrack `json:"items"`
	}
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	return mapTracks(body.Items), nil
}

// RecentlyPlayed returns the listener's play history. This endpoint wraps
// each track in a play item; the wrapper is peeled off here.
func (c *Client) RecentlyPlayed(ctx context.Context, limit int) ([]domain.Track, error) {
	u := c.baseURL + "/me/player/recently-played?limit=" + strconv.Itoa(limit)

	var body struct {
		Items []trackItem `json:"items"`
	}
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	return mapTrackItems(body.Items), nil
}

// SavedTracks returns the listener's saved library tracks. Same wrapper
// shape as RecentlyPlayed.
func (c *Client) SavedTracks(ctx context.Context, limit int) ([]domain.Track, error) {
	u := c.baseURL + "/me/tracks?limit=" + strconv.Itoa(limit)

	var body struct {
		Items []trackItem `json:"items"`
	}
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	return mapTrackItems(body.Items), nil
}
