package spotify

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
)

// SearchTracks issues one track-typed catalog search, scoped to the
// configured market.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	u := c.baseURL + "/search?" + url.Values{
		"q":      {query},
		"type":   {"track"},
		"limit":  {strconv.Itoa(limit)},
		"market": {c.market},
	}.Encode()

	var body struct {
		Tracks struct {
			Items []spotifyTrack `json:"items"`
		} `json:"tracks"`
	}
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	return mapTracks(body.Tracks.Items), nil
}
