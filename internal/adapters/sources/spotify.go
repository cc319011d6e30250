package sources

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/okian/encore/internal/domain/profile"
)

const defaultSpotifyBaseURL = "https://api.spotify.com/v1"

// SpotifyClient reads a user's listening history. It implements
// profile.HistorySource.
type SpotifyClient struct {
	baseURL     string
	accessToken string
	client      *client
}

// NewSpotifyClient creates a Spotify client. An empty accessToken
// leaves the source unconfigured.
func NewSpotifyClient(accessToken, baseURL string, timeout time.Duration, retries int) *SpotifyClient {
	if baseURL == "" {
		baseURL = defaultSpotifyBaseURL
	}
	return &SpotifyClient{
		baseURL:     baseURL,
		accessToken: accessToken,
		client:      newClient("spotify", timeout, retries),
	}
}

// Configured reports whether an access token is present.
func (c *SpotifyClient) Configured() bool { return c.accessToken != "" }

type spotifyArtist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
}

type spotifyTopArtists struct {
	Items []spotifyArtist `json:"items"`
}

// TopArtists returns the user's top artists in affinity order.
func (c *SpotifyClient) TopArtists(ctx context.Context, _ string, limit int) ([]profile.Artist, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("time_range", "medium_term")
	params.Set("limit", strconv.Itoa(limit))

	var resp spotifyTopArtists
	if err := c.client.getJSON(ctx, c.baseURL+"/me/top/artists?"+params.Encode(), c.authHeader(), &resp); err != nil {
		return nil, err
	}

	artists := make([]profile.Artist, 0, len(resp.Items))
	for _, item := range resp.Items {
		artists = append(artists, profile.Artist{
			ID:     item.ID,
			Name:   item.Name,
			Genres: item.Genres,
		})
	}
	return artists, nil
}

type spotifySearch struct {
	Artists struct {
		Items []spotifyArtist `json:"items"`
	} `json:"artists"`
}

// ArtistPopularity looks up an artist's Spotify popularity (0..100).
// A nil result means the artist was not found.
func (c *SpotifyClient) ArtistPopularity(ctx context.Context, artistName string) (*int, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("q", artistName)
	params.Set("type", "artist")
	params.Set("limit", "1")

	var resp spotifySearch
	if err := c.client.getJSON(ctx, c.baseURL+"/search?"+params.Encode(), c.authHeader(), &resp); err != nil {
		return nil, err
	}

	if len(resp.Artists.Items) == 0 {
		return nil, nil
	}
	pop := resp.Artists.Items[0].Popularity
	return &pop, nil
}

func (c *SpotifyClient) authHeader() http.Header {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.accessToken)
	return header
}
