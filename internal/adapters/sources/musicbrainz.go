package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultMusicBrainzBaseURL = "https://musicbrainz.org/ws/2"

// MusicBrainzClient looks up artist genre tags and discovers artists
// by tag. MusicBrainz allows roughly one request per second; a shared
// limiter enforces that across all callers.
type MusicBrainzClient struct {
	baseURL string
	client  *client
	limiter *rate.Limiter

	mu         sync.RWMutex
	tagCache   map[string][]string
	byTagCache map[string][]DiscoveredArtist
}

// DiscoveredArtist is an act found by tag search, used to seed the
// synthesized discovery tier.
type DiscoveredArtist struct {
	ID   string
	Name string
	Tags []string
}

// NewMusicBrainzClient creates a MusicBrainz client. No credentials
// are needed.
func NewMusicBrainzClient(baseURL string, timeout time.Duration, retries int) *MusicBrainzClient {
	if baseURL == "" {
		baseURL = defaultMusicBrainzBaseURL
	}
	return &MusicBrainzClient{
		baseURL:    baseURL,
		client:     newClient("musicbrainz", timeout, retries),
		limiter:    rate.NewLimiter(rate.Every(time.Second), 1),
		tagCache:   make(map[string][]string),
		byTagCache: make(map[string][]DiscoveredArtist),
	}
}

type mbArtist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Type  string `json:"type"`
	Tags  []struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	} `json:"tags"`
}

type mbResponse struct {
	Artists []mbArtist `json:"artists"`
}

// ArtistTags returns the genre tags for an artist, or nil when the
// best match scores too low to trust.
func (c *MusicBrainzClient) ArtistTags(ctx context.Context, artistName string) ([]string, error) {
	key := strings.ToLower(strings.TrimSpace(artistName))

	c.mu.RLock()
	cached, ok := c.tagCache[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	resp, err := c.search(ctx, fmt.Sprintf("artist:%q", artistName), 1)
	if err != nil {
		return nil, err
	}

	var tags []string
	if len(resp.Artists) > 0 && resp.Artists[0].Score >= 75 {
		tags = tagNames(resp.Artists[0])
	}

	c.mu.Lock()
	c.tagCache[key] = tags
	c.mu.Unlock()

	return tags, nil
}

// ArtistsByTag searches for artists carrying a genre tag, skipping the
// placeholder acts MusicBrainz keeps for compilations.
func (c *MusicBrainzClient) ArtistsByTag(ctx context.Context, tag string, limit int) ([]DiscoveredArtist, error) {
	key := "tag:" + strings.ToLower(strings.TrimSpace(tag))

	c.mu.RLock()
	cached, ok := c.byTagCache[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	resp, err := c.search(ctx, fmt.Sprintf("tag:%q", tag), 25)
	if err != nil {
		return nil, err
	}

	discovered := make([]DiscoveredArtist, 0, len(resp.Artists))
	for _, artist := range resp.Artists {
		name := strings.TrimSpace(artist.Name)
		switch strings.ToLower(name) {
		case "", "various artists", "[unknown]", "unknown":
			continue
		}
		discovered = append(discovered, DiscoveredArtist{
			ID:   artist.ID,
			Name: name,
			Tags: tagNames(artist),
		})
		if len(discovered) >= limit {
			break
		}
	}

	c.mu.Lock()
	c.byTagCache[key] = discovered
	c.mu.Unlock()

	return discovered, nil
}

func (c *MusicBrainzClient) search(ctx context.Context, query string, limit int) (*mbResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("fmt", "json")

	header := http.Header{}
	header.Set("User-Agent", "encore/1.0 (concert-discovery)")

	var resp mbResponse
	if err := c.client.getJSON(ctx, c.baseURL+"/artist/?"+params.Encode(), header, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func tagNames(artist mbArtist) []string {
	names := make([]string, 0, len(artist.Tags))
	for _, t := range artist.Tags {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	if len(names) > 8 {
		names = names[:8]
	}
	return names
}
