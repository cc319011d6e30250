package sources

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/okian/encore/internal/domain/model"
)

// NarratorClient asks an external text service for a short prose
// summary of a taste profile. It implements profile.Narrator.
type NarratorClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewNarratorClient creates a narrator client. Empty baseURL or apiKey
// leaves it unconfigured; the profile builder treats that as "no
// narrator".
func NewNarratorClient(baseURL, apiKey string, timeout time.Duration) *NarratorClient {
	return &NarratorClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Configured reports whether the narrator can be called.
func (c *NarratorClient) Configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

type narrateRequest struct {
	TopGenres  []string `json:"top_genres"`
	TopArtists []string `json:"top_artists"`
}

type narrateResponse struct {
	Narrative string `json:"narrative"`
}

// Narrative generates a one-paragraph description of the profile.
func (c *NarratorClient) Narrative(ctx context.Context, prof *model.TasteProfile) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	artists := prof.TopArtistNames
	if len(artists) > 5 {
		artists = artists[:5]
	}

	body, err := json.Marshal(narrateRequest{
		TopGenres:  prof.TopRootGenres(5),
		TopArtists: artists,
	})
	if err != nil {
		return "", fmt.Errorf("narrator: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/narrate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("narrator: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("narrator: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("narrator: unexpected status %d", resp.StatusCode)
	}

	var out narrateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("narrator: decode response: %w", err)
	}
	return out.Narrative, nil
}
