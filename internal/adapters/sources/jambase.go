package sources

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/okian/encore/internal/domain/model"
)

const defaultJambaseBaseURL = "https://apiv3.jambase.com"

// jambaseGenres maps root genres to Jambase genre slugs. Roots not
// listed here ("other" included) are never sent to Jambase.
var jambaseGenres = map[string]string{
	"blues":      "blues",
	"classical":  "classical",
	"country":    "country",
	"electronic": "electronic",
	"folk":       "folk",
	"hip hop":    "hip-hop-rap",
	"indie":      "indie",
	"jazz":       "jazz",
	"latin":      "latin",
	"metal":      "metal",
	"pop":        "pop",
	"punk":       "punk",
	"r&b":        "rnb-soul",
	"reggae":     "reggae",
	"rock":       "rock",
	"soul":       "rnb-soul",
	"world":      "world",
}

// JambaseClient is the primary event provider.
type JambaseClient struct {
	apiKey  string
	baseURL string
	client  *client
}

// NewJambaseClient creates a Jambase client. An empty apiKey leaves
// the source unconfigured.
func NewJambaseClient(apiKey, baseURL string, timeout time.Duration, retries int) *JambaseClient {
	if baseURL == "" {
		baseURL = defaultJambaseBaseURL
	}
	return &JambaseClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  newClient(SourceJambase, timeout, retries),
	}
}

func (c *JambaseClient) Name() string { return SourceJambase }

func (c *JambaseClient) Configured() bool { return c.apiKey != "" }

type jambaseEvent struct {
	ID         string `json:"identifier"`
	Name       string `json:"name"`
	StartDate  string `json:"startDate"`
	URL        string `json:"url"`
	Performers []struct {
		Name   string   `json:"name"`
		Genres []string `json:"genre"`
	} `json:"performer"`
	Location struct {
		Name    string `json:"name"`
		Address struct {
			City string `json:"addressLocality"`
		} `json:"address"`
	} `json:"location"`
	Offers []struct {
		URL string `json:"url"`
	} `json:"offers"`
}

type jambaseResponse struct {
	Events     []jambaseEvent `json:"events"`
	Pagination struct {
		Page       int `json:"page"`
		TotalPages int `json:"totalPages"`
	} `json:"pagination"`
}

// Search queries Jambase events around the query's city.
func (c *JambaseClient) Search(ctx context.Context, q Query, page int) (Page, error) {
	if !c.Configured() {
		return Page{}, ErrNotConfigured
	}

	genre := mapGenre(jambaseGenres, q.Genre)
	if q.Genre != "" && genre == "" {
		return Page{}, nil
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("geoCity", q.City)
	params.Set("geoRadiusAmount", strconv.Itoa(q.RadiusMiles))
	params.Set("geoRadiusUnits", "mi")
	params.Set("page", strconv.Itoa(page))
	if genre != "" {
		params.Set("genreSlug", genre)
	}
	if !q.DateFrom.IsZero() {
		params.Set("eventDateFrom", q.DateFrom.Format("2006-01-02"))
	}
	if !q.DateTo.IsZero() {
		params.Set("eventDateTo", q.DateTo.Format("2006-01-02"))
	}

	var resp jambaseResponse
	if err := c.client.getJSON(ctx, c.baseURL+"/events?"+params.Encode(), nil, &resp); err != nil {
		return Page{}, err
	}

	events := make([]model.Candidate, 0, len(resp.Events))
	for _, ev := range resp.Events {
		events = append(events, c.toCandidate(ev))
	}

	return Page{
		Events:  events,
		HasMore: resp.Pagination.TotalPages > resp.Pagination.Page+1,
	}, nil
}

func (c *JambaseClient) toCandidate(ev jambaseEvent) model.Candidate {
	artist := ev.Name
	var genres []string
	if len(ev.Performers) > 0 {
		if ev.Performers[0].Name != "" {
			artist = ev.Performers[0].Name
		}
		for _, p := range ev.Performers {
			for _, g := range p.Genres {
				genres = append(genres, strings.ToLower(g))
			}
		}
	}

	ticketURL := ev.URL
	if len(ev.Offers) > 0 && ev.Offers[0].URL != "" {
		ticketURL = ev.Offers[0].URL
	}

	var date time.Time
	if ev.StartDate != "" {
		date = parseEventDate(ev.StartDate)
	}

	return model.Candidate{
		SourceID:   ev.ID,
		ArtistName: artist,
		Genres:     genres,
		VenueName:  ev.Location.Name,
		VenueCity:  ev.Location.Address.City,
		Date:       date,
		TicketURL:  ticketURL,
		EventURL:   ev.URL,
		Source:     SourceJambase,
	}
}

// parseEventDate accepts the date shapes upstreams actually send:
// RFC 3339 with or without zone, and bare dates. Unparseable input
// yields the zero time, which ranks last.
func parseEventDate(s string) time.Time {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
