package sources

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/okian/encore/internal/domain/model"
)

const defaultTicketmasterBaseURL = "https://app.ticketmaster.com/discovery/v2"

// ticketmasterGenres maps root genres to Ticketmaster classification
// names.
// Unlisted roots ("other" included) are never sent to Ticketmaster.
var ticketmasterGenres = map[string]string{
	"blues":      "Blues",
	"classical":  "Classical",
	"country":    "Country",
	"electronic": "Dance/Electronic",
	"folk":       "Folk",
	"hip hop":    "Hip-Hop/Rap",
	"indie":      "Alternative",
	"jazz":       "Jazz",
	"latin":      "Latin",
	"metal":      "Metal",
	"pop":        "Pop",
	"punk":       "Alternative",
	"r&b":        "R&B",
	"reggae":     "Reggae",
	"rock":       "Rock",
	"soul":       "R&B",
	"world":      "World",
}

// TicketmasterClient is the secondary event provider.
type TicketmasterClient struct {
	apiKey  string
	baseURL string
	client  *client
}

// NewTicketmasterClient creates a Ticketmaster Discovery client. An
// empty apiKey leaves the source unconfigured.
func NewTicketmasterClient(apiKey, baseURL string, timeout time.Duration, retries int) *TicketmasterClient {
	if baseURL == "" {
		baseURL = defaultTicketmasterBaseURL
	}
	return &TicketmasterClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  newClient(SourceTicketmaster, timeout, retries),
	}
}

func (c *TicketmasterClient) Name() string { return SourceTicketmaster }

func (c *TicketmasterClient) Configured() bool { return c.apiKey != "" }

type tmEvent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Dates struct {
		Start struct {
			DateTime  string `json:"dateTime"`
			LocalDate string `json:"localDate"`
		} `json:"start"`
	} `json:"dates"`
	Classifications []struct {
		Genre struct {
			Name string `json:"name"`
		} `json:"genre"`
		SubGenre struct {
			Name string `json:"name"`
		} `json:"subGenre"`
	} `json:"classifications"`
	Embedded struct {
		Venues []struct {
			Name string `json:"name"`
			City struct {
				Name string `json:"name"`
			} `json:"city"`
		} `json:"venues"`
		Attractions []struct {
			Name           string `json:"name"`
			UpcomingEvents struct {
				Total int `json:"_total"`
			} `json:"upcomingEvents"`
		} `json:"attractions"`
	} `json:"_embedded"`
}

type tmResponse struct {
	Embedded struct {
		Events []tmEvent `json:"events"`
	} `json:"_embedded"`
	Page struct {
		Number     int `json:"number"`
		TotalPages int `json:"totalPages"`
	} `json:"page"`
}

// Search queries the Ticketmaster Discovery API for music events.
func (c *TicketmasterClient) Search(ctx context.Context, q Query, page int) (Page, error) {
	if !c.Configured() {
		return Page{}, ErrNotConfigured
	}

	genre := mapGenre(ticketmasterGenres, q.Genre)
	if q.Genre != "" && genre == "" {
		return Page{}, nil
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("classificationName", "music")
	params.Set("latlong", strconv.FormatFloat(q.Lat, 'f', 4, 64)+","+strconv.FormatFloat(q.Lng, 'f', 4, 64))
	params.Set("radius", strconv.Itoa(q.RadiusMiles))
	params.Set("unit", "miles")
	params.Set("size", "50")
	params.Set("sort", "date,asc")
	params.Set("page", strconv.Itoa(page))
	if genre != "" {
		params.Set("keyword", genre)
	}
	if !q.DateFrom.IsZero() {
		params.Set("startDateTime", q.DateFrom.UTC().Format("2006-01-02T15:04:05Z"))
	}
	if !q.DateTo.IsZero() {
		params.Set("endDateTime", q.DateTo.UTC().Format("2006-01-02T15:04:05Z"))
	}

	var resp tmResponse
	if err := c.client.getJSON(ctx, c.baseURL+"/events.json?"+params.Encode(), nil, &resp); err != nil {
		return Page{}, err
	}

	events := make([]model.Candidate, 0, len(resp.Embedded.Events))
	for _, ev := range resp.Embedded.Events {
		events = append(events, c.toCandidate(ev))
	}

	return Page{
		Events:  events,
		HasMore: resp.Page.TotalPages > resp.Page.Number+1,
	}, nil
}

func (c *TicketmasterClient) toCandidate(ev tmEvent) model.Candidate {
	artist := ev.Name
	var popularity *int
	if len(ev.Embedded.Attractions) > 0 {
		if ev.Embedded.Attractions[0].Name != "" {
			artist = ev.Embedded.Attractions[0].Name
		}
		// Upcoming event count is a usable obscurity proxy: acts with
		// few dates on sale skew indie.
		if total := ev.Embedded.Attractions[0].UpcomingEvents.Total; total > 0 {
			popularity = intPtr(popularityFromUpcoming(total))
		}
	}

	var genres []string
	for _, cls := range ev.Classifications {
		for _, name := range []string{cls.Genre.Name, cls.SubGenre.Name} {
			if name != "" && name != "Undefined" {
				genres = append(genres, strings.ToLower(name))
			}
		}
	}

	var venueName, venueCity string
	if len(ev.Embedded.Venues) > 0 {
		venueName = ev.Embedded.Venues[0].Name
		venueCity = ev.Embedded.Venues[0].City.Name
	}

	dateStr := ev.Dates.Start.DateTime
	if dateStr == "" {
		dateStr = ev.Dates.Start.LocalDate
	}

	return model.Candidate{
		SourceID:   ev.ID,
		ArtistName: artist,
		Genres:     genres,
		VenueName:  venueName,
		VenueCity:  venueCity,
		Date:       parseEventDate(dateStr),
		TicketURL:  ev.URL,
		EventURL:   ev.URL,
		Popularity: popularity,
		Source:     SourceTicketmaster,
	}
}

func popularityFromUpcoming(total int) int {
	switch {
	case total < 20:
		return 15
	case total < 50:
		return 30
	case total < 100:
		return 50
	default:
		return 70
	}
}

func intPtr(v int) *int { return &v }
