package sources

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

const jambaseFixture = `{
	"events": [
		{
			"identifier": "jb-1",
			"name": "Static Bloom at Mohawk",
			"startDate": "2026-09-12T20:00:00",
			"url": "https://jambase.example/e/jb-1",
			"performer": [
				{"name": "Static Bloom", "genre": ["Synthwave", "Electronic"]}
			],
			"location": {
				"name": "Mohawk",
				"address": {"addressLocality": "Austin"}
			},
			"offers": [{"url": "https://tickets.example/jb-1"}]
		}
	],
	"pagination": {"page": 0, "totalPages": 3}
}`

func TestJambaseSearch(t *testing.T) {
	Convey("Given a Jambase client", t, func() {
		ctx := context.Background()

		Convey("When searching with a key against a fixture server", func(conveyCtx C) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				conveyCtx.So(r.URL.Query().Get("apikey"), ShouldEqual, "key")
				conveyCtx.So(r.URL.Query().Get("geoCity"), ShouldEqual, "Austin")
				conveyCtx.So(r.URL.Query().Get("genreSlug"), ShouldEqual, "electronic")
				_, _ = w.Write([]byte(jambaseFixture))
			}))
			defer srv.Close()

			c := NewJambaseClient("key", srv.URL, 5*time.Second, 0)
			page, err := c.Search(ctx, Query{
				City:        "Austin",
				RadiusMiles: 25,
				Genre:       "electronic",
			}, 0)

			Convey("Then the event is mapped to a candidate", func() {
				So(err, ShouldBeNil)
				So(page.HasMore, ShouldBeTrue)
				So(page.Events, ShouldHaveLength, 1)

				ev := page.Events[0]
				So(ev.SourceID, ShouldEqual, "jb-1")
				So(ev.ArtistName, ShouldEqual, "Static Bloom")
				So(ev.Genres, ShouldResemble, []string{"synthwave", "electronic"})
				So(ev.VenueName, ShouldEqual, "Mohawk")
				So(ev.VenueCity, ShouldEqual, "Austin")
				So(ev.TicketURL, ShouldEqual, "https://tickets.example/jb-1")
				So(ev.Date.Year(), ShouldEqual, 2026)
				So(ev.Source, ShouldEqual, SourceJambase)
			})
		})

		Convey("When the root genre has no Jambase slug", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("unexpected upstream request for unmapped genre")
			}))
			defer srv.Close()

			c := NewJambaseClient("key", srv.URL, 5*time.Second, 0)
			page, err := c.Search(ctx, Query{
				City:        "Austin",
				RadiusMiles: 25,
				Genre:       "other",
			}, 0)

			Convey("Then the genre is dropped without a query", func() {
				So(err, ShouldBeNil)
				So(page.Events, ShouldBeEmpty)
				So(page.HasMore, ShouldBeFalse)
			})
		})

		Convey("When no API key is configured", func() {
			c := NewJambaseClient("", "", 5*time.Second, 0)

			So(c.Configured(), ShouldBeFalse)

			_, err := c.Search(ctx, Query{City: "Austin"}, 0)
			So(errors.Is(err, ErrNotConfigured), ShouldBeTrue)
		})
	})
}

func TestParseEventDate(t *testing.T) {
	Convey("Given upstream date strings", t, func() {
		Convey("When parsing the shapes providers send", func() {
			So(parseEventDate("2026-09-12T20:00:00Z").IsZero(), ShouldBeFalse)
			So(parseEventDate("2026-09-12T20:00:00").IsZero(), ShouldBeFalse)
			So(parseEventDate("2026-09-12").IsZero(), ShouldBeFalse)
		})

		Convey("When the string is junk", func() {
			So(parseEventDate("next friday").IsZero(), ShouldBeTrue)
			So(parseEventDate("").IsZero(), ShouldBeTrue)
		})
	})
}
