package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

const ticketmasterFixture = `{
	"_embedded": {
		"events": [
			{
				"id": "tm-1",
				"name": "Hollow Pines Live",
				"url": "https://tm.example/e/tm-1",
				"dates": {"start": {"dateTime": "2026-10-02T01:30:00Z"}},
				"classifications": [
					{"genre": {"name": "Folk"}, "subGenre": {"name": "Undefined"}}
				],
				"_embedded": {
					"venues": [{"name": "The Parish", "city": {"name": "Austin"}}],
					"attractions": [
						{"name": "Hollow Pines", "upcomingEvents": {"_total": 12}}
					]
				}
			}
		]
	},
	"page": {"number": 0, "totalPages": 1}
}`

func TestTicketmasterSearch(t *testing.T) {
	Convey("Given a Ticketmaster client", t, func() {
		ctx := context.Background()

		Convey("When searching against a fixture server", func(conveyCtx C) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				conveyCtx.So(r.URL.Path, ShouldEqual, "/events.json")
				conveyCtx.So(r.URL.Query().Get("classificationName"), ShouldEqual, "music")
				conveyCtx.So(r.URL.Query().Get("latlong"), ShouldEqual, "30.2672,-97.7431")
				_, _ = w.Write([]byte(ticketmasterFixture))
			}))
			defer srv.Close()

			c := NewTicketmasterClient("key", srv.URL, 5*time.Second, 0)
			page, err := c.Search(ctx, Query{
				City:        "Austin",
				Lat:         30.2672,
				Lng:         -97.7431,
				RadiusMiles: 25,
			}, 0)

			Convey("Then the event is mapped with a popularity proxy", func() {
				So(err, ShouldBeNil)
				So(page.HasMore, ShouldBeFalse)
				So(page.Events, ShouldHaveLength, 1)

				ev := page.Events[0]
				So(ev.SourceID, ShouldEqual, "tm-1")
				So(ev.ArtistName, ShouldEqual, "Hollow Pines")
				So(ev.Genres, ShouldResemble, []string{"folk"})
				So(ev.VenueName, ShouldEqual, "The Parish")
				So(ev.Popularity, ShouldNotBeNil)
				// 12 upcoming dates reads as a deeply indie act.
				So(*ev.Popularity, ShouldEqual, 15)
				So(ev.Source, ShouldEqual, SourceTicketmaster)
			})
		})

		Convey("When the root genre has no classification name", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("unexpected upstream request for unmapped genre")
			}))
			defer srv.Close()

			c := NewTicketmasterClient("key", srv.URL, 5*time.Second, 0)
			page, err := c.Search(ctx, Query{City: "Austin", Genre: "other"}, 0)

			Convey("Then the genre is dropped without a query", func() {
				So(err, ShouldBeNil)
				So(page.Events, ShouldBeEmpty)
			})
		})

		Convey("When no API key is configured", func() {
			c := NewTicketmasterClient("", "", 5*time.Second, 0)

			So(c.Configured(), ShouldBeFalse)
		})
	})
}

func TestPopularityFromUpcoming(t *testing.T) {
	Convey("Given upcoming event counts", t, func() {
		So(popularityFromUpcoming(5), ShouldEqual, 15)
		So(popularityFromUpcoming(30), ShouldEqual, 30)
		So(popularityFromUpcoming(80), ShouldEqual, 50)
		So(popularityFromUpcoming(200), ShouldEqual, 70)
	})
}
