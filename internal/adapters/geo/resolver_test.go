package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type fakeGeocoder struct {
	loc   *Location
	err   error
	calls int
}

func (f *fakeGeocoder) Geocode(_ context.Context, _ string) (*Location, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.loc, nil
}

func TestResolve(t *testing.T) {
	Convey("Given a resolver over the bundled gazetteer", t, func() {
		ctx := context.Background()
		r := NewResolver()

		Convey("When resolving a known city", func() {
			loc, err := r.Resolve(ctx, "Austin")

			So(err, ShouldBeNil)
			So(loc.Lat, ShouldAlmostEqual, 30.2672)
			So(loc.Lng, ShouldAlmostEqual, -97.7431)
			So(loc.Normalized, ShouldEqual, "austin")
		})

		Convey("When the input carries case, spaces and a country suffix", func() {
			loc, err := r.Resolve(ctx, "  Austin, USA ")

			So(err, ShouldBeNil)
			So(loc.Lat, ShouldAlmostEqual, 30.2672)
		})

		Convey("When the input carries a state", func() {
			loc, err := r.Resolve(ctx, "Portland, OR")

			Convey("Then the city part before the comma matches", func() {
				So(err, ShouldBeNil)
				So(loc.Lat, ShouldAlmostEqual, 45.5152)
			})
		})

		Convey("When only a prefix of a city is given", func() {
			first, err1 := r.Resolve(ctx, "brookly")
			second, err2 := r.Resolve(ctx, "brookly")

			Convey("Then fuzzy matching is deterministic", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first.Coordinates, ShouldResemble, second.Coordinates)
				So(first.Lat, ShouldAlmostEqual, 40.6782)
			})
		})

		Convey("When the location is blank", func() {
			_, err := r.Resolve(ctx, "   ")

			So(errors.Is(err, ErrEmptyLocation), ShouldBeTrue)
		})

		Convey("When the location is unknown and no geocoder is set", func() {
			_, err := r.Resolve(ctx, "xyzzyville")

			So(errors.Is(err, ErrLocationNotFound), ShouldBeTrue)
		})
	})
}

func TestResolveFallback(t *testing.T) {
	Convey("Given a resolver with a geocoder fallback", t, func() {
		ctx := context.Background()

		Convey("When the gazetteer misses", func() {
			geocoder := &fakeGeocoder{loc: &Location{
				Coordinates: Coordinates{Lat: 48.1173, Lng: -122.7604},
				DisplayName: "Port Townsend, WA",
			}}
			r := NewResolver(WithGeocoder(geocoder))

			first, err := r.Resolve(ctx, "xyzzyville")
			So(err, ShouldBeNil)
			So(first.Lat, ShouldAlmostEqual, 48.1173)

			Convey("Then the result is remembered for the process", func() {
				second, err := r.Resolve(ctx, "xyzzyville")
				So(err, ShouldBeNil)
				So(second.Lat, ShouldAlmostEqual, 48.1173)
				So(geocoder.calls, ShouldEqual, 1)
			})
		})

		Convey("When the geocoder fails", func() {
			r := NewResolver(WithGeocoder(&fakeGeocoder{err: errors.New("rate limited")}))

			_, err := r.Resolve(ctx, "xyzzyville")

			So(errors.Is(err, ErrLocationNotFound), ShouldBeTrue)
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given location strings in varied shapes", t, func() {
		cases := map[string]string{
			"Austin":               "austin",
			"  Austin, USA ":       "austin",
			"Portland, OR, USA":    "portland, or",
			"NEW YORK, US":         "new york",
			"Boston,":              "boston",
			"Denver, United States": "denver",
		}

		for raw, want := range cases {
			So(Normalize(raw), ShouldEqual, want)
		}
	})
}

func TestNominatimClient(t *testing.T) {
	Convey("Given a geocoder endpoint", t, func() {
		ctx := context.Background()

		Convey("When the endpoint returns a result", func(conveyCtx C) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				conveyCtx.So(r.URL.Query().Get("countrycodes"), ShouldEqual, "us")
				conveyCtx.So(r.Header.Get("User-Agent"), ShouldNotBeEmpty)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[{"lat":"48.1173","lon":"-122.7604","display_name":"Port Townsend, WA"}]`))
			}))
			defer srv.Close()

			loc, err := NewNominatimClient(srv.URL).Geocode(ctx, "Port Townsend")

			So(err, ShouldBeNil)
			So(loc.Lat, ShouldAlmostEqual, 48.1173)
			So(loc.DisplayName, ShouldEqual, "Port Townsend, WA")
		})

		Convey("When the endpoint returns no results", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			}))
			defer srv.Close()

			_, err := NewNominatimClient(srv.URL).Geocode(ctx, "Nowhere")

			So(errors.Is(err, ErrLocationNotFound), ShouldBeTrue)
		})

		Convey("When the endpoint errors", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			_, err := NewNominatimClient(srv.URL).Geocode(ctx, "Anywhere")

			So(err, ShouldNotBeNil)
		})
	})
}
