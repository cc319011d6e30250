package app

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/encore/internal/adapters/geo"
	"github.com/okian/encore/internal/adapters/sources"
	"github.com/okian/encore/internal/config"
	"github.com/okian/encore/internal/domain/model"
	"github.com/okian/encore/internal/domain/profile"
)

type stubHistory struct {
	artists []profile.Artist
	err     error
}

func (s *stubHistory) TopArtists(_ context.Context, _ string, limit int) ([]profile.Artist, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.artists) {
		return s.artists[:limit], nil
	}
	return s.artists, nil
}

type stubSource struct {
	name       string
	configured bool
	events     []model.Candidate
}

func (s *stubSource) Name() string     { return s.name }
func (s *stubSource) Configured() bool { return s.configured }

func (s *stubSource) Search(_ context.Context, _ sources.Query, page int) (sources.Page, error) {
	if page > 0 {
		return sources.Page{}, nil
	}
	return sources.Page{Events: s.events}, nil
}

func testService(t *testing.T, opts ...Option) *Service {
	t.Helper()

	base := []Option{
		WithHistorySource(&stubHistory{artists: []profile.Artist{
			{ID: "a1", Name: "Neon Drift", Genres: []string{"synthwave"}},
			{ID: "a2", Name: "Hollow Pines", Genres: []string{"folk"}},
		}}),
		WithTagLookup(nil),
		WithResolver(geo.NewResolver()),
		WithEventSources(&stubSource{name: "jambase", configured: true,
			events: []model.Candidate{
				{SourceID: "jb-1", ArtistName: "Static Bloom", Genres: []string{"techno"},
					VenueName: "Mohawk", Source: "jambase"},
				{SourceID: "jb-2", ArtistName: "Neon Drift", Genres: []string{"synthwave"},
					VenueName: "Mohawk", Source: "jambase"},
			}}),
	}

	svc, err := New(config.New(), append(base, opts...)...)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestProfileLifecycle(t *testing.T) {
	Convey("Given a running service", t, func() {
		ctx := context.Background()
		svc := testService(t)

		Convey("When a profile has not been built", func() {
			_, err := svc.Profile(ctx, "user-1")
			So(errors.Is(err, ErrProfileMissing), ShouldBeTrue)
		})

		Convey("When a profile is built", func() {
			built, err := svc.BuildProfile(ctx, "user-1")

			So(err, ShouldBeNil)
			So(built.RootGenreMap["electronic"], ShouldAlmostEqual, 1.0)

			Convey("Then it is retrievable", func() {
				got, err := svc.Profile(ctx, "user-1")
				So(err, ShouldBeNil)
				So(got.UserID, ShouldEqual, "user-1")
			})
		})
	})
}

func TestDiscover(t *testing.T) {
	Convey("Given a service with a built profile", t, func() {
		ctx := context.Background()
		svc := testService(t)
		_, err := svc.BuildProfile(ctx, "user-1")
		So(err, ShouldBeNil)

		Convey("When discovering in a known city", func() {
			resp, err := svc.Discover(ctx, DiscoverRequest{UserID: "user-1", City: "Austin"})

			Convey("Then known artists are excluded and the rest ranked", func() {
				So(err, ShouldBeNil)
				So(resp.Concerts, ShouldHaveLength, 1)
				So(resp.Concerts[0].ArtistName, ShouldEqual, "Static Bloom")
				So(resp.Concerts[0].Rank, ShouldEqual, 1)
				So(resp.TotalScanned, ShouldBeGreaterThanOrEqualTo, 2)
				So(resp.Tier, ShouldEqual, "jambase")
				So(resp.Location.Normalized, ShouldEqual, "austin")
			})
		})

		Convey("When the city cannot be resolved", func() {
			_, err := svc.Discover(ctx, DiscoverRequest{UserID: "user-1", City: "xyzzyville"})

			So(errors.Is(err, geo.ErrLocationNotFound), ShouldBeTrue)
		})

		Convey("When the user has no profile", func() {
			_, err := svc.Discover(ctx, DiscoverRequest{UserID: "ghost", City: "Austin"})

			So(errors.Is(err, ErrProfileMissing), ShouldBeTrue)
		})
	})
}

func TestFavorites(t *testing.T) {
	Convey("Given a service", t, func() {
		ctx := context.Background()
		svc := testService(t)

		concert := model.ScoredConcert{
			Candidate: model.Candidate{
				SourceID: "jb-1", ArtistName: "Static Bloom",
				Genres: []string{"techno"}, VenueName: "Mohawk", Source: "jambase",
			},
			MatchScore: 85,
		}

		Convey("When a concert is saved", func() {
			favorite, err := svc.AddFavorite(ctx, "user-1", concert)

			So(err, ShouldBeNil)
			So(favorite.ID, ShouldNotBeEmpty)

			Convey("Then the snapshot is immune to later mutation", func() {
				concert.Genres[0] = "polka"

				list, err := svc.ListFavorites(ctx, "user-1")
				So(err, ShouldBeNil)
				So(list, ShouldHaveLength, 1)
				So(list[0].Concert.Genres[0], ShouldEqual, "techno")
			})

			Convey("Then it can be removed once", func() {
				So(svc.RemoveFavorite(ctx, "user-1", favorite.ID), ShouldBeNil)
				So(errors.Is(svc.RemoveFavorite(ctx, "user-1", favorite.ID), ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When the input is incomplete", func() {
			_, err := svc.AddFavorite(ctx, "", concert)
			So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)

			_, err = svc.AddFavorite(ctx, "user-1", model.ScoredConcert{})
			So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
		})
	})
}

func TestShares(t *testing.T) {
	Convey("Given a service with a built profile", t, func() {
		ctx := context.Background()
		svc := testService(t)
		_, err := svc.BuildProfile(ctx, "user-1")
		So(err, ShouldBeNil)

		Convey("When a share is created", func() {
			snapshot, err := svc.CreateShare(ctx, "user-1")

			So(err, ShouldBeNil)
			So(snapshot.ID, ShouldNotBeEmpty)
			So(snapshot.TopGenres, ShouldContain, "electronic")
			So(snapshot.TopArtistCount, ShouldEqual, 2)

			Convey("Then it is retrievable by id", func() {
				got, err := svc.GetShare(ctx, snapshot.ID)
				So(err, ShouldBeNil)
				So(got.UserID, ShouldEqual, "user-1")
			})
		})

		Convey("When sharing without a profile", func() {
			_, err := svc.CreateShare(ctx, "ghost")
			So(errors.Is(err, ErrProfileMissing), ShouldBeTrue)
		})

		Convey("When fetching an unknown share", func() {
			_, err := svc.GetShare(ctx, "nope")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestStats(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := testService(t)
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()

		Convey("When reading stats", func() {
			stats := svc.Stats()

			So(stats["configured_sources"], ShouldResemble, []string{"jambase"})
			So(stats["goroutines"], ShouldNotBeNil)
		})
	})
}

func TestDiscoverEndToEnd(t *testing.T) {
	Convey("Given an electronic-heavy listener", t, func() {
		ctx := context.Background()
		svc := testService(t,
			WithHistorySource(&stubHistory{artists: []profile.Artist{
				{ID: "a1", Name: "Neon Drift", Genres: []string{"synthwave", "techno"}},
				{ID: "a2", Name: "Hollow Pines", Genres: []string{"bluegrass"}},
			}}),
			WithEventSources(&stubSource{name: "jambase", configured: true,
				events: []model.Candidate{
					{SourceID: "e1", ArtistName: "Midnight Circuit", Genres: []string{"synthwave"},
						Date: time.Date(2026, 9, 10, 20, 0, 0, 0, time.UTC), Source: "jambase"},
					{SourceID: "e2", ArtistName: "Prairie Line", Genres: []string{"bluegrass"},
						Date: time.Date(2026, 9, 4, 20, 0, 0, 0, time.UTC), Source: "jambase"},
				}}))

		_, err := svc.BuildProfile(ctx, "user-1")
		So(err, ShouldBeNil)

		Convey("When discovering", func() {
			resp, err := svc.Discover(ctx, DiscoverRequest{UserID: "user-1", City: "Austin"})

			Convey("Then the electronic act outranks the folk act", func() {
				So(err, ShouldBeNil)
				So(resp.Concerts, ShouldHaveLength, 2)
				So(resp.Concerts[0].ArtistName, ShouldEqual, "Midnight Circuit")
				So(resp.Concerts[0].MatchScore, ShouldBeGreaterThan, resp.Concerts[1].MatchScore)
			})
		})
	})
}
