package matching

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/encore/internal/domain/genre"
	"github.com/okian/encore/internal/domain/model"
)

func intPtr(v int) *int { return &v }

func electroFolkProfile() *model.TasteProfile {
	return &model.TasteProfile{
		UserID: "user-1",
		RootGenreMap: map[string]float64{
			"electronic": 0.8,
			"folk":       0.2,
		},
		TopArtistNames: []string{"Neon Drift"},
		KnownArtistIDs: []string{"a1"},
	}
}

func TestRankScoring(t *testing.T) {
	Convey("Given an electronic-leaning profile", t, func() {
		engine := New(genre.New())
		prof := electroFolkProfile()

		Convey("When ranking a synthwave act against a bluegrass act", func() {
			pop := intPtr(50)
			ranked := engine.Rank(prof, []model.Candidate{
				{SourceID: "e1", ArtistName: "Midnight Circuit", Genres: []string{"bluegrass"}, Popularity: pop},
				{SourceID: "e2", ArtistName: "Static Bloom", Genres: []string{"synthwave"}, Popularity: pop},
			})

			Convey("Then the synthwave act outranks the bluegrass act", func() {
				So(ranked, ShouldHaveLength, 2)
				So(ranked[0].ArtistName, ShouldEqual, "Static Bloom")
				So(ranked[0].MatchScore, ShouldBeGreaterThan, ranked[1].MatchScore)
				So(ranked[0].Rank, ShouldEqual, 1)
				So(ranked[1].Rank, ShouldEqual, 2)
			})

			Convey("Then explanations name the overlapping roots", func() {
				So(ranked[0].MatchExplanation, ShouldContainSubstring, "electronic")
			})
		})

		Convey("When a candidate's profile overlap strictly increases", func() {
			pop := intPtr(50)
			weak := engine.Rank(prof, []model.Candidate{
				{SourceID: "e1", ArtistName: "A", Genres: []string{"folk"}, Popularity: pop},
			})
			strong := engine.Rank(prof, []model.Candidate{
				{SourceID: "e2", ArtistName: "B", Genres: []string{"techno"}, Popularity: pop},
			})

			Convey("Then the score does not decrease", func() {
				So(strong[0].MatchScore, ShouldBeGreaterThan, weak[0].MatchScore)
			})
		})
	})
}

func TestRankExclusions(t *testing.T) {
	Convey("Given a profile with known artists", t, func() {
		engine := New(genre.New())
		prof := electroFolkProfile()

		Convey("When candidates include a known act by name", func() {
			ranked := engine.Rank(prof, []model.Candidate{
				{SourceID: "e1", ArtistName: "neon drift", Genres: []string{"synthwave"}},
				{SourceID: "e2", ArtistName: "Static Bloom", Genres: []string{"synthwave"}},
			})

			Convey("Then the known act is dropped regardless of case", func() {
				So(ranked, ShouldHaveLength, 1)
				So(ranked[0].ArtistName, ShouldEqual, "Static Bloom")
			})
		})

		Convey("When a tribute band honors a known act", func() {
			ranked := engine.Rank(prof, []model.Candidate{
				{SourceID: "e1", ArtistName: "Tribute to Neon Drift", Genres: []string{"synthwave"}},
				{SourceID: "e2", ArtistName: "Neon Drift Tribute", Genres: []string{"synthwave"}},
			})

			Convey("Then tribute variants are dropped too", func() {
				So(ranked, ShouldBeEmpty)
			})
		})
	})
}

func TestRankPopularity(t *testing.T) {
	Convey("Given popularity-driven adjustments", t, func() {
		engine := New(genre.New())
		prof := electroFolkProfile()
		candFor := func(pop *int) model.Candidate {
			return model.Candidate{SourceID: "e", ArtistName: "X", Genres: []string{"techno"}, Popularity: pop}
		}

		Convey("When an act is under the indie threshold", func() {
			indie := engine.Rank(prof, []model.Candidate{candFor(intPtr(20))})
			mid := engine.Rank(prof, []model.Candidate{candFor(intPtr(50))})

			Convey("Then it scores higher than a mid-popularity act", func() {
				So(indie[0].MatchScore, ShouldBeGreaterThan, mid[0].MatchScore)
				So(indie[0].MatchExplanation, ShouldContainSubstring, "under-the-radar")
			})
		})

		Convey("When an act is above the mainstream threshold", func() {
			big := engine.Rank(prof, []model.Candidate{candFor(intPtr(90))})
			mid := engine.Rank(prof, []model.Candidate{candFor(intPtr(50))})

			So(big[0].MatchScore, ShouldBeLessThan, mid[0].MatchScore)
		})

		Convey("When popularity is unknown", func() {
			unknown := engine.Rank(prof, []model.Candidate{candFor(nil)})
			mid := engine.Rank(prof, []model.Candidate{candFor(intPtr(50))})

			Convey("Then the unknown act gets a small boost", func() {
				So(unknown[0].MatchScore, ShouldBeGreaterThan, mid[0].MatchScore)
			})
		})

		Convey("When indie-only mode is on", func() {
			strict := New(genre.New(), WithIndieOnly(true))
			ranked := strict.Rank(prof, []model.Candidate{
				candFor(intPtr(90)),
				candFor(intPtr(20)),
			})

			Convey("Then mainstream acts are dropped outright", func() {
				So(ranked, ShouldHaveLength, 1)
				So(*ranked[0].Popularity, ShouldEqual, 20)
			})
		})
	})
}

func TestRankOrderingAndTruncation(t *testing.T) {
	Convey("Given candidates with equal scores", t, func() {
		engine := New(genre.New())
		prof := electroFolkProfile()
		pop := intPtr(50)
		early := time.Date(2026, 9, 4, 20, 0, 0, 0, time.UTC)
		late := time.Date(2026, 9, 18, 20, 0, 0, 0, time.UTC)

		Convey("When ranking", func() {
			ranked := engine.Rank(prof, []model.Candidate{
				{SourceID: "e1", ArtistName: "Zenith Array", Genres: []string{"techno"}, Popularity: pop},
				{SourceID: "e2", ArtistName: "Amber Coil", Genres: []string{"techno"}, Popularity: pop, Date: late},
				{SourceID: "e3", ArtistName: "Brine Pool", Genres: []string{"techno"}, Popularity: pop, Date: early},
				{SourceID: "e4", ArtistName: "Alpha Loom", Genres: []string{"techno"}, Popularity: pop, Date: late},
			})

			Convey("Then ties break by date ascending, unknown dates last, then artist", func() {
				So(ranked[0].ArtistName, ShouldEqual, "Brine Pool")
				So(ranked[1].ArtistName, ShouldEqual, "Alpha Loom")
				So(ranked[2].ArtistName, ShouldEqual, "Amber Coil")
				So(ranked[3].ArtistName, ShouldEqual, "Zenith Array")
			})
		})

		Convey("When more candidates exist than the result cap", func() {
			small := New(genre.New(), WithMaxResults(2))
			ranked := small.Rank(prof, []model.Candidate{
				{SourceID: "e1", ArtistName: "A", Genres: []string{"techno"}, Popularity: pop, Date: early},
				{SourceID: "e2", ArtistName: "B", Genres: []string{"techno"}, Popularity: pop, Date: early},
				{SourceID: "e3", ArtistName: "C", Genres: []string{"techno"}, Popularity: pop, Date: early},
			})

			Convey("Then the list is truncated with contiguous ranks", func() {
				So(ranked, ShouldHaveLength, 2)
				So(ranked[0].Rank, ShouldEqual, 1)
				So(ranked[1].Rank, ShouldEqual, 2)
			})
		})
	})
}

func TestRankWithoutGenreSignal(t *testing.T) {
	Convey("Given a profile with no root genres", t, func() {
		engine := New(genre.New())
		prof := &model.TasteProfile{UserID: "user-1"}

		Convey("When ranking acts of differing popularity", func() {
			ranked := engine.Rank(prof, []model.Candidate{
				{SourceID: "e1", ArtistName: "Big Act", Genres: []string{"techno"}, Popularity: intPtr(90)},
				{SourceID: "e2", ArtistName: "Tiny Act", Genres: []string{"techno"}, Popularity: intPtr(50)},
			})

			Convey("Then obscurity wins the baseline", func() {
				So(ranked[0].ArtistName, ShouldEqual, "Tiny Act")
				So(ranked[0].MatchExplanation, ShouldContainSubstring, "obscurity")
			})
		})
	})
}
