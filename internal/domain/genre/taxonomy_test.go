package genre

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCanonicalize(t *testing.T) {
	Convey("Given a taxonomy with the default rules", t, func() {
		tax := New()

		Convey("When a tag matches exactly one keyword", func() {
			weights := tax.Canonicalize("synthwave")

			Convey("Then the whole weight lands on that root", func() {
				So(weights, ShouldResemble, map[string]float64{"electronic": 1})
			})
		})

		Convey("When a tag matches no keyword", func() {
			weights := tax.Canonicalize("vaporcore nonsense")

			Convey("Then it maps to the catch-all root", func() {
				So(weights, ShouldResemble, map[string]float64{RootOther: 1})
			})
		})

		Convey("When the tag is empty", func() {
			weights := tax.Canonicalize("   ")

			Convey("Then it maps to the catch-all root", func() {
				So(weights, ShouldResemble, map[string]float64{RootOther: 1})
			})
		})

		Convey("When a specific keyword contains a generic one", func() {
			weights := tax.Canonicalize("chamber pop")

			Convey("Then the longer keyword suppresses the shorter", func() {
				So(weights, ShouldResemble, map[string]float64{"pop": 1})
			})
		})

		Convey("When a tag matches several independent keywords", func() {
			weights := tax.Canonicalize("folk rock")

			Convey("Then the weight splits evenly", func() {
				So(weights["folk"], ShouldAlmostEqual, 0.5)
				So(weights["rock"], ShouldAlmostEqual, 0.5)
			})
		})

		Convey("When matching is case-insensitive", func() {
			weights := tax.Canonicalize("  Indie Rock ")

			Convey("Then weights split across indie and rock", func() {
				So(weights["indie"], ShouldAlmostEqual, 0.5)
				So(weights["rock"], ShouldAlmostEqual, 0.5)
			})
		})

		Convey("Then every tag yields weights summing to one", func() {
			tags := []string{
				"synthwave", "dream pop", "post-punk revival", "jazz fusion",
				"garbage", "", "latin jazz house", "deep house", "trap soul",
			}
			for _, tag := range tags {
				sum := 0.0
				for _, w := range tax.Canonicalize(tag) {
					sum += w
				}
				So(math.Abs(sum-1), ShouldBeLessThan, 1e-9)
			}
		})

		Convey("Then repeated calls are deterministic", func() {
			first := tax.Canonicalize("latin jazz house")
			second := tax.Canonicalize("latin jazz house")
			So(second, ShouldResemble, first)
		})
	})
}

func TestRoots(t *testing.T) {
	Convey("Given the default taxonomy", t, func() {
		tax := New()

		Convey("When listing roots", func() {
			roots := tax.Roots()

			Convey("Then the catch-all root is present and the list is sorted", func() {
				So(roots, ShouldContain, RootOther)
				for i := 1; i < len(roots); i++ {
					So(roots[i-1], ShouldBeLessThan, roots[i])
				}
			})
		})
	})
}

func TestWithRules(t *testing.T) {
	Convey("Given a taxonomy with custom rules", t, func() {
		tax := New(WithRules([]Rule{
			{Keyword: "zydeco", Root: "folk"},
		}))

		Convey("When canonicalizing a custom keyword", func() {
			So(tax.Canonicalize("zydeco"), ShouldResemble, map[string]float64{"folk": 1})
		})

		Convey("When canonicalizing a default keyword", func() {
			Convey("Then it no longer matches", func() {
				So(tax.Canonicalize("rock"), ShouldResemble, map[string]float64{RootOther: 1})
			})
		})
	})
}
