package config_test

import (
	"testing"

	"github.com/okian/encore/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.CacheTTLSeconds, convey.ShouldEqual, 3600)
			convey.So(cfg.ShareTTLSeconds, convey.ShouldEqual, 0)
			convey.So(cfg.TopArtistCount, convey.ShouldEqual, 50)
			convey.So(cfg.TopGenreCount, convey.ShouldEqual, 5)
			convey.So(cfg.MaxPagesPerQuery, convey.ShouldEqual, 3)
			convey.So(cfg.MaxCandidates, convey.ShouldEqual, 200)
			convey.So(cfg.MaxResults, convey.ShouldEqual, 25)
			convey.So(cfg.IndieThreshold, convey.ShouldEqual, 40)
			convey.So(cfg.IndieBoost, convey.ShouldEqual, 10)
			convey.So(cfg.MainstreamThreshold, convey.ShouldEqual, 75)
			convey.So(cfg.MainstreamPenalty, convey.ShouldEqual, 10)
			convey.So(cfg.UnknownPopularityBoost, convey.ShouldEqual, 5)
			convey.So(cfg.IndieOnly, convey.ShouldBeFalse)
			convey.So(cfg.SourceRetries, convey.ShouldEqual, 1)
			convey.So(cfg.JambaseAPIKey, convey.ShouldBeBlank)
			convey.So(cfg.TicketmasterAPIKey, convey.ShouldBeBlank)
		})
	})
}
