package main

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/okian/encore/internal/adapters/http/api"
	app "github.com/okian/encore/internal/app"
	"github.com/okian/encore/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("ENCORE_ADDR", ":8080")
			_ = os.Setenv("ENCORE_MAX_RESULTS", "10")
			defer func() {
				_ = os.Unsetenv("ENCORE_ADDR")
				_ = os.Unsetenv("ENCORE_MAX_RESULTS")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MaxResults, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with defaults", func() {
				svc, err := app.New(config.New())
				convey.So(err, convey.ShouldBeNil)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc, err := app.New(config.New())
			convey.So(err, convey.ShouldBeNil)

			mux := http.NewServeMux()
			apiServer := api.NewServer(svc, svc)
			apiServer.Register(context.Background(), mux, svc)

			convey.Convey("Then all routes should be registered", func() {
				srv := &http.Server{
					Addr:              ":0",
					Handler:           mux,
					ReadHeaderTimeout: readHeaderTimeout,
				}
				convey.So(srv.Handler, convey.ShouldNotBeNil)
			})
		})
	})
}
