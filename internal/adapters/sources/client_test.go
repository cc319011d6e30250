package sources

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClientRetries(t *testing.T) {
	Convey("Given a resilient upstream client", t, func() {
		ctx := context.Background()

		Convey("When the upstream fails once with a 500 then recovers", func() {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if atomic.AddInt32(&calls, 1) == 1 {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				_, _ = w.Write([]byte(`{"ok":true}`))
			}))
			defer srv.Close()

			c := newClient("test", 5*time.Second, 1)
			var out struct {
				OK bool `json:"ok"`
			}
			err := c.getJSON(ctx, srv.URL, nil, &out)

			Convey("Then the retry succeeds", func() {
				So(err, ShouldBeNil)
				So(out.OK, ShouldBeTrue)
				So(calls, ShouldEqual, 2)
			})
		})

		Convey("When the upstream answers 404", func() {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(http.StatusNotFound)
			}))
			defer srv.Close()

			c := newClient("test", 5*time.Second, 2)
			err := c.getJSON(ctx, srv.URL, nil, &struct{}{})

			Convey("Then no retry is attempted", func() {
				So(err, ShouldNotBeNil)
				So(calls, ShouldEqual, 1)
			})
		})

		Convey("When the upstream rejects the credentials", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer srv.Close()

			c := newClient("test", 5*time.Second, 2)
			err := c.getJSON(ctx, srv.URL, nil, &struct{}{})

			So(errors.Is(err, ErrBadCredentials), ShouldBeTrue)
		})

		Convey("When the upstream keeps failing", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer srv.Close()

			c := newClient("test", 5*time.Second, 1)
			err := c.getJSON(ctx, srv.URL, nil, &struct{}{})

			So(err, ShouldNotBeNil)
		})
	})
}
