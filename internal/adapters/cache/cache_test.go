package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

type fakeClock struct {
	mu sync.Mutex
	at time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{at: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.at
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.at = f.at.Add(d)
	f.mu.Unlock()
}

func TestGetOrFetch(t *testing.T) {
	Convey("Given a TTL cache", t, func() {
		ctx := context.Background()
		clock := newFakeClock()
		c := New[string](time.Hour, WithClock[string](clock.Now))

		Convey("When fetching a cold key", func() {
			var calls int32
			fetch := func(context.Context) (string, error) {
				atomic.AddInt32(&calls, 1)
				return "value", nil
			}

			v, hit, err := c.GetOrFetch(ctx, "k", fetch)

			So(err, ShouldBeNil)
			So(hit, ShouldBeFalse)
			So(v, ShouldEqual, "value")
			So(calls, ShouldEqual, 1)

			Convey("Then a second call is a hit without refetching", func() {
				v, hit, err := c.GetOrFetch(ctx, "k", fetch)
				So(err, ShouldBeNil)
				So(hit, ShouldBeTrue)
				So(v, ShouldEqual, "value")
				So(calls, ShouldEqual, 1)
			})
		})

		Convey("When the fetch fails", func() {
			boom := errors.New("upstream down")
			_, _, err := c.GetOrFetch(ctx, "k", func(context.Context) (string, error) {
				return "", boom
			})

			Convey("Then the error propagates and nothing is cached", func() {
				So(errors.Is(err, boom), ShouldBeTrue)
				_, ok := c.Get("k")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the TTL elapses", func() {
			c.Set("k", "stale")
			clock.Advance(time.Hour + time.Second)

			_, ok := c.Get("k")
			So(ok, ShouldBeFalse)

			Convey("Then GetOrFetch refetches", func() {
				v, hit, err := c.GetOrFetch(ctx, "k", func(context.Context) (string, error) {
					return "fresh", nil
				})
				So(err, ShouldBeNil)
				So(hit, ShouldBeFalse)
				So(v, ShouldEqual, "fresh")
			})
		})
	})
}

func TestSingleFlight(t *testing.T) {
	Convey("Given many concurrent misses on one key", t, func() {
		ctx := context.Background()
		c := New[string](time.Hour)

		var calls int32
		gate := make(chan struct{})
		fetch := func(context.Context) (string, error) {
			atomic.AddInt32(&calls, 1)
			<-gate
			return "value", nil
		}

		const n = 16
		var wg sync.WaitGroup
		results := make([]string, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				v, _, err := c.GetOrFetch(ctx, "k", fetch)
				if err == nil {
					results[i] = v
				}
			}(i)
		}

		// Give the goroutines time to pile onto the flight.
		time.Sleep(50 * time.Millisecond)
		close(gate)
		wg.Wait()

		Convey("Then the fetch ran exactly once and all callers share it", func() {
			So(calls, ShouldEqual, 1)
			for _, v := range results {
				So(v, ShouldEqual, "value")
			}
		})
	})
}

func TestZeroTTL(t *testing.T) {
	Convey("Given a cache with zero TTL", t, func() {
		clock := newFakeClock()
		c := New[int](0, WithClock[int](clock.Now))

		c.Set("k", 42)
		clock.Advance(1000 * time.Hour)

		Convey("Then entries never expire", func() {
			v, ok := c.Get("k")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 42)
		})
	})
}

func TestEviction(t *testing.T) {
	Convey("Given a cache capped at two entries", t, func() {
		clock := newFakeClock()
		c := New[int](time.Hour, WithClock[int](clock.Now), WithMaxEntries[int](2))

		c.Set("a", 1)
		clock.Advance(time.Minute)
		c.Set("b", 2)
		clock.Advance(time.Minute)
		c.Set("c", 3)

		Convey("Then the soonest-to-expire entry is evicted", func() {
			_, ok := c.Get("a")
			So(ok, ShouldBeFalse)
			So(c.Len(), ShouldEqual, 2)

			v, ok := c.Get("c")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 3)
		})
	})
}

func TestKey(t *testing.T) {
	Convey("Given cache key inputs", t, func() {
		Convey("When genre order differs", func() {
			a := Key("austin", 25, []string{"electronic", "folk"})
			b := Key("austin", 25, []string{"Folk", " electronic "})

			So(a, ShouldEqual, b)
		})

		Convey("When any component differs", func() {
			base := Key("austin", 25, []string{"folk"})

			So(Key("dallas", 25, []string{"folk"}), ShouldNotEqual, base)
			So(Key("austin", 50, []string{"folk"}), ShouldNotEqual, base)
			So(Key("austin", 25, []string{"jazz"}), ShouldNotEqual, base)
		})
	})
}
