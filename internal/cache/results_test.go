package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mlb-inning-times/internal/domain"

	. "github.com/smartystreets/goconvey/convey"
)

func result(gamePk string) domain.GameResult {
	return domain.GameResult{
		GamePk:  gamePk,
		Innings: []domain.InningWindow{{Inning: 1, HalfInning: "Top", Start: "T0", End: "T1"}},
	}
}

func TestResultCache(t *testing.T) {
	Convey("Given a result cache without expiry", t, func() {
		c := New(0)

		Convey("When a result is stored", func() {
			c.Put("745123", result("745123"))

			Convey("Then it is returned until cleared", func() {
				got, ok := c.Get("745123")
				So(ok, ShouldBeTrue)
				So(got.GamePk, ShouldEqual, "745123")
				So(c.Len(), ShouldEqual, 1)

				So(c.Clear(), ShouldEqual, 1)
				_, ok = c.Get("745123")
				So(ok, ShouldBeFalse)
			})

			Convey("Then Delete evicts only that key", func() {
				c.Put("2", result("2"))
				c.Delete("745123")
				_, ok := c.Get("745123")
				So(ok, ShouldBeFalse)
				So(c.Len(), ShouldEqual, 1)
			})
		})

		Convey("When GetOrLoad is called twice for the same key", func() {
			var calls int32
			load := func() (domain.GameResult, error) {
				atomic.AddInt32(&calls, 1)
				return result("9"), nil
			}

			_, hit1, err1 := c.GetOrLoad("9", load)
			got, hit2, err2 := c.GetOrLoad("9", load)

			Convey("Then the loader runs once and the second call hits", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(hit1, ShouldBeFalse)
				So(hit2, ShouldBeTrue)
				So(got.GamePk, ShouldEqual, "9")
				So(atomic.LoadInt32(&calls), ShouldEqual, 1)
			})
		})

		Convey("When the loader fails", func() {
			boom := errors.New("boom")
			_, _, err := c.GetOrLoad("7", func() (domain.GameResult, error) {
				return domain.GameResult{}, boom
			})

			Convey("Then the error is returned and nothing is cached", func() {
				So(errors.Is(err, boom), ShouldBeTrue)
				So(c.Len(), ShouldEqual, 0)
			})
		})

		Convey("When many goroutines load the same key at once", func() {
			var calls int32
			release := make(chan struct{})
			load := func() (domain.GameResult, error) {
				atomic.AddInt32(&calls, 1)
				<-release
				return result("5"), nil
			}

			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, _, _ = c.GetOrLoad("5", load)
				}()
			}
			time.Sleep(50 * time.Millisecond)
			close(release)
			wg.Wait()

			Convey("Then the loads are collapsed", func() {
				So(atomic.LoadInt32(&calls), ShouldEqual, 1)
				So(c.Len(), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a result cache with a TTL", t, func() {
		now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
		c := New(time.Minute)
		c.now = func() time.Time { return now }
		c.Put("1", result("1"))

		Convey("Then entries are served before expiry", func() {
			now = now.Add(59 * time.Second)
			_, ok := c.Get("1")
			So(ok, ShouldBeTrue)
		})

		Convey("Then entries expire once the TTL has passed", func() {
			now = now.Add(time.Minute)
			_, ok := c.Get("1")
			So(ok, ShouldBeFalse)
			So(c.Len(), ShouldEqual, 0)
		})

		Convey("When entries for other games expire without being read again", func() {
			now = now.Add(30 * time.Second)
			c.Put("2", result("2"))
			c.Put("3", result("3"))
			now = now.Add(45 * time.Second)

			Convey("Then Sweep drops only the expired ones", func() {
				So(c.Len(), ShouldEqual, 3)
				So(c.Sweep(), ShouldEqual, 1)
				So(c.Len(), ShouldEqual, 2)

				_, ok := c.Get("2")
				So(ok, ShouldBeTrue)
			})
		})
	})

	Convey("Given a result cache without expiry", t, func() {
		c := New(0)
		c.Put("1", result("1"))

		Convey("Then Sweep keeps every entry", func() {
			So(c.Sweep(), ShouldEqual, 0)
			So(c.Len(), ShouldEqual, 1)
		})
	})
}

func TestResultCache_RunSweeper(t *testing.T) {
	Convey("Given a sweeper over a cache with short-lived entries", t, func() {
		c := New(time.Millisecond)
		c.Put("1", result("1"))
		c.Put("2", result("2"))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- c.RunSweeper(ctx, 5*time.Millisecond) }()

		Convey("Then expired entries are removed in the background and the sweeper stops on cancel", func() {
			deadline := time.Now().Add(2 * time.Second)
			for c.Len() > 0 && time.Now().Before(deadline) {
				time.Sleep(5 * time.Millisecond)
			}
			So(c.Len(), ShouldEqual, 0)

			cancel()
			So(<-done, ShouldBeNil)
		})

		Reset(cancel)
	})
}
