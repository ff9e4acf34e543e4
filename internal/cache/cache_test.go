package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	userID, quizID := uuid.New(), uuid.New()

	Convey("Given a memory cache", t, func() {
		clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		c := NewMemory()
		c.now = func() time.Time { return clock }

		key := RecommendationsKey(userID, quizID, 10)
		So(c.Set(ctx, key, map[string]int{"total": 3}, time.Minute), ShouldBeNil)

		Convey("Then a stored value is returned before it expires", func() {
			var got map[string]int
			found, err := c.Get(ctx, key, &got)
			So(err, ShouldBeNil)
			So(found, ShouldBeTrue)
			So(got["total"], ShouldEqual, 3)
		})

		Convey("Then it is gone after the ttl", func() {
			clock = clock.Add(time.Minute)
			var got map[string]int
			found, _ := c.Get(ctx, key, &got)
			So(found, ShouldBeFalse)
		})

		Convey("Then deleting the user's prefix drops it", func() {
			other := RecommendationsKey(uuid.New(), quizID, 10)
			So(c.Set(ctx, other, 1, 0), ShouldBeNil)
			So(c.DeletePrefix(ctx, RecommendationsPrefix(userID)), ShouldBeNil)

			var v any
			found, _ := c.Get(ctx, key, &v)
			So(found, ShouldBeFalse)
			found, _ = c.Get(ctx, other, &v)
			So(found, ShouldBeTrue)
		})
	})
}

func TestNoop(t *testing.T) {
	Convey("The noop cache never finds anything", t, func() {
		var c Cache = Noop{}
		So(c.Set(context.Background(), "k", 1, time.Minute), ShouldBeNil)
		var v int
		found, err := c.Get(context.Background(), "k", &v)
		So(err, ShouldBeNil)
		So(found, ShouldBeFalse)
	})
}

func TestKeys(t *testing.T) {
	Convey("Recommendation keys share the user prefix", t, func() {
		userID, quizID := uuid.New(), uuid.New()
		key := RecommendationsKey(userID, quizID, 20)
		So(key, ShouldStartWith, RecommendationsPrefix(userID))
		So(key, ShouldEndWith, ":20")
	})
}
