package cache

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"

	"FASHIONREC_BACK-END/internal/config"
)

func TestRedis(t *testing.T) {
	ctx := context.Background()
	userID, quizID := uuid.New(), uuid.New()

	Convey("Given a Redis cache", t, func() {
		server := miniredis.RunT(t)
		log := logrus.New()
		log.SetOutput(io.Discard)

		c, err := NewRedis(ctx, config.RedisConfig{Addr: server.Addr()}, log)
		So(err, ShouldBeNil)
		Reset(func() { _ = c.Close() })

		key := RecommendationsKey(userID, quizID, 10)
		So(c.Set(ctx, key, map[string]int{"total": 3}, time.Minute), ShouldBeNil)

		Convey("Then a stored value is decoded", func() {
			var got map[string]int
			found, err := c.Get(ctx, key, &got)
			So(err, ShouldBeNil)
			So(found, ShouldBeTrue)
			So(got["total"], ShouldEqual, 3)
		})

		Convey("Then the ttl is applied", func() {
			So(server.TTL(key), ShouldEqual, time.Minute)

			server.FastForward(time.Minute)
			var got map[string]int
			found, err := c.Get(ctx, key, &got)
			So(err, ShouldBeNil)
			So(found, ShouldBeFalse)
		})

		Convey("Then deleting the user's prefix only drops that user's keys", func() {
			second := RecommendationsKey(userID, uuid.New(), 20)
			other := RecommendationsKey(uuid.New(), quizID, 10)
			So(c.Set(ctx, second, 1, time.Minute), ShouldBeNil)
			So(c.Set(ctx, other, 1, time.Minute), ShouldBeNil)

			So(c.DeletePrefix(ctx, RecommendationsPrefix(userID)), ShouldBeNil)
			So(server.Exists(key), ShouldBeFalse)
			So(server.Exists(second), ShouldBeFalse)
			So(server.Exists(other), ShouldBeTrue)
		})

		Convey("Then deleting a prefix with no keys succeeds", func() {
			So(c.DeletePrefix(ctx, RecommendationsPrefix(uuid.New())), ShouldBeNil)
			So(server.Exists(key), ShouldBeTrue)
		})

		Convey("Then an undecodable value is dropped", func() {
			So(server.Set(key, "not json"), ShouldBeNil)
			var got map[string]int
			found, err := c.Get(ctx, key, &got)
			So(err, ShouldBeNil)
			So(found, ShouldBeFalse)
			So(server.Exists(key), ShouldBeFalse)
		})
	})

	Convey("Connecting to an unreachable server fails", t, func() {
		server, err := miniredis.Run()
		So(err, ShouldBeNil)
		addr := server.Addr()
		server.Close()

		_, err = NewRedis(ctx, config.RedisConfig{Addr: addr}, logrus.New())
		So(err, ShouldNotBeNil)
	})
}
