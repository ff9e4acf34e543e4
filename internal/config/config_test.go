package config

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestLoad(t *testing.T) {
	Convey("Given a memory storage environment", t, func() {
		t.Setenv("STORAGE", "memory")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("JWT_REFRESH_SECRET", "")
		t.Setenv("AI_SERVICE_URL", "http://ai.local:8000/")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
		t.Setenv("JWT_EXPIRES_IN", "2h")
		t.Setenv("RATE_LIMIT_TRUST_PROXY", "")
		t.Setenv("RECOMMENDATION_CACHE_ENABLED", "false")

		Convey("When loading the configuration", func() {
			cfg, err := Load(quietLogger())

			Convey("Then values are parsed from the environment", func() {
				So(err, ShouldBeNil)
				So(cfg.Storage.Driver, ShouldEqual, StorageMemory)
				So(cfg.JWT.AccessTokenTTL, ShouldEqual, 2*time.Hour)
				So(cfg.JWT.RefreshTokenTTL, ShouldEqual, 7*24*time.Hour)
				So(cfg.AI.Timeout, ShouldEqual, 10*time.Second)
			})

			Convey("And the refresh secret falls back to the access secret", func() {
				So(cfg.JWT.RefreshSecret, ShouldEqual, "s3cret")
			})

			Convey("And the AI URL loses its trailing slash", func() {
				So(cfg.AI.BaseURL, ShouldEqual, "http://ai.local:8000")
				So(cfg.IsAIConfigured(), ShouldBeTrue)
			})

			Convey("And comma separated lists are split and trimmed", func() {
				So(cfg.CORS.AllowedOrigins, ShouldResemble, []string{"http://a.test", "http://b.test"})
			})

			Convey("And forwarded headers are not trusted by default", func() {
				So(cfg.RateLimit.TrustProxy, ShouldBeFalse)
			})

			Convey("And recommendation caching can be switched off", func() {
				So(cfg.Redis.CacheEnabled, ShouldBeFalse)
			})
		})
	})

	Convey("Given postgres storage without a password", t, func() {
		t.Setenv("STORAGE", "postgres")
		t.Setenv("DB_PASSWORD", "")

		Convey("Then loading fails", func() {
			_, err := Load(quietLogger())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "DB_PASSWORD")
		})
	})

	Convey("Given an unknown storage driver", t, func() {
		t.Setenv("STORAGE", "mongo")

		Convey("Then loading fails", func() {
			_, err := Load(quietLogger())
			So(err, ShouldNotBeNil)
		})
	})
}

func TestGetDSN(t *testing.T) {
	Convey("GetDSN builds a postgres URL", t, func() {
		cfg := &Config{Database: DatabaseConfig{
			User: "u", Password: "p", Host: "h", Port: "5432", Name: "db",
			SSLMode: "disable", ConnTimeout: 10 * time.Second,
		}}
		So(cfg.GetDSN(), ShouldEqual, "postgres://u:p@h:5432/db?sslmode=disable&connect_timeout=10")
	})
}
