package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"

	"FASHIONREC_BACK-END/internal/config"
	"FASHIONREC_BACK-END/internal/models"
	"FASHIONREC_BACK-END/internal/repository"
	"FASHIONREC_BACK-END/internal/utils"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:          "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestTokens(t *testing.T) {
	Convey("Given a JWT configuration", t, func() {
		cfg := testJWTConfig()
		userID := uuid.New()

		Convey("A generated pair validates with the matching type", func() {
			pair, err := GenerateTokenPair(userID, "a@b.test", cfg)
			So(err, ShouldBeNil)
			So(pair.ExpiresIn, ShouldEqual, 3600)

			claims, err := ValidateToken(pair.AccessToken, TokenTypeAccess, cfg)
			So(err, ShouldBeNil)
			So(claims.UserID, ShouldEqual, userID)

			claims, err = ValidateToken(pair.RefreshToken, TokenTypeRefresh, cfg)
			So(err, ShouldBeNil)
			So(claims.Type, ShouldEqual, TokenTypeRefresh)
		})

		Convey("A refresh token is rejected as an access token", func() {
			cfg.RefreshSecret = cfg.Secret
			pair, err := GenerateTokenPair(userID, "a@b.test", cfg)
			So(err, ShouldBeNil)

			_, err = ValidateToken(pair.RefreshToken, TokenTypeAccess, cfg)
			So(err, ShouldEqual, ErrWrongTokenType)
		})

		Convey("An expired token reports jwt.ErrTokenExpired", func() {
			cfg.AccessTokenTTL = -time.Minute
			token, err := GenerateToken(userID, "a@b.test", TokenTypeAccess, cfg)
			So(err, ShouldBeNil)

			_, err = ValidateToken(token, TokenTypeAccess, cfg)
			So(errors.Is(err, jwt.ErrTokenExpired), ShouldBeTrue)
		})

		Convey("A token signed with another secret is rejected", func() {
			token, _ := GenerateToken(userID, "a@b.test", TokenTypeAccess, cfg)
			other := testJWTConfig()
			other.Secret = "different"

			_, err := ValidateToken(token, TokenTypeAccess, other)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestAuthenticator(t *testing.T) {
	Convey("Given an authenticator backed by the memory store", t, func() {
		cfg := testJWTConfig()
		store := repository.NewMemoryStore()
		user := &models.User{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", IsActive: true}
		So(store.Users.Create(context.Background(), user), ShouldBeNil)

		auth := NewAuthenticator(store.Users, cfg, quietLogger())
		var seen uuid.UUID
		handler := auth.Middleware(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = utils.GetUserIDFromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})

		serve := func(header string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)
			return rec
		}

		Convey("A missing header is rejected", func() {
			rec := serve("")
			So(rec.Code, ShouldEqual, http.StatusUnauthorized)
			So(rec.Body.String(), ShouldContainSubstring, "Access token required")
		})

		Convey("A valid access token passes the user id along", func() {
			token, _ := GenerateToken(user.ID, user.Email, TokenTypeAccess, cfg)
			rec := serve("Bearer " + token)
			So(rec.Code, ShouldEqual, http.StatusNoContent)
			So(seen, ShouldEqual, user.ID)
		})

		Convey("An expired token is reported as expired", func() {
			cfg.AccessTokenTTL = -time.Minute
			token, _ := GenerateToken(user.ID, user.Email, TokenTypeAccess, cfg)
			rec := serve("Bearer " + token)
			So(rec.Code, ShouldEqual, http.StatusUnauthorized)
			So(rec.Body.String(), ShouldContainSubstring, "Token expired")
		})

		Convey("A garbage token is invalid", func() {
			rec := serve("Bearer not-a-token")
			So(rec.Code, ShouldEqual, http.StatusUnauthorized)
			So(rec.Body.String(), ShouldContainSubstring, "Invalid token")
		})

		Convey("A token for a deactivated account is invalid", func() {
			So(store.Users.Deactivate(context.Background(), user.ID), ShouldBeNil)
			token, _ := GenerateToken(user.ID, user.Email, TokenTypeAccess, cfg)
			rec := serve("Bearer " + token)
			So(rec.Code, ShouldEqual, http.StatusUnauthorized)
		})

		Convey("A token for an unknown user is invalid", func() {
			token, _ := GenerateToken(uuid.New(), "ghost@example.com", TokenTypeAccess, cfg)
			rec := serve("Bearer " + token)
			So(rec.Code, ShouldEqual, http.StatusUnauthorized)
		})
	})
}
