package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/oauth2"

	"FASHIONREC_BACK-END/internal/config"
	"FASHIONREC_BACK-END/internal/dto"
	"FASHIONREC_BACK-END/internal/middleware"
	"FASHIONREC_BACK-END/internal/repository"
)

func TestGoogleAuthHandler(t *testing.T) {
	Convey("Given a Google auth handler with stubbed Google calls", t, func() {
		store := repository.NewMemoryStore()
		cfg := &config.Config{
			JWT:         *testJWTConfig(),
			FrontendURL: "http://app.test",
			GoogleOAuth: config.GoogleOAuthConfig{ClientID: "id", ClientSecret: "secret", RedirectURL: "http://api.test/cb"},
		}
		h := NewGoogleAuthHandler(store.Users, cfg, quietLogger())
		h.exchange = func(_ context.Context, code string) (*oauth2.Token, error) {
			return &oauth2.Token{AccessToken: "google-" + code}, nil
		}
		h.userInfo = func(_ context.Context, _ *oauth2.Token) (*dto.GoogleUserInfo, error) {
			return &dto.GoogleUserInfo{Email: "G.User@example.com", GivenName: "Grace", FamilyName: "Hopper", Picture: "http://img.test/p.png"}, nil
		}

		Convey("Login returns the consent URL and sets the state cookie", func() {
			rec := serve(h.GoogleLogin, newRequest(http.MethodGet, "/api/auth/google/login", nil, uuid.Nil))
			So(rec.Code, ShouldEqual, http.StatusOK)

			var resp dto.GoogleLoginResponse
			So(decode(rec, &resp), ShouldBeNil)
			So(resp.AuthURL, ShouldContainSubstring, "accounts.google.com")
			So(rec.Header().Get("Set-Cookie"), ShouldContainSubstring, resp.State)
		})

		Convey("Login is 501 when Google is not configured", func() {
			cfg.GoogleOAuth.ClientSecret = ""
			rec := serve(h.GoogleLogin, newRequest(http.MethodGet, "/api/auth/google/login", nil, uuid.Nil))
			So(rec.Code, ShouldEqual, http.StatusNotImplemented)
		})

		Convey("The callback creates the user and redirects with tokens", func() {
			req := newRequest(http.MethodGet, "/api/auth/google/callback?code=abc&state=s1", nil, uuid.Nil)
			req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "s1"})
			rec := serve(h.GoogleCallback, req)
			So(rec.Code, ShouldEqual, http.StatusFound)
			So(rec.Header().Get("Set-Cookie"), ShouldContainSubstring, "Max-Age=0")

			location, err := url.Parse(rec.Header().Get("Location"))
			So(err, ShouldBeNil)
			So(location.Host, ShouldEqual, "app.test")
			So(location.Path, ShouldEqual, "/auth/callback")
			_, err = middleware.ValidateToken(location.Query().Get("accessToken"), middleware.TokenTypeAccess, &cfg.JWT)
			So(err, ShouldBeNil)
			So(location.Query().Get("refreshToken"), ShouldNotBeEmpty)

			user, err := store.Users.GetByEmail(context.Background(), "g.user@example.com")
			So(err, ShouldBeNil)
			So(user.FirstName, ShouldEqual, "Grace")
			So(user.HasPassword(), ShouldBeFalse)
		})

		Convey("The callback requires a code", func() {
			rec := serve(h.GoogleCallback, newRequest(http.MethodGet, "/api/auth/google/callback", nil, uuid.Nil))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("A mismatched state cookie is rejected", func() {
			req := newRequest(http.MethodGet, "/api/auth/google/callback?code=abc&state=evil", nil, uuid.Nil)
			req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "good"})
			rec := serve(h.GoogleCallback, req)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("A callback without the state cookie is rejected", func() {
			rec := serve(h.GoogleCallback, newRequest(http.MethodGet, "/api/auth/google/callback?code=abc&state=any", nil, uuid.Nil))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)

			_, err := store.Users.GetByEmail(context.Background(), "g.user@example.com")
			So(err, ShouldEqual, repository.ErrNotFound)
		})
	})
}
