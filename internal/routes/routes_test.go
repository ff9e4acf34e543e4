package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"

	"FASHIONREC_BACK-END/internal/aesthetic"
	"FASHIONREC_BACK-END/internal/cache"
	"FASHIONREC_BACK-END/internal/config"
	"FASHIONREC_BACK-END/internal/dto"
	"FASHIONREC_BACK-END/internal/handlers"
	"FASHIONREC_BACK-END/internal/metrics"
	"FASHIONREC_BACK-END/internal/middleware"
	"FASHIONREC_BACK-END/internal/repository"
)

func newTestServer() *httptest.Server {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		JWT: config.JWTConfig{
			Secret: "s", RefreshSecret: "r",
			AccessTokenTTL: time.Hour, RefreshTokenTTL: time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://app.test"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		},
		FrontendURL: "http://app.test",
	}
	store := repository.NewMemoryStore()
	recCache := cache.NewMemory()
	m := metrics.New()
	analyzer := aesthetic.NewAnalyzer(nil, time.Second, log, m)

	h := Handlers{
		Auth:            handlers.NewAuthHandler(store, &cfg.JWT, log),
		GoogleAuth:      handlers.NewGoogleAuthHandler(store.Users, cfg, log),
		Health:          handlers.NewHealthHandler(store),
		Quiz:            handlers.NewQuizHandler(store.Quizzes, analyzer, recCache, log),
		Recommendations: handlers.NewRecommendationHandler(store, nil, recCache, time.Minute, m, log),
		Users:           handlers.NewUserHandler(store, log),
		Outfits:         handlers.NewOutfitHandler(store, log),
	}
	return httptest.NewServer(SetupRoutes(h, Options{
		Config:        cfg,
		Logger:        log,
		Metrics:       m,
		Authenticator: middleware.NewAuthenticator(store.Users, &cfg.JWT, log),
		RateLimiter:   middleware.NewRateLimiter(100, 100),
	}))
}

func call(srv *httptest.Server, method, path, token string, body any) (*http.Response, []byte) {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req, _ := http.NewRequest(method, srv.URL+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp, data
}

func TestRoutes(t *testing.T) {
	Convey("Given the full router over the memory store", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("Health answers without auth", func() {
			resp, body := call(srv, http.MethodGet, "/health", "", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(string(body), ShouldContainSubstring, `"status":"OK"`)
			So(resp.Header.Get("X-Content-Type-Options"), ShouldEqual, "nosniff")
		})

		Convey("Unknown routes get a JSON 404", func() {
			resp, body := call(srv, http.MethodGet, "/nope", "", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			So(string(body), ShouldContainSubstring, "Route not found")
		})

		Convey("Protected routes need a token", func() {
			resp, _ := call(srv, http.MethodGet, "/api/quiz/latest", "", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusUnauthorized)
		})

		Convey("A user can register, take the quiz and get closet recommendations", func() {
			resp, body := call(srv, http.MethodPost, "/api/auth/register", "", map[string]string{
				"email": "flow@example.com", "password": "secret123", "firstName": "Flo", "lastName": "Walker",
			})
			So(resp.StatusCode, ShouldEqual, http.StatusCreated)
			var auth dto.AuthResponse
			So(json.Unmarshal(body, &auth), ShouldBeNil)
			token := auth.Tokens.AccessToken

			resp, _ = call(srv, http.MethodPost, "/api/outfits", token, map[string]any{
				"name": "Office", "occasion": "work", "tags": []string{"Old Money"},
			})
			So(resp.StatusCode, ShouldEqual, http.StatusCreated)

			resp, _ = call(srv, http.MethodPost, "/api/quiz/submit", token, map[string]any{
				"gender": "female",
				"answers": map[string]any{
					"1": map[string]string{"text": "Navy blazer for work", "aesthetic": "Old Money"},
				},
			})
			So(resp.StatusCode, ShouldEqual, http.StatusCreated)

			resp, body = call(srv, http.MethodGet, "/api/recommendations", token, nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			var recs dto.RecommendationsResponse
			So(json.Unmarshal(body, &recs), ShouldBeNil)
			So(recs.Source, ShouldEqual, dto.SourceCloset)
			So(recs.Total, ShouldEqual, 1)
			So(recs.Recommendations[0].Score, ShouldEqual, 0.75)

			Convey("And the metrics endpoint reports the traffic", func() {
				resp, body := call(srv, http.MethodGet, "/metrics", "", nil)
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(string(body), ShouldContainSubstring, `fashionrec_api_quiz_analyses_total{method="fallback"} 1`)
				So(string(body), ShouldContainSubstring, `endpoint="POST /api/quiz/submit"`)
			})
		})
	})
}
