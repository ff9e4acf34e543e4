package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"FASHIONREC_BACK-END/internal/aiclient"
	"FASHIONREC_BACK-END/internal/config"
	"FASHIONREC_BACK-END/internal/models"
	"FASHIONREC_BACK-END/internal/repository"
	"FASHIONREC_BACK-END/internal/utils"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:          "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

func seedUser(store *repository.Store, email string) *models.User {
	user := &models.User{Email: email, FirstName: "Test", LastName: "User", IsActive: true}
	if err := store.Users.Create(context.Background(), user); err != nil {
		panic(err)
	}
	return user
}

func seedOutfit(store *repository.Store, userID uuid.UUID, name, occasion string, tags ...string) *models.Outfit {
	o := &models.Outfit{UserID: userID, Name: name, Tags: tags}
	if occasion != "" {
		o.Occasion = &occasion
	}
	if err := store.Outfits.Create(context.Background(), o); err != nil {
		panic(err)
	}
	return o
}

// newRequest builds a request authenticated as userID (unless Nil) with the given path values
func newRequest(method, target string, body any, userID uuid.UUID, pathValues ...string) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, _ := json.Marshal(b)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != uuid.Nil {
		req = req.WithContext(utils.WithUserID(req.Context(), userID))
	}
	for i := 0; i+1 < len(pathValues); i += 2 {
		req.SetPathValue(pathValues[i], pathValues[i+1])
	}
	return req
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decode(rec *httptest.ResponseRecorder, dst any) error {
	return json.Unmarshal(rec.Body.Bytes(), dst)
}

// fakeRecommender answers from canned values and counts calls
type fakeRecommender struct {
	results    []aiclient.Recommendation
	err        error
	calls      int
	lastReq    aiclient.RecommendRequest
	similarErr error
}

func (f *fakeRecommender) RecommendByQuiz(_ context.Context, req aiclient.RecommendRequest) (*aiclient.RecommendResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &aiclient.RecommendResponse{Results: f.results}, nil
}

func (f *fakeRecommender) Similar(_ context.Context, itemID string, topK int) (*aiclient.SimilarResponse, error) {
	if f.similarErr != nil {
		return nil, f.similarErr
	}
	return &aiclient.SimilarResponse{QueryID: itemID, Results: f.results}, nil
}

type cacheCounter struct {
	hits, misses int
}

func (c *cacheCounter) CacheLookup(hit bool) {
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}
