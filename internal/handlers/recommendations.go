package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"FASHIONREC_BACK-END/internal/aesthetic"
	"FASHIONREC_BACK-END/internal/aiclient"
	"FASHIONREC_BACK-END/internal/cache"
	"FASHIONREC_BACK-END/internal/dto"
	"FASHIONREC_BACK-END/internal/models"
	"FASHIONREC_BACK-END/internal/repository"
	"FASHIONREC_BACK-END/internal/utils"
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50
)

// Recommender ranks catalogue items through the AI service
type Recommender interface {
	RecommendByQuiz(ctx context.Context, req aiclient.RecommendRequest) (*aiclient.RecommendResponse, error)
	Similar(ctx context.Context, itemID string, topK int) (*aiclient.SimilarResponse, error)
}

// CacheRecorder counts recommendation cache hits and misses
type CacheRecorder interface {
	CacheLookup(hit bool)
}

// RecommendationHandler serves recommendations and outfit feedback
type RecommendationHandler struct {
	store       *repository.Store
	recommender Recommender
	cache       cache.Cache
	cacheTTL    time.Duration
	recorder    CacheRecorder
	log         *logrus.Logger
}

// NewRecommendationHandler creates a RecommendationHandler. recorder may be nil.
func NewRecommendationHandler(store *repository.Store, recommender Recommender, c cache.Cache, cacheTTL time.Duration, recorder CacheRecorder, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		store:       store,
		recommender: recommender,
		cache:       c,
		cacheTTL:    cacheTTL,
		recorder:    recorder,
		log:         logger,
	}
}

// GetRecommendations recommends looks from the caller's latest quiz
// @Summary Recommendations
// @Description Catalogue items from the AI service, or the caller's own outfits ranked against the quiz profile when the service is unavailable
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Number of items (default 10, max 50)"
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 404 {object} dto.ErrorResponse "No completed quiz found"
// @Router /api/recommendations [get]
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	limit := queryInt(r, "limit", defaultRecommendationLimit, maxRecommendationLimit)
	if limit == 0 {
		limit = defaultRecommendationLimit
	}

	ctx := r.Context()
	quiz, err := h.store.Quizzes.LatestCompleted(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "No completed quiz found", "Complete the style quiz to get recommendations")
			return
		}
		h.log.Errorf("GetRecommendations: %v", err)
		writeInternalError(w)
		return
	}

	key := cache.RecommendationsKey(userID, quiz.ID, limit)
	var cached dto.RecommendationsResponse
	hit, err := h.cache.Get(ctx, key, &cached)
	if err != nil {
		h.log.Warnf("GetRecommendations: cache read failed: %v", err)
	}
	h.recordCache(hit)
	if hit {
		utils.WriteJSONResponse(w, http.StatusOK, cached)
		return
	}

	resp, err := h.fromService(ctx, quiz, limit)
	if err == nil {
		if err := h.cache.Set(ctx, key, resp, h.cacheTTL); err != nil {
			h.log.Warnf("GetRecommendations: cache write failed: %v", err)
		}
		utils.WriteJSONResponse(w, http.StatusOK, resp)
		return
	}
	h.log.Warnf("GetRecommendations: AI recommender failed for user %s, ranking closet: %v", userID, err)

	resp, err = h.fromCloset(ctx, quiz, limit)
	if err != nil {
		h.log.Errorf("GetRecommendations: %v", err)
		writeInternalError(w)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

func (h *RecommendationHandler) fromService(ctx context.Context, quiz *models.Quiz, limit int) (dto.RecommendationsResponse, error) {
	if h.recommender == nil {
		return dto.RecommendationsResponse{}, aiclient.ErrNotConfigured
	}
	result, err := h.recommender.RecommendByQuiz(ctx, aiclient.RecommendRequest{
		Answers: parseStoredAnswers(quiz.Answers).Texts(),
		Gender:  quiz.Gender,
		TopK:    limit,
	})
	if err != nil {
		return dto.RecommendationsResponse{}, err
	}
	items := dto.NewCatalogueItems(result.Results)
	return dto.RecommendationsResponse{
		Recommendations:  items,
		Source:           dto.SourceAI,
		AestheticProfile: quiz.AestheticProfile,
		Total:            len(items),
	}, nil
}

func (h *RecommendationHandler) fromCloset(ctx context.Context, quiz *models.Quiz, limit int) (dto.RecommendationsResponse, error) {
	outfits, err := h.store.Outfits.List(ctx, quiz.UserID, repository.OutfitFilter{})
	if err != nil {
		return dto.RecommendationsResponse{}, err
	}
	ranked, err := aesthetic.RankOutfits(quiz.AestheticProfile, outfits, limit)
	if err != nil {
		h.log.Warnf("Recommendations: ranking closet for quiz %s without its profile: %v", quiz.ID, err)
	}
	items := make([]dto.RecommendationItem, 0, len(ranked))
	for _, s := range ranked {
		o := dto.NewOutfitResponse(&s.Outfit)
		items = append(items, dto.RecommendationItem{
			ID:        o.ID,
			ImagePath: derefString(o.ImageURL),
			Score:     s.Score,
			Outfit:    &o,
		})
	}
	return dto.RecommendationsResponse{
		Recommendations:  items,
		Source:           dto.SourceCloset,
		AestheticProfile: quiz.AestheticProfile,
		Total:            len(items),
	}, nil
}

func (h *RecommendationHandler) recordCache(hit bool) {
	if h.recorder != nil {
		h.recorder.CacheLookup(hit)
	}
}

// GetSimilar proxies the AI service's similar-items lookup
// @Summary Similar items
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Param outfitId path string true "Catalogue item ID"
// @Param limit query int false "Number of items (default 10, max 50)"
// @Success 200 {object} dto.SimilarOutfitsResponse
// @Failure 502 {object} dto.ErrorResponse "Recommendation service unavailable"
// @Router /api/recommendations/similar/{outfitId} [get]
func (h *RecommendationHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}
	itemID := r.PathValue("outfitId")
	limit := queryInt(r, "limit", defaultRecommendationLimit, maxRecommendationLimit)
	if limit == 0 {
		limit = defaultRecommendationLimit
	}

	if h.recommender == nil {
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Recommendation service unavailable", "")
		return
	}
	result, err := h.recommender.Similar(r.Context(), itemID, limit)
	if err != nil {
		h.log.Warnf("GetSimilar: %v", err)
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Recommendation service unavailable", "")
		return
	}
	items := dto.NewCatalogueItems(result.Results)
	utils.WriteJSONResponse(w, http.StatusOK, dto.SimilarOutfitsResponse{
		OutfitID:        itemID,
		Recommendations: items,
		Total:           len(items),
	})
}

// LikeOutfit toggles the like flag on one of the caller's outfits
// @Summary Like or unlike an outfit
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Param outfitId path string true "Outfit ID"
// @Success 200 {object} dto.OutfitActionResponse
// @Failure 404 {object} dto.ErrorResponse "Outfit not found"
// @Router /api/recommendations/like/{outfitId} [post]
func (h *RecommendationHandler) LikeOutfit(w http.ResponseWriter, r *http.Request) {
	applyOutfitAction(w, r, h.store, h.log, func(o *models.Outfit) (string, json.RawMessage, string) {
		o.IsLiked = !o.IsLiked
		if o.IsLiked {
			return models.ActionLiked, nil, "Outfit liked"
		}
		return models.ActionDisliked, nil, "Outfit unliked"
	})
}

// SaveOutfit toggles the saved flag on one of the caller's outfits
// @Summary Save or unsave an outfit
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Param outfitId path string true "Outfit ID"
// @Success 200 {object} dto.OutfitActionResponse
// @Failure 404 {object} dto.ErrorResponse "Outfit not found"
// @Router /api/recommendations/save/{outfitId} [post]
func (h *RecommendationHandler) SaveOutfit(w http.ResponseWriter, r *http.Request) {
	applyOutfitAction(w, r, h.store, h.log, func(o *models.Outfit) (string, json.RawMessage, string) {
		o.IsSaved = !o.IsSaved
		if o.IsSaved {
			return models.ActionSaved, nil, "Outfit saved"
		}
		return "", nil, "Outfit removed from saved"
	})
}

// RateOutfit stores a 1 to 5 rating on one of the caller's outfits
// @Summary Rate an outfit
// @Tags recommendations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param outfitId path string true "Outfit ID"
// @Param request body dto.RateOutfitRequest true "Rating"
// @Success 200 {object} dto.OutfitActionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid rating"
// @Failure 404 {object} dto.ErrorResponse "Outfit not found"
// @Router /api/recommendations/rate/{outfitId} [post]
func (h *RecommendationHandler) RateOutfit(w http.ResponseWriter, r *http.Request) {
	var req dto.RateOutfitRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	applyOutfitAction(w, r, h.store, h.log, func(o *models.Outfit) (string, json.RawMessage, string) {
		rating := req.Rating
		o.Rating = &rating
		meta, _ := json.Marshal(map[string]any{"rating": req.Rating, "feedback": req.Feedback})
		return models.ActionRated, meta, "Outfit rated"
	})
}

// applyOutfitAction loads the caller's outfit, applies change, saves it and
// records the returned history action unless it is empty
func applyOutfitAction(w http.ResponseWriter, r *http.Request, store *repository.Store, log *logrus.Logger, change func(*models.Outfit) (string, json.RawMessage, string)) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	outfitID, ok := pathUUID(w, r, "outfitId", "Outfit not found")
	if !ok {
		return
	}

	ctx := r.Context()
	outfit, err := store.Outfits.Get(ctx, userID, outfitID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Outfit not found", "")
			return
		}
		log.Errorf("outfit %s: %v", outfitID, err)
		writeInternalError(w)
		return
	}

	action, metadata, message := change(outfit)
	if err := store.Outfits.Update(ctx, outfit); err != nil {
		log.Errorf("outfit %s: failed to update: %v", outfitID, err)
		writeInternalError(w)
		return
	}
	if action != "" {
		recordHistory(ctx, store, log, userID, outfit.ID, action, metadata)
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.OutfitActionResponse{
		Message: message,
		Outfit:  dto.NewOutfitResponse(outfit),
	})
}
