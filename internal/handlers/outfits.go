package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"FASHIONREC_BACK-END/internal/dto"
	"FASHIONREC_BACK-END/internal/models"
	"FASHIONREC_BACK-END/internal/repository"
	"FASHIONREC_BACK-END/internal/utils"
)

// OutfitHandler serves CRUD on the caller's outfits
type OutfitHandler struct {
	store *repository.Store
	log   *logrus.Logger
}

// NewOutfitHandler creates an OutfitHandler
func NewOutfitHandler(store *repository.Store, logger *logrus.Logger) *OutfitHandler {
	return &OutfitHandler{store: store, log: logger}
}

// List returns the caller's outfits, newest first
// @Summary List outfits
// @Tags outfits
// @Security BearerAuth
// @Produce json
// @Param occasion query string false "Occasion"
// @Param season query string false "Season"
// @Param liked query bool false "Only liked or unliked"
// @Param saved query bool false "Only saved or unsaved"
// @Success 200 {object} dto.OutfitListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /api/outfits [get]
func (h *OutfitHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	filter := repository.OutfitFilter{
		Occasion: r.URL.Query().Get("occasion"),
		Season:   r.URL.Query().Get("season"),
	}
	var err error
	if filter.Liked, err = queryBool(r, "liked"); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "liked must be true or false")
		return
	}
	if filter.Saved, err = queryBool(r, "saved"); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "saved must be true or false")
		return
	}

	h.writeList(w, r, userID, filter)
}

// ByCategory returns outfits whose occasion or tags match the category
// @Summary Outfits by category
// @Tags outfits
// @Security BearerAuth
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} dto.OutfitListResponse
// @Router /api/outfits/category/{category} [get]
func (h *OutfitHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	h.writeList(w, r, userID, repository.OutfitFilter{Category: r.PathValue("category")})
}

func (h *OutfitHandler) writeList(w http.ResponseWriter, r *http.Request, userID uuid.UUID, filter repository.OutfitFilter) {
	outfits, err := h.store.Outfits.List(r.Context(), userID, filter)
	if err != nil {
		h.log.Errorf("List outfits: %v", err)
		writeInternalError(w)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.OutfitListResponse{
		Outfits: dto.NewOutfitResponses(outfits),
		Total:   len(outfits),
	})
}

// Get returns one outfit and records the view
// @Summary Get outfit
// @Tags outfits
// @Security BearerAuth
// @Produce json
// @Param outfitId path string true "Outfit ID"
// @Success 200 {object} dto.OutfitDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Outfit not found"
// @Router /api/outfits/{outfitId} [get]
func (h *OutfitHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	outfitID, ok := pathUUID(w, r, "outfitId", "Outfit not found")
	if !ok {
		return
	}

	ctx := r.Context()
	outfit, err := h.store.Outfits.Get(ctx, userID, outfitID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Outfit not found", "")
			return
		}
		h.log.Errorf("Get outfit %s: %v", outfitID, err)
		writeInternalError(w)
		return
	}
	recordHistory(ctx, h.store, h.log, userID, outfit.ID, models.ActionViewed, nil)
	utils.WriteJSONResponse(w, http.StatusOK, dto.OutfitDetailResponse{Outfit: dto.NewOutfitResponse(outfit)})
}

// Create stores a new outfit
// @Summary Create outfit
// @Tags outfits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateOutfitRequest true "Outfit"
// @Success 201 {object} dto.OutfitDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /api/outfits [post]
func (h *OutfitHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateOutfitRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	if len(req.Items) > 0 && !isJSONArray(req.Items) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "items must be an array")
		return
	}

	outfit := &models.Outfit{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Items:       req.Items,
		ImageURL:    req.ImageURL,
		Tags:        models.NormalizeTags(req.Tags),
		Occasion:    req.Occasion,
		Season:      req.Season,
	}
	if err := h.store.Outfits.Create(r.Context(), outfit); err != nil {
		h.log.Errorf("Create outfit: %v", err)
		writeInternalError(w)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.OutfitDetailResponse{
		Message: "Outfit created successfully",
		Outfit:  dto.NewOutfitResponse(outfit),
	})
}

// Update applies a partial update to one outfit
// @Summary Update outfit
// @Tags outfits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param outfitId path string true "Outfit ID"
// @Param request body dto.UpdateOutfitRequest true "Fields to change"
// @Success 200 {object} dto.OutfitDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Outfit not found"
// @Router /api/outfits/{outfitId} [put]
func (h *OutfitHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateOutfitRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	if len(req.Items) > 0 && !isJSONArray(req.Items) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "items must be an array")
		return
	}

	applyOutfitAction(w, r, h.store, h.log, func(o *models.Outfit) (string, json.RawMessage, string) {
		if req.Name != nil {
			o.Name = *req.Name
		}
		if req.Description != nil {
			o.Description = req.Description
		}
		if len(req.Items) > 0 {
			o.Items = req.Items
		}
		if req.ImageURL != nil {
			o.ImageURL = req.ImageURL
		}
		if req.Tags != nil {
			o.Tags = models.NormalizeTags(req.Tags)
		}
		if req.Occasion != nil {
			o.Occasion = req.Occasion
		}
		if req.Season != nil {
			o.Season = req.Season
		}
		if req.IsLiked != nil {
			o.IsLiked = *req.IsLiked
		}
		if req.IsSaved != nil {
			o.IsSaved = *req.IsSaved
		}
		if req.Rating != nil {
			o.Rating = req.Rating
		}
		return "", nil, "Outfit updated successfully"
	})
}

// Delete removes one outfit
// @Summary Delete outfit
// @Tags outfits
// @Security BearerAuth
// @Produce json
// @Param outfitId path string true "Outfit ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Outfit not found"
// @Router /api/outfits/{outfitId} [delete]
func (h *OutfitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	outfitID, ok := pathUUID(w, r, "outfitId", "Outfit not found")
	if !ok {
		return
	}
	if err := h.store.Outfits.Delete(r.Context(), userID, outfitID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Outfit not found", "")
			return
		}
		h.log.Errorf("Delete outfit %s: %v", outfitID, err)
		writeInternalError(w)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Outfit deleted successfully"})
}

// MarkWorn records that the caller wore an outfit
// @Summary Mark outfit worn
// @Tags outfits
// @Security BearerAuth
// @Produce json
// @Param outfitId path string true "Outfit ID"
// @Success 200 {object} dto.OutfitActionResponse
// @Failure 404 {object} dto.ErrorResponse "Outfit not found"
// @Router /api/outfits/{outfitId}/worn [post]
func (h *OutfitHandler) MarkWorn(w http.ResponseWriter, r *http.Request) {
	applyOutfitAction(w, r, h.store, h.log, func(o *models.Outfit) (string, json.RawMessage, string) {
		return models.ActionWorn, nil, "Outfit marked as worn"
	})
}
