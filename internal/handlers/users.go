package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"FASHIONREC_BACK-END/internal/aesthetic"
	"FASHIONREC_BACK-END/internal/dto"
	"FASHIONREC_BACK-END/internal/repository"
	"FASHIONREC_BACK-END/internal/utils"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// UserHandler serves the caller's profile, history and dashboard
type UserHandler struct {
	store *repository.Store
	log   *logrus.Logger
}

// NewUserHandler creates a UserHandler
func NewUserHandler(store *repository.Store, logger *logrus.Logger) *UserHandler {
	return &UserHandler{store: store, log: logger}
}

// GetProfile returns the caller's profile
// @Summary Get profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/users/profile [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	user, err := h.store.Users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "")
			return
		}
		h.log.Errorf("GetProfile: %v", err)
		writeInternalError(w)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{User: dto.NewUserResponse(user)})
}

// UpdateProfile applies a partial profile update
// @Summary Update profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UpdateProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /api/users/profile [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	if len(req.Preferences) > 0 && !isJSONObject(req.Preferences) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "preferences must be an object")
		return
	}

	ctx := r.Context()
	user, err := h.store.Users.GetByID(ctx, userID)
	if err != nil {
		h.log.Errorf("UpdateProfile: %v", err)
		writeInternalError(w)
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.DateOfBirth != nil {
		dob, _ := utils.ParseDate(*req.DateOfBirth)
		user.DateOfBirth = &dob
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = req.ProfilePicture
	}
	if len(req.Preferences) > 0 {
		user.Preferences = req.Preferences
	}

	if err := h.store.Users.Update(ctx, user); err != nil {
		h.log.Errorf("UpdateProfile: failed to update user %s: %v", userID, err)
		writeInternalError(w)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.UpdateProfileResponse{
		Message: "Profile updated successfully",
		User:    dto.NewUserResponse(user),
	})
}

// UpdatePreferences replaces the caller's preferences object
// @Summary Replace preferences
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object true "Preferences"
// @Success 200 {object} dto.PreferencesResponse
// @Failure 400 {object} dto.ErrorResponse "Preferences must be an object"
// @Router /api/users/preferences [put]
func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var prefs json.RawMessage
	if err := utils.DecodeJSONRequest(w, r, &prefs); err != nil {
		return
	}
	if !isJSONObject(prefs) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "preferences must be an object")
		return
	}

	ctx := r.Context()
	user, err := h.store.Users.GetByID(ctx, userID)
	if err != nil {
		h.log.Errorf("UpdatePreferences: %v", err)
		writeInternalError(w)
		return
	}
	user.Preferences = prefs
	if err := h.store.Users.Update(ctx, user); err != nil {
		h.log.Errorf("UpdatePreferences: failed to update user %s: %v", userID, err)
		writeInternalError(w)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.PreferencesResponse{
		Message:     "Preferences updated successfully",
		Preferences: user.Preferences,
	})
}

// DeleteAccount deactivates the caller's account
// @Summary Deactivate account
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/users/account [delete]
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	if err := h.store.Users.Deactivate(r.Context(), userID); err != nil {
		h.log.Errorf("DeleteAccount: %v", err)
		writeInternalError(w)
		return
	}
	h.log.Infof("User deactivated: %s", userID)
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Account deactivated successfully"})
}

// StyleHistory lists the caller's interactions, newest first
// @Summary Style history
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.StyleHistoryResponse
// @Router /api/users/style-history [get]
func (h *UserHandler) StyleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	limit := queryInt(r, "limit", defaultHistoryLimit, maxHistoryLimit)
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	offset := queryInt(r, "offset", 0, 0)

	rows, err := h.store.History.ListByUser(r.Context(), userID, limit, offset)
	if err != nil {
		h.log.Errorf("StyleHistory: %v", err)
		writeInternalError(w)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.StyleHistoryResponse{
		History: dto.NewStyleHistoryEntries(rows),
		Limit:   limit,
		Offset:  offset,
	})
}

// SavedOutfits lists the caller's saved outfits
// @Summary Saved outfits
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.OutfitListResponse
// @Router /api/users/saved-outfits [get]
func (h *UserHandler) SavedOutfits(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	saved := true
	outfits, err := h.store.Outfits.List(r.Context(), userID, repository.OutfitFilter{Saved: &saved})
	if err != nil {
		h.log.Errorf("SavedOutfits: %v", err)
		writeInternalError(w)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.OutfitListResponse{
		Outfits: dto.NewOutfitResponses(outfits),
		Total:   len(outfits),
	})
}

// DashboardStats summarises quizzes, outfits and activity
// @Summary Dashboard statistics
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Router /api/users/dashboard-stats [get]
func (h *UserHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	quizzes, err := h.store.Quizzes.ListByUser(ctx, userID)
	if err != nil {
		h.log.Errorf("DashboardStats: %v", err)
		writeInternalError(w)
		return
	}
	outfits, err := h.store.Outfits.List(ctx, userID, repository.OutfitFilter{})
	if err != nil {
		h.log.Errorf("DashboardStats: %v", err)
		writeInternalError(w)
		return
	}
	activity, err := h.store.History.CountByAction(ctx, userID)
	if err != nil {
		h.log.Errorf("DashboardStats: %v", err)
		writeInternalError(w)
		return
	}

	stats := dto.DashboardStatsResponse{
		TotalQuizzes: len(quizzes),
		TotalOutfits: len(outfits),
		Activity:     activity,
	}
	for _, o := range outfits {
		if o.IsLiked {
			stats.LikedOutfits++
		}
		if o.IsSaved {
			stats.SavedOutfits++
		}
	}

	latest, err := h.store.Quizzes.LatestCompleted(ctx, userID)
	switch {
	case err == nil:
		if style := aesthetic.PrimaryStyle(latest.AestheticProfile); style != "" {
			stats.PrimaryStyle = &style
		}
	case !errors.Is(err, repository.ErrNotFound):
		h.log.Warnf("DashboardStats: failed to load latest quiz: %v", err)
	}

	utils.WriteJSONResponse(w, http.StatusOK, stats)
}
