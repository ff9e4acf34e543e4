package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"FASHIONREC_BACK-END/internal/config"
	"FASHIONREC_BACK-END/internal/dto"
	"FASHIONREC_BACK-END/internal/middleware"
	"FASHIONREC_BACK-END/internal/models"
	"FASHIONREC_BACK-END/internal/repository"
	"FASHIONREC_BACK-END/internal/utils"
)

const bcryptCost = 12

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	store *repository.Store
	jwt   *config.JWTConfig
	log   *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(store *repository.Store, jwtCfg *config.JWTConfig, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{store: store, jwt: jwtCfg, log: logger}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new account and return a token pair
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.AuthResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "User already exists"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		h.log.Errorf("Register: failed to hash password: %v", err)
		writeInternalError(w)
		return
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       req.Gender,
		IsActive:     true,
	}
	if req.DateOfBirth != nil {
		dob, _ := utils.ParseDate(*req.DateOfBirth)
		user.DateOfBirth = &dob
	}

	if err := h.store.Users.Create(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			utils.WriteErrorResponse(w, http.StatusConflict, "User already exists", "Email is already registered")
			return
		}
		h.log.Errorf("Register: failed to create user: %v", err)
		writeInternalError(w)
		return
	}

	tokens, err := middleware.GenerateTokenPair(user.ID, user.Email, h.jwt)
	if err != nil {
		h.log.Errorf("Register: %v", err)
		writeInternalError(w)
		return
	}

	h.log.Infof("User registered: %s", user.ID)
	utils.WriteJSONResponse(w, http.StatusCreated, dto.AuthResponse{
		Message: "User registered successfully",
		User:    dto.NewUserResponse(user),
		Tokens:  tokens,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.store.Users.GetByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.log.Errorf("Login: failed to load user: %v", err)
		writeInternalError(w)
		return
	}

	// Unknown, deactivated and Google-only accounts all look the same to the caller
	if user == nil || !user.IsActive || !user.HasPassword() ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
		return
	}

	tokens, err := middleware.GenerateTokenPair(user.ID, user.Email, h.jwt)
	if err != nil {
		h.log.Errorf("Login: %v", err)
		writeInternalError(w)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    dto.NewUserResponse(user),
		Tokens:  tokens,
	})
}

// RefreshToken exchanges a refresh token for a new token pair
// @Summary Refresh tokens
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired refresh token"
// @Router /api/auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Refresh token required", "")
		return
	}

	claims, err := middleware.ValidateToken(req.RefreshToken, middleware.TokenTypeRefresh, h.jwt)
	if err != nil {
		msg := "Invalid refresh token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "Refresh token expired"
		}
		utils.WriteErrorResponse(w, http.StatusUnauthorized, msg, "")
		return
	}

	user, err := h.store.Users.GetByID(r.Context(), claims.UserID)
	if err != nil || !user.IsActive {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid refresh token", "")
		return
	}

	tokens, err := middleware.GenerateTokenPair(user.ID, user.Email, h.jwt)
	if err != nil {
		h.log.Errorf("RefreshToken: %v", err)
		writeInternalError(w)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{Tokens: tokens})
}

// Logout acknowledges a logout. Tokens are stateless, so the client discards them.
// @Summary Logout
// @Tags authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// GetProfile returns the current user with their quizzes and outfits
// @Summary Get current user
// @Description Returns the authenticated user including quizzes and outfits
// @Tags authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	user, err := h.store.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "")
			return
		}
		h.log.Errorf("GetProfile: %v", err)
		writeInternalError(w)
		return
	}

	quizzes, err := h.store.Quizzes.ListByUser(ctx, userID)
	if err != nil {
		h.log.Errorf("GetProfile: failed to list quizzes: %v", err)
		writeInternalError(w)
		return
	}
	outfits, err := h.store.Outfits.List(ctx, userID, repository.OutfitFilter{})
	if err != nil {
		h.log.Errorf("GetProfile: failed to list outfits: %v", err)
		writeInternalError(w)
		return
	}

	resp := dto.NewUserResponse(user)
	resp.Quizzes = dto.NewQuizResponses(quizzes)
	resp.Outfits = dto.NewOutfitResponses(outfits)
	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{User: resp})
}
