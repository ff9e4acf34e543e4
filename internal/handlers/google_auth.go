package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"FASHIONREC_BACK-END/internal/config"
	"FASHIONREC_BACK-END/internal/dto"
	"FASHIONREC_BACK-END/internal/middleware"
	"FASHIONREC_BACK-END/internal/models"
	"FASHIONREC_BACK-END/internal/repository"
	"FASHIONREC_BACK-END/internal/utils"
)

const (
	oauthStateCookie     = "oauth_state"
	oauthStateCookiePath = "/api/auth/google"
)

// GoogleUserInfoFunc exchanges an OAuth token for the Google profile behind it
type GoogleUserInfoFunc func(ctx context.Context, token *oauth2.Token) (*dto.GoogleUserInfo, error)

// GoogleAuthHandler handles Google OAuth authentication
type GoogleAuthHandler struct {
	users        repository.UserRepository
	oauth2Config *oauth2.Config
	config       *config.Config
	log          *logrus.Logger

	exchange func(ctx context.Context, code string) (*oauth2.Token, error)
	userInfo GoogleUserInfoFunc
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler instance
func NewGoogleAuthHandler(users repository.UserRepository, cfg *config.Config, logger *logrus.Logger) *GoogleAuthHandler {
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	h := &GoogleAuthHandler{
		users:        users,
		oauth2Config: oauth2Config,
		config:       cfg,
		log:          logger,
		userInfo:     fetchGoogleUserInfo,
	}
	h.exchange = func(ctx context.Context, code string) (*oauth2.Token, error) {
		return h.oauth2Config.Exchange(ctx, code)
	}
	return h
}

// GoogleLogin initiates Google OAuth login
// @Summary Google OAuth login
// @Description Returns the Google consent URL and the CSRF state
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse "Google OAuth URL"
// @Failure 501 {object} dto.ErrorResponse "Google OAuth not configured"
// @Router /api/auth/google/login [get]
func (h *GoogleAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.config.IsGoogleOAuthConfigured() {
		utils.WriteErrorResponse(w, http.StatusNotImplemented, "Google OAuth not configured", "")
		return
	}

	// Generate state parameter for CSRF protection
	state := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     oauthStateCookiePath,
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	authURL := h.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOffline)
	utils.WriteJSONResponse(w, http.StatusOK, dto.GoogleLoginResponse{AuthURL: authURL, State: state})
}

// GoogleCallback handles Google OAuth callback
// @Summary Google OAuth callback
// @Description Exchanges the code, signs the user in and redirects to the frontend with a token pair
// @Tags authentication
// @Param code query string true "Authorization code from Google"
// @Param state query string true "State parameter for CSRF protection"
// @Success 302 "Redirect to FRONTEND_URL/auth/callback"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid authorization code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/google/callback [get]
func (h *GoogleAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing authorization code", "Authorization code is required")
		return
	}

	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid state", "OAuth state does not match")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", Path: oauthStateCookiePath, MaxAge: -1, HttpOnly: true})

	token, err := h.exchange(r.Context(), code)
	if err != nil {
		h.log.Warnf("GoogleCallback: code exchange failed: %v", err)
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid authorization code", "")
		return
	}

	info, err := h.userInfo(r.Context(), token)
	if err != nil {
		h.log.Errorf("GoogleCallback: failed to get user info: %v", err)
		writeInternalError(w)
		return
	}
	if info.Email == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Google account has no email", "")
		return
	}

	user, err := h.findOrCreateUser(r.Context(), info)
	if err != nil {
		h.log.Errorf("GoogleCallback: %v", err)
		writeInternalError(w)
		return
	}
	if !user.IsActive {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Account is deactivated", "")
		return
	}

	tokens, err := middleware.GenerateTokenPair(user.ID, user.Email, &h.config.JWT)
	if err != nil {
		h.log.Errorf("GoogleCallback: %v", err)
		writeInternalError(w)
		return
	}

	query := url.Values{}
	query.Set("accessToken", tokens.AccessToken)
	query.Set("refreshToken", tokens.RefreshToken)
	http.Redirect(w, r, h.config.FrontendURL+"/auth/callback?"+query.Encode(), http.StatusFound)
}

func (h *GoogleAuthHandler) findOrCreateUser(ctx context.Context, info *dto.GoogleUserInfo) (*models.User, error) {
	user, err := h.users.GetByEmail(ctx, info.Email)
	if err == nil {
		if user.ProfilePicture == nil && info.Picture != "" {
			user.ProfilePicture = &info.Picture
			if err := h.users.Update(ctx, user); err != nil {
				h.log.Warnf("GoogleCallback: failed to store picture for %s: %v", user.ID, err)
			}
		}
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	first, last := info.GivenName, info.FamilyName
	if first == "" {
		first, last, _ = strings.Cut(info.Name, " ")
	}
	user = &models.User{
		Email:     strings.ToLower(info.Email),
		FirstName: first,
		LastName:  last,
		IsActive:  true,
	}
	if info.Picture != "" {
		user.ProfilePicture = &info.Picture
	}
	if err := h.users.Create(ctx, user); err != nil {
		return nil, err
	}
	h.log.Infof("User created from Google sign-in: %s", user.ID)
	return user, nil
}

// fetchGoogleUserInfo fetches user information from Google
func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*dto.GoogleUserInfo, error) {
	service, err := googleOAuth2.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(token)))
	if err != nil {
		return nil, err
	}

	userInfo, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	verified := false
	if userInfo.VerifiedEmail != nil {
		verified = *userInfo.VerifiedEmail
	}

	return &dto.GoogleUserInfo{
		ID:         userInfo.Id,
		Email:      userInfo.Email,
		Name:       userInfo.Name,
		GivenName:  userInfo.GivenName,
		FamilyName: userInfo.FamilyName,
		Picture:    userInfo.Picture,
		Verified:   verified,
	}, nil
}
