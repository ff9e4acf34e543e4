package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"FASHIONREC_BACK-END/internal/config"
	"FASHIONREC_BACK-END/internal/dto"
	"FASHIONREC_BACK-END/internal/repository"
	"FASHIONREC_BACK-END/internal/utils"
)

// Token types carried in the typ claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrWrongTokenType is returned when a refresh token is presented as an access token or the reverse
var ErrWrongTokenType = errors.New("wrong token type")

// JWTClaims represents the claims in the JWT token
type JWTClaims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Type   string    `json:"typ"`
	jwt.RegisteredClaims
}

func signingKey(tokenType string, cfg *config.JWTConfig) []byte {
	if tokenType == TokenTypeRefresh {
		return []byte(cfg.RefreshSecret)
	}
	return []byte(cfg.Secret)
}

// GenerateToken generates a JWT token of the given type for the user
func GenerateToken(userID uuid.UUID, email, tokenType string, cfg *config.JWTConfig) (string, error) {
	ttl := cfg.AccessTokenTTL
	if tokenType == TokenTypeRefresh {
		ttl = cfg.RefreshTokenTTL
	}

	now := time.Now()
	claims := JWTClaims{
		UserID: userID,
		Email:  email,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey(tokenType, cfg))
}

// GenerateTokenPair issues an access token and the refresh token that renews it
func GenerateTokenPair(userID uuid.UUID, email string, cfg *config.JWTConfig) (dto.TokenPair, error) {
	access, err := GenerateToken(userID, email, TokenTypeAccess, cfg)
	if err != nil {
		return dto.TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := GenerateToken(userID, email, TokenTypeRefresh, cfg)
	if err != nil {
		return dto.TokenPair{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return dto.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(cfg.AccessTokenTTL.Seconds()),
	}, nil
}

// ValidateToken validates a JWT token of the expected type and returns the claims.
// Expired tokens yield an error wrapping jwt.ErrTokenExpired.
func ValidateToken(tokenString, tokenType string, cfg *config.JWTConfig) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return signingKey(tokenType, cfg), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenMalformed
	}
	if claims.Type != tokenType {
		return nil, ErrWrongTokenType
	}
	if claims.UserID == uuid.Nil {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Authenticator checks bearer tokens and that the account behind them is still active
type Authenticator struct {
	users repository.UserRepository
	cfg   *config.JWTConfig
	log   *logrus.Logger
}

// NewAuthenticator creates an Authenticator
func NewAuthenticator(users repository.UserRepository, cfg *config.JWTConfig, logger *logrus.Logger) *Authenticator {
	return &Authenticator{users: users, cfg: cfg, log: logger}
}

// Middleware validates JWT tokens in the Authorization header
func (a *Authenticator) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || tokenString == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Access token required", "Authorization header must be 'Bearer <token>'")
			return
		}

		claims, err := ValidateToken(tokenString, TokenTypeAccess, a.cfg)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Token expired", "Please refresh your access token")
				return
			}
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid token", "")
			return
		}

		user, err := a.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				a.log.Errorf("AuthMiddleware: failed to load user %s: %v", claims.UserID, err)
			}
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid token", "")
			return
		}
		if !user.IsActive {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid token", "Account is deactivated")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), user.ID)))
	}
}
