package routes

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	"FASHIONREC_BACK-END/internal/config"
	"FASHIONREC_BACK-END/internal/handlers"
	"FASHIONREC_BACK-END/internal/metrics"
	"FASHIONREC_BACK-END/internal/middleware"
	"FASHIONREC_BACK-END/internal/utils"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth            *handlers.AuthHandler
	GoogleAuth      *handlers.GoogleAuthHandler
	Health          *handlers.HealthHandler
	Quiz            *handlers.QuizHandler
	Recommendations *handlers.RecommendationHandler
	Users           *handlers.UserHandler
	Outfits         *handlers.OutfitHandler
}

// Options carries the cross-cutting collaborators of the router
type Options struct {
	Config        *config.Config
	Logger        *logrus.Logger
	Metrics       *metrics.Metrics
	Authenticator *middleware.Authenticator
	// RateLimiter guards credential endpoints; nil disables limiting
	RateLimiter *middleware.RateLimiter
}

type router struct {
	mux     *http.ServeMux
	metrics *metrics.Metrics
}

// handle registers h under pattern, labelled by the pattern in metrics
func (rt *router) handle(pattern string, h http.HandlerFunc) {
	var recorder middleware.HTTPRecorder
	if rt.metrics != nil {
		recorder = rt.metrics
	}
	rt.mux.Handle(pattern, middleware.Instrument(recorder, pattern, h))
}

// SetupRoutes configures all application routes and returns the root handler
func SetupRoutes(h Handlers, opts Options) http.Handler {
	rt := &router{mux: http.NewServeMux(), metrics: opts.Metrics}
	auth := opts.Authenticator.Middleware
	limited := func(next http.HandlerFunc) http.HandlerFunc {
		if opts.RateLimiter == nil {
			return next
		}
		return opts.RateLimiter.Middleware(next)
	}

	// Health check routes
	rt.handle("GET /health", h.Health.Health)
	rt.handle("GET /healthz", h.Health.HealthCheck)
	rt.handle("GET /livez", h.Health.LivenessCheck)
	rt.handle("GET /readyz", h.Health.ReadinessCheck)

	// Authentication routes
	rt.handle("POST /api/auth/register", limited(h.Auth.Register))
	rt.handle("POST /api/auth/login", limited(h.Auth.Login))
	rt.handle("POST /api/auth/refresh-token", limited(h.Auth.RefreshToken))
	rt.handle("POST /api/auth/logout", auth(h.Auth.Logout))
	rt.handle("GET /api/auth/profile", auth(h.Auth.GetProfile))
	rt.handle("GET /api/auth/google/login", h.GoogleAuth.GoogleLogin)
	rt.handle("GET /api/auth/google/callback", h.GoogleAuth.GoogleCallback)

	// Quiz routes
	rt.handle("GET /api/quiz/questions", auth(h.Quiz.GetQuestions))
	rt.handle("POST /api/quiz/submit", auth(h.Quiz.Submit))
	rt.handle("GET /api/quiz/history", auth(h.Quiz.History))
	rt.handle("GET /api/quiz/latest", auth(h.Quiz.Latest))
	rt.handle("DELETE /api/quiz/{quizId}", auth(h.Quiz.Delete))

	// Recommendation routes
	rt.handle("GET /api/recommendations", auth(h.Recommendations.GetRecommendations))
	rt.handle("GET /api/recommendations/similar/{outfitId}", auth(h.Recommendations.GetSimilar))
	rt.handle("POST /api/recommendations/like/{outfitId}", auth(h.Recommendations.LikeOutfit))
	rt.handle("POST /api/recommendations/save/{outfitId}", auth(h.Recommendations.SaveOutfit))
	rt.handle("POST /api/recommendations/rate/{outfitId}", auth(h.Recommendations.RateOutfit))

	// User routes
	rt.handle("GET /api/users/profile", auth(h.Users.GetProfile))
	rt.handle("PUT /api/users/profile", auth(h.Users.UpdateProfile))
	rt.handle("PUT /api/users/preferences", auth(h.Users.UpdatePreferences))
	rt.handle("DELETE /api/users/account", auth(h.Users.DeleteAccount))
	rt.handle("GET /api/users/style-history", auth(h.Users.StyleHistory))
	rt.handle("GET /api/users/saved-outfits", auth(h.Users.SavedOutfits))
	rt.handle("GET /api/users/dashboard-stats", auth(h.Users.DashboardStats))

	// Outfit routes
	rt.handle("GET /api/outfits", auth(h.Outfits.List))
	rt.handle("POST /api/outfits", auth(h.Outfits.Create))
	rt.handle("GET /api/outfits/category/{category}", auth(h.Outfits.ByCategory))
	rt.handle("GET /api/outfits/{outfitId}", auth(h.Outfits.Get))
	rt.handle("PUT /api/outfits/{outfitId}", auth(h.Outfits.Update))
	rt.handle("DELETE /api/outfits/{outfitId}", auth(h.Outfits.Delete))
	rt.handle("POST /api/outfits/{outfitId}/worn", auth(h.Outfits.MarkWorn))

	if opts.Metrics != nil {
		rt.mux.Handle("GET /metrics", opts.Metrics.Handler())
	}
	rt.mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	rt.mux.HandleFunc("/", notFound)

	var handler http.Handler = rt.mux
	handler = middleware.BodyLimit(opts.Config.Server.MaxBodyBytes, handler)
	handler = middleware.SecurityHeaders(handler)
	handler = corsOptions(opts.Config.CORS).Handler(handler)
	if opts.Logger != nil {
		handler = middleware.RequestLogger(opts.Logger, handler)
	}
	return handler
}

func corsOptions(cfg config.CORSConfig) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteErrorResponse(w, http.StatusNotFound, "Route not found", r.Method+" "+r.URL.Path)
}
