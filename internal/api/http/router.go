package http

import (
	"fmt"
	"net/http"

	"joke-api/internal/repository"
	"joke-api/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles the handlers' dependencies for route registration.
type Services struct {
	Catalog    service.CatalogService
	Moderation service.ModerationService
	Auth       service.AuthService
	Analytics  service.AnalyticsService
	RateLimit  service.RateLimitService
	AccessLogs repository.AccessLogRepository
}

// NewRouter wires every route behind the recovery and access-log middleware.
func NewRouter(svcs Services) *mux.Router {
	jokeHandler := NewJokeHandler(svcs.Catalog)
	moderationHandler := NewModerationHandler(svcs.Moderation)
	authHandler := NewAuthHandler(svcs.Auth)
	analyticsHandler := NewAnalyticsHandler(svcs.Analytics)
	rateLimitHandler := NewRateLimitHandler(svcs.RateLimit)

	router := mux.NewRouter()
	router.Use(RecoveryMiddleware)
	router.Use(AccessLogMiddleware(svcs.AccessLogs))

	router.HandleFunc("/joke", jokeHandler.GetRandomJoke).Methods("GET")
	router.HandleFunc("/joke/{language}", jokeHandler.GetJokeInLanguage).Methods("GET")
	router.HandleFunc("/moderation/submit", moderationHandler.SubmitJoke).Methods("POST")
	router.HandleFunc("/moderation/review/{jokeId}", moderationHandler.ReviewJoke).Methods("PUT")
	router.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/analytics/usage", analyticsHandler.GetUsageStats).Methods("GET")
	router.HandleFunc("/analytics/performance", analyticsHandler.GetPerformanceMetrics).Methods("GET")
	router.HandleFunc("/security/rate_limit", rateLimitHandler.Check).Methods("GET")

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status": "healthy", "service": "joke-api"}`)
	}).Methods("GET")

	return router
}
