package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/KarinaMa20040822/starwish/backend/internal/api/handlers"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
)

// NewRouter creates and configures the HTTP router.
// 路由設定只在這個函式
func NewRouter(
	fortuneHandler *handlers.FortuneHandler,
	almanacHandler *handlers.AlmanacHandler,
	profileHandler *handlers.ProfileHandler,
	stakeholderHandler *handlers.StakeholderHandler,
	chatHandler *handlers.ChatHandler,
	log *logger.Logger,
) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// Daily horoscope and AI endpoints, paths kept compatible with the
	// mobile client
	r.HandleFunc("/fortune", fortuneHandler.GetFortune).Methods("GET")
	r.HandleFunc("/today", almanacHandler.GetToday).Methods("GET")
	r.HandleFunc("/advice", fortuneHandler.PostAdvice).Methods("POST")
	r.HandleFunc("/luckySummary", fortuneHandler.PostLuckySummary).Methods("POST")

	// API v1
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/profile/daily", profileHandler.GetDaily).Methods("GET")
	api.HandleFunc("/stakeholders", stakeholderHandler.List).Methods("GET")
	api.HandleFunc("/stakeholders", stakeholderHandler.Create).Methods("POST")
	api.HandleFunc("/stakeholders/{id:[0-9]+}", stakeholderHandler.Delete).Methods("DELETE")

	// Streaming advisor chat (tarot and fortune-slip readings)
	r.HandleFunc("/ws/chat", chatHandler.Serve)

	// Apply middleware
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "starwish-api",
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
