package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"healthai-backend/internal/handlers"
	"healthai-backend/internal/middleware"
)

// New builds the HTTP surface. Route paths are a preserved external contract.
func New(
	chatbotHandler *handlers.ChatbotHandler,
	predictionHandler *handlers.PredictionHandler,
	doctorsHandler *handlers.DoctorsHandler,
	infoHandler *handlers.InfoHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Chat rate limiter (30 req/min per IP)
	chatLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Chatbot ────
	r.Group(func(r chi.Router) {
		r.Use(chatLimiter.Middleware)
		r.Post("/chatbot", chatbotHandler.Chat)
	})

	// ──── Disease Prediction ────
	r.Post("/diabetes", predictionHandler.Diabetes)
	r.Post("/heart", predictionHandler.Heart)
	r.Post("/kidney", predictionHandler.Kidney)

	// ──── Doctor Finder ────
	r.Post("/api/nearby-doctors", doctorsHandler.NearbyDoctors)

	// ──── Static Health Content ────
	r.Get("/health_tips", infoHandler.HealthTips)
	r.Get("/emergency_info", infoHandler.EmergencyInfo)

	return r
}
