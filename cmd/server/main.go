package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthai-backend/internal/config"
	"healthai-backend/internal/handlers"
	"healthai-backend/internal/router"
	"healthai-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting HealthAI Assistant Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Prepare Upload Directory ────
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("✗ Failed to create upload directory: %v", err)
	}
	log.Printf("✓ Upload directory ready at %s", cfg.UploadDir)

	// ──── Step 3: Load Prediction Models ────
	// A model that fails to load degrades its route to "prediction
	// unavailable" instead of guessing.
	predictors := services.LoadModels(cfg.ModelsDir)

	// ──── Step 4: Initialize Gemini Client ────
	geminiCaller, err := services.NewGeminiCaller(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiCaller.Close()
	if cfg.GeminiAPIKey != "" {
		log.Println("✓ Gemini client initialized")
	} else {
		log.Println("✗ Gemini API key missing, chatbot degraded to advisory mode")
	}

	// ──── Initialize Services ────
	gateway := services.NewGateway(geminiCaller)
	extractor := services.NewPDFExtractor()
	chatService := services.NewChatService(gateway, extractor)
	intakePolicy := services.NewIntakePolicy(cfg.MaxContentLength)

	// ──── Initialize Handlers ────
	chatbotHandler := handlers.NewChatbotHandler(chatService, intakePolicy, cfg.UploadDir)
	predictionHandler := handlers.NewPredictionHandler(predictors)
	doctorsHandler := handlers.NewDoctorsHandler()
	infoHandler := handlers.NewInfoHandler()

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatbotHandler, predictionHandler, doctorsHandler, infoHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ HealthAI Assistant Backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
