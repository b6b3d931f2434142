package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/nikhilsahni7/medquery/internal/api"
	"github.com/nikhilsahni7/medquery/internal/api/handlers"
	"github.com/nikhilsahni7/medquery/internal/api/services"
	"github.com/nikhilsahni7/medquery/internal/config"
	"github.com/nikhilsahni7/medquery/internal/repositories"
)

func main() {
	cfg := config.Envs

	if cfg.Gemini.APIKey == "" {
		log.Fatal("Missing GEMINI_API_KEY in environment")
	}

	db := repositories.ConnectDatabase(cfg.DBPath)
	users := repositories.NewUserRepository(db)
	history := repositories.NewHistoryRepository(db)

	var translator services.Translator
	switch cfg.Translate.Provider {
	case "google":
		translator = services.NewGoogleTranslator(cfg.Translate.Credentials)
	default:
		translator = services.NewMyMemoryTranslator(cfg.Translate.Email)
	}

	generator := services.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	orchestrator := services.NewOrchestrator(translator, generator, history)

	authHandler := handlers.NewAuthHandler(users)
	queryHandler := handlers.NewQueryHandler(orchestrator, history)

	mux := api.SetupRouter(authHandler, queryHandler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: mux,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 125 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting MedQuery server on port: %s", cfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
	}
}
