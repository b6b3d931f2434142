package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/nikhilsahni7/medquery/internal/api/handlers"
	"github.com/nikhilsahni7/medquery/internal/api/middleware"
	"github.com/nikhilsahni7/medquery/internal/config"
	"github.com/rs/cors"
)

func SetupRouter(auth *handlers.AuthHandler, query *handlers.QueryHandler) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mux.HandleFunc("/login", auth.Login)
	mux.HandleFunc("/register", auth.Register)

	// ---------- PROTECTED ROUTES ----------
	mux.Handle("/{$}", middleware.AuthMiddleware(http.HandlerFunc(query.Ask)))
	mux.Handle("/history", middleware.AuthMiddleware(http.HandlerFunc(query.History)))
	mux.Handle("/logout", middleware.AuthMiddleware(http.HandlerFunc(auth.Logout)))

	log.Println("Router initialized")
	handler := c.Handler(mux)
	handler = middleware.Logger(handler)
	return handler
}
