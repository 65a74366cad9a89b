package api

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/PiotrMigaj/niebieskie-aparaty-admin/docs"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/api/handlers"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/api/middleware"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/auth"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/config"
)

// NewRouter assembles the HTTP surface. Everything under /api requires
// a bearer token except the admin login endpoint.
func NewRouter(
	cfg *config.Config,
	logger zerolog.Logger,
	tokens *auth.TokenManager,
	users handlers.UserStore,
	events handlers.EventStore,
	files handlers.FileStore,
) http.Handler {
	authHandler := handlers.NewAuthHandler(cfg.AdminUsername, cfg.AdminPassword, tokens, logger)
	userHandler := handlers.NewUserHandler(users, logger)
	eventHandler := handlers.NewEventHandler(events, files, users, logger)
	fileHandler := handlers.NewFileHandler(files, events, users, logger)

	mainMux := http.NewServeMux()
	c := cors.New(cfg.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	mainMux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()
	protectedMux.HandleFunc("POST /users", userHandler.Create)
	protectedMux.HandleFunc("GET /users", userHandler.List)
	protectedMux.HandleFunc("GET /users/generatePassword", userHandler.GeneratePassword)
	protectedMux.HandleFunc("POST /events", eventHandler.Create)
	protectedMux.HandleFunc("GET /events/{username}", eventHandler.ListByUsername)
	protectedMux.HandleFunc("POST /files", fileHandler.Create)

	mainMux.Handle("/api/",
		http.StripPrefix(
			"/api",
			middleware.Auth(tokens)(protectedMux),
		),
	)

	handler := c.Handler(mainMux)
	handler = middleware.Logger(logger)(handler)
	return handler
}
