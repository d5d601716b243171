package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/snsihub/showcase-portal-backend/config"
	"github.com/snsihub/showcase-portal-backend/services"
	"github.com/snsihub/showcase-portal-backend/store"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(backend *services.Client, draftStore *store.DraftStore) (Server, error) {
	c := config.New()

	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(backend, draftStore, withConfig(c), withStartupTime(startupTime))

	// Get timeout values from config with sensible defaults
	readTimeout := config.GetDuration(c, "READ_TIMEOUT_SECONDS", 180*time.Second)
	writeTimeout := config.GetDuration(c, "WRITE_TIMEOUT_SECONDS", 180*time.Second)
	idleTimeout := config.GetDuration(c, "IDLE_TIMEOUT_SECONDS", 180*time.Second)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(backend *services.Client, draftStore *store.DraftStore, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	sessionSecret := config.GetString(router.config, "SESSION_SECRET", "")
	if sessionSecret == "" {
		log.Warn().Msg("SESSION_SECRET is unset, tokens will not survive a restart")
		sessionSecret = fmt.Sprintf("ephemeral-%d", router.startupTime.UnixNano())
	}
	sessionTTL := config.GetDuration(router.config, "SESSION_TTL_SECONDS", 12*time.Hour)
	issuer := newTokenIssuer(sessionSecret, sessionTTL)

	// Initialize all handlers
	handlers := initializeHandlers(backend, draftStore, issuer)

	// Initialize auth middleware
	authMiddleware := newAuthMiddleware(issuer)

	// Apply CORS middleware
	acceptedOrigins := config.GetStrings(router.config, "ACCEPTED_ORIGINS")
	if len(acceptedOrigins) == 0 {
		acceptedOrigins = []string{"*"}
	}
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	// Setup all route types
	setupPortalRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
