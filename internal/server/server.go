package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rce-oj/dataserver/config"
	"github.com/rce-oj/dataserver/internal/db"
	"github.com/rce-oj/dataserver/internal/handlers"
	"github.com/rce-oj/dataserver/internal/logger"
	"github.com/rce-oj/dataserver/internal/services"
	"github.com/rce-oj/dataserver/internal/store"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// requestTimeout stays below writeTimeout.
const (
	requestTimeout = 10 * time.Second
	writeTimeout   = 15 * time.Second
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	client     *mongo.Client
	log        zerolog.Logger
	port       int
}

// New opens the store client and wires the query endpoint. An unreachable
// store does not prevent startup; queries degrade to fallback values until
// it comes back.
func New(ctx context.Context, cfg config.Config, log zerolog.Logger) (*Server, error) {
	client, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open mongodb client: %w", err)
	}

	if err := db.Ping(ctx, client); err != nil {
		log.Error().Err(err).Msg("Unable to connect to the database during service bootup.")
	}

	svc := NewQueryService(client, cfg, log)
	schema, err := handlers.NewSchema(svc, cfg.ProblemKey)
	if err != nil {
		_ = db.Close(client)
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		logger.RequestLogger(log),
		middleware.Timeout(requestTimeout),
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
			MaxAge:         300,
		}),
	)
	router.Get("/healthz", handlers.Healthz(func(ctx context.Context) error {
		return db.Ping(ctx, client)
	}))
	router.Handle("/graphql", handlers.GraphQL(&schema, cfg.GraphiQL))

	port := cfg.ServerPort
	if port == 0 {
		port = 3003
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		client:     client,
		log:        log,
		port:       port,
	}, nil
}

// NewQueryService builds the repositories over client and the service
// resolving queries against them.
func NewQueryService(client *mongo.Client, cfg config.Config, log zerolog.Logger) *services.QueryService {
	problemsColl, submissionsColl := db.Collections(client, cfg.Database.Name)
	problemRepo := store.NewProblemRepository(problemsColl, cfg.ProblemKey)
	submissionRepo := store.NewSubmissionRepository(submissionsColl)
	return services.NewQueryService(problemRepo, submissionRepo, log)
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server. It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msgf("rce-data service running on port %d", s.port)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones, then
// disconnects from the store.
func (s *Server) Shutdown(ctx context.Context) error {
	httpErr := s.httpServer.Shutdown(ctx)
	dbErr := db.Close(s.client)
	return errors.Join(httpErr, dbErr)
}
