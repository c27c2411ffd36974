package handler

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/madeindra/chongqing-story/internal/middleware"
	"github.com/madeindra/chongqing-story/internal/static"
)

type RouterConfig struct {
	StaticDir      string
	AllowedOrigins []string
	Logger         zerolog.Logger
}

func NewRouter(h *handler, cfg RouterConfig) http.Handler {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.HeaderRequestID},
		MaxAge:         300,
	}))

	r.Post("/api/generate-story", h.GenerateStory)

	if cfg.StaticDir != "" {
		files := static.Handler(cfg.StaticDir)
		r.Get("/*", files.ServeHTTP)
		r.Head("/*", files.ServeHTTP)
	}

	return r
}
