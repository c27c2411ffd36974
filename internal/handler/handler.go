package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/madeindra/chongqing-story/internal/deepseek"
)

type handler struct {
	ai  deepseek.Client
	log zerolog.Logger
}

func NewHandler(ai deepseek.Client, logger zerolog.Logger) *handler {
	return &handler{
		ai:  ai,
		log: logger,
	}
}

// logger returns the request-scoped logger set by middleware.Logger, or the
// handler's own logger when the request did not pass through it.
func (h *handler) logger(req *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(req.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &h.log
}
