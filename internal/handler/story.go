package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/madeindra/chongqing-story/internal/model"
	"github.com/madeindra/chongqing-story/internal/util"
)

func (h *handler) GenerateStory(w http.ResponseWriter, req *http.Request) {
	logger := h.logger(req)

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Str("panic", fmt.Sprint(rec)).Msg("panic while generating story")
			util.SendError(w, model.ErrGenerateStory, fmt.Sprint(rec), http.StatusInternalServerError)
		}
	}()

	storyRequest, err := decodeStoryRequest(w, req)
	switch {
	case errors.Is(err, errBodyTooLarge):
		logger.Warn().Err(err).Msg("story request body too large")
		util.SendError(w, model.ErrEntityTooLarge, nil, http.StatusRequestEntityTooLarge)

		return
	case errors.Is(err, errMissingFields):
		util.SendError(w, model.ErrMissingParameters, nil, http.StatusBadRequest)

		return
	case err != nil:
		logger.Warn().Err(err).Msg("failed to read story request body")
		util.SendError(w, model.ErrMissingParameters, nil, http.StatusBadRequest)

		return
	}

	story, err := util.GenerateStory(req.Context(), h.ai, storyRequest)
	if err != nil {
		logger.Error().Err(err).
			Str("location", storyRequest.Location).
			Str("genre", storyRequest.Genre).
			Msg("error generating story")
		util.SendError(w, model.ErrGenerateStory, util.ErrorDetails(err), http.StatusInternalServerError)

		return
	}

	util.SendRaw(w, story, http.StatusOK)
}
