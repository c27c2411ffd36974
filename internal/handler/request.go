package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/madeindra/chongqing-story/internal/model"
)

// maxBodyBytes caps request bodies at 100kb.
const maxBodyBytes = 100 << 10

var (
	errBodyTooLarge  = errors.New("request body too large")
	errTrailingData  = errors.New("unexpected data after JSON body")
	errMissingFields = errors.New("missing required parameters")
)

func decodeStoryRequest(w http.ResponseWriter, req *http.Request) (model.StoryRequest, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes))

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil && !errors.Is(err, io.EOF) {
		return model.StoryRequest{}, bodyError(err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return model.StoryRequest{}, bodyError(err)
		}
		return model.StoryRequest{}, errTrailingData
	}

	storyRequest, ok := model.StoryRequestFromFields(fields)
	if !ok {
		return model.StoryRequest{}, errMissingFields
	}

	return storyRequest, nil
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errBodyTooLarge
	}
	return fmt.Errorf("failed to decode body: %w", err)
}
