package util

import (
	"encoding/json"
	"net/http"

	"github.com/madeindra/chongqing-story/internal/model"
)

func SendJSON(w http.ResponseWriter, v any, status int) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}

	SendRaw(w, body, status)
}

// SendRaw writes an already-encoded JSON body as is.
func SendRaw(w http.ResponseWriter, body []byte, status int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func SendError(w http.ResponseWriter, message string, details any, status int) {
	SendJSON(w, model.ErrorResponse{Error: message, Details: details}, status)
}
