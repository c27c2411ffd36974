package model

const (
	ErrMissingParameters = "Missing required parameters"
	ErrGenerateStory     = "Failed to generate story"
	ErrEntityTooLarge    = "Request entity too large"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
