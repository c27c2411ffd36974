package model

import (
	"encoding/json"

	"github.com/madeindra/chongqing-story/internal/jsonvalue"
)

type StoryRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Genre    string `json:"genre"`
}

// StoryRequestFromFields picks the exact keys name, location and genre out of
// a decoded JSON object. It reports false when any of them is missing or falsy.
// Truthy non-string values are converted to text.
func StoryRequestFromFields(fields map[string]json.RawMessage) (StoryRequest, bool) {
	name, location, genre := fields["name"], fields["location"], fields["genre"]
	if !jsonvalue.Truthy(name) || !jsonvalue.Truthy(location) || !jsonvalue.Truthy(genre) {
		return StoryRequest{}, false
	}

	return StoryRequest{
		Name:     jsonvalue.Text(name),
		Location: jsonvalue.Text(location),
		Genre:    jsonvalue.Text(genre),
	}, true
}
