package deepseek

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/madeindra/chongqing-story/internal/jsonvalue"
)

// UpstreamError is returned when the provider answers with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

// Details returns the provider's error payload: the JSON value itself when the
// body is JSON, the raw text otherwise. It is nil when the body is empty or a
// falsy JSON literal (null, false, 0, "").
func (e *UpstreamError) Details() any {
	body := bytes.TrimSpace(e.Body)
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		if !jsonvalue.Truthy(body) {
			return nil
		}
		return json.RawMessage(body)
	}
	return string(body)
}
