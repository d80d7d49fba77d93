package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthorized is returned when the API rejects the bearer token. The
// session token has already been cleared when it is returned.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx, non-401 response from the POS API
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error (%d): %s", e.Status, e.Detail)
}

// newAPIError extracts a human-readable detail from an error body. JSON bodies
// yield their detail, message or error field, falling back to the whole
// document; anything else is used as-is.
func newAPIError(status int, body []byte) *APIError {
	text := strings.TrimSpace(string(body))

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err == nil {
		if obj, ok := doc.(map[string]interface{}); ok {
			for _, key := range []string{"detail", "message", "error"} {
				if v, ok := obj[key].(string); ok && v != "" {
					return &APIError{Status: status, Detail: v}
				}
			}
		}
		if compact, err := json.Marshal(doc); err == nil {
			text = string(compact)
		}
	}

	if text == "" {
		text = http.StatusText(status)
	}
	return &APIError{Status: status, Detail: text}
}
