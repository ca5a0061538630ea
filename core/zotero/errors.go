package zotero

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidKey is returned when an operation receives an identifier that
// does not have the 8-character library key shape.
var ErrInvalidKey = errors.New("invalid item key")

// ConfigError reports an unusable library configuration. It is raised during
// client construction, before any network call; retrying is never meaningful.
type ConfigError struct {
	// Field is the configuration key at fault.
	Field string
	// Reason describes what is wrong with it.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("zotero config: %s: %s", e.Field, e.Reason)
}

// RemoteError reports a non-success HTTP status from the API. It carries the
// raw response body so callers can surface the server's own message.
type RemoteError struct {
	// StatusCode is the HTTP status returned by the API.
	StatusCode int
	// URL is the request URL (the API key travels in a header, never here).
	URL string
	// Body is the raw response body text.
	Body string
}

func (e *RemoteError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("zotero: GET %s: status %d: %s", e.URL, e.StatusCode, body)
}

// HTTPStatus maps an error from this package to the status a serving layer
// should answer with. Malformed input maps to 400, an upstream miss to 404,
// any other upstream failure to 502, and everything else, configuration
// problems included, to 500.
func HTTPStatus(err error) int {
	var remote *RemoteError
	switch {
	case errors.Is(err, ErrInvalidKey):
		return http.StatusBadRequest
	case errors.As(err, &remote):
		if remote.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
