package gateway

import (
	"fmt"
	"net/http"

	"github.com/researchhub/hubcli/internal/common"
)

// ServerError is a non-2xx response from the backend. Message is the error
// body: JSON bodies are unwrapped to their error/message field, anything
// else is kept as raw text.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server rejected request (status %d)", e.Status)
	}
	return fmt.Sprintf("server rejected request (status %d): %s", e.Status, e.Message)
}

// Is maps well-known statuses onto the shared sentinels so callers can use
// errors.Is(err, common.ErrUnauthorized) without knowing about this type.
func (e *ServerError) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case common.ErrForbidden:
		return e.Status == http.StatusForbidden
	case common.ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}
