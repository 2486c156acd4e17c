package greenapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/xavierca1/greenapi-console/internal/entity"
	"github.com/xavierca1/greenapi-console/internal/locale"
)

// HTTPError is returned when the gateway answered with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("greenapi: status %d", e.StatusCode)
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// MapError normalizes any client failure into an entity.APIError. The
// message is never empty.
func MapError(err error, catalog *locale.Catalog) entity.APIError {
	if err == nil {
		return entity.APIError{Message: catalog.Unexpected}
	}

	if httpErr, ok := AsHTTPError(err); ok {
		details, bodyMessage := parseBody(httpErr.Body)

		message := bodyMessage
		if message == "" {
			if fixed, known := catalog.StatusText(httpErr.StatusCode); known {
				message = fixed
			} else {
				message = catalog.RequestFailed(httpErr.StatusCode)
			}
		}

		return entity.APIError{
			HTTPCode: httpErr.StatusCode,
			Message:  message,
			Details:  details,
		}
	}

	message := transportText(err)
	if message == "" {
		message = catalog.Unexpected
	}
	return entity.APIError{Message: message}
}

// parseBody keeps the body for display and extracts message or error.
// A body that is not JSON is kept as a string.
func parseBody(body []byte) (interface{}, string) {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return nil, ""
	}

	var details interface{}
	if err := json.Unmarshal(body, &details); err != nil {
		return raw, ""
	}

	var fields errorBody
	if err := json.Unmarshal(body, &fields); err != nil {
		// valid JSON but not an object
		return details, ""
	}

	if fields.Message != "" {
		return details, fields.Message
	}
	return details, fields.Error
}

// transportText drops the request URL from *url.Error so the instance token
// never reaches the results panel.
func transportText(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
