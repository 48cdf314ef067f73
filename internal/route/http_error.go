package route

import (
	"fmt"
	"net/http"
)

// statusCodes names the statuses an endpoint may pick through HTTPError.
// The names are the codes written to the error body.
var statusCodes = map[int]string{
	http.StatusBadRequest:           "BadRequest",
	http.StatusUnauthorized:         "Unauthorized",
	http.StatusForbidden:            "Forbidden",
	http.StatusNotFound:             "NotFound",
	http.StatusMethodNotAllowed:     "MethodNotAllowed",
	http.StatusPreconditionRequired: "PreconditionRequired",
	http.StatusInternalServerError:  "InternalServerError",
}

// HTTPError lets an endpoint answer with a specific status and error code.
type HTTPError struct {
	Status  int
	Code    string
	Details any
}

// NewHTTPError returns an HTTPError for status whose code is the status
// name, e.g. "BadRequest". Statuses outside the known set are reported as
// InternalServerError.
func NewHTTPError(status int) *HTTPError {
	code, ok := statusCodes[status]
	if !ok {
		return &HTTPError{Status: http.StatusInternalServerError, Code: statusCodes[http.StatusInternalServerError]}
	}
	return &HTTPError{Status: status, Code: code}
}

// WithDetails returns a copy of e carrying details.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Code)
}
