package handler

import (
	"net/http"

	"github.com/go-chi/render"
)

// ErrorDetail is the machine-readable part of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned for every non-2xx response:
// {"error":{"code":"...","message":"..."}}.
type ErrorResponse struct {
	HTTPStatus int         `json:"-"`
	Err        ErrorDetail `json:"error"`
}

// Render sets the HTTP status before go-chi/render writes the body.
func (e ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatus)
	return nil
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "calculation not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{
		HTTPStatus: http.StatusNotFound,
		Err:        ErrorDetail{Code: "not_found", Message: message},
	}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) ErrorResponse {
	return ErrorResponse{
		HTTPStatus: http.StatusUnprocessableEntity,
		Err:        ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)},
	}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{
		HTTPStatus: http.StatusUnprocessableEntity,
		Err:        ErrorDetail{Code: "validation_error", Message: message},
	}
}

// internalBody returns the ErrorResponse for unexpected failures. The real
// error is logged by the request-logging middleware; the body stays generic.
func internalBody() ErrorResponse {
	return ErrorResponse{
		HTTPStatus: http.StatusInternalServerError,
		Err:        ErrorDetail{Code: "internal_error", Message: "internal server error"},
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.CalculationService.Save: validation error: naam is verplicht"
// → "naam is verplicht"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.CalculationService.Save: validation error: ",
		"validation error: ",
	} {
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
