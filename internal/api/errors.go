package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"qsmock/internal/domain"
)

// wireError resolves the wire-level error code and HTTP status for a
// domain error. The symbolic code and the message text are part of the
// observable contract; client test suites assert on both.
func wireError(err error) (status int, code string) {
	var notFound *domain.NotFoundError
	var invalidParam *domain.InvalidParameterValueError
	var validation *domain.ValidationError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, "ResourceNotFoundException"
	case errors.As(err, &invalidParam):
		return http.StatusBadRequest, "InvalidParameterValueException"
	case errors.As(err, &validation):
		return http.StatusBadRequest, "ValidationException"
	default:
		return http.StatusInternalServerError, "InternalFailure"
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := wireError(err)
	h.logger.Warn("request failed",
		"method", r.Method, "path", r.URL.Path, "code", code, "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Amzn-Errortype", code)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"__type":  code,
		"Message": err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
