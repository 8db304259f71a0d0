package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/static/errs"
)

type ErrorMessage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// WriteServiceError maps the grading error taxonomy onto HTTP statuses:
// caller mistakes become 4xx, infrastructure faults 502/408. Nothing is
// retried here.
func WriteServiceError(w http.ResponseWriter, err error) {
	WriteError(w, ErrorMessage{
		Message:    err.Error(),
		StatusCode: statusFor(err),
	})
}

func statusFor(err error) int {
	var (
		validation *errs.ValidationError
		invalidCfg *errs.InvalidConfigError
		notFound   *errs.NotFoundError
		external   *errs.ExternalServiceError
		timeout    *errs.TimeoutError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &invalidCfg):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &timeout):
		return http.StatusRequestTimeout
	case errors.As(err, &external):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
