package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/coachpad/matchtime/internal/usecase"
)

type responseEnvelope struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, responseEnvelope{Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	status, reason := mapError(err)
	writeJSON(w, status, responseEnvelope{
		Error: &errorBody{
			Code:    status,
			Reason:  reason,
			Message: err.Error(),
		},
	})
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, responseEnvelope{
		Error: &errorBody{
			Code:    http.StatusInternalServerError,
			Reason:  "internalError",
			Message: "internal server error",
		},
	})
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest, "invalidInput"
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound, "notFound"
	case errors.Is(err, usecase.ErrMatchFinished):
		return http.StatusConflict, "matchFinished"
	case errors.Is(err, usecase.ErrPeriodState):
		return http.StatusConflict, "periodState"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "internalError"
	}
}
