package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"chainsentry/internal/core"
	"chainsentry/internal/ethereum"
	"chainsentry/internal/sanctions"
)

// internalErrDetail replaces the error of any 500 reply.
const internalErrDetail = "unexpected error occurred"

// Response is the envelope of every /v1 reply.
type Response struct {
	Message   string `json:"message,omitempty"`   // short message for humans
	Data      any    `json:"data,omitempty"`      // payload, absent on failure
	Error     string `json:"error,omitempty"`     // error detail (if any)
	RequestID string `json:"requestId,omitempty"` // set on failures to correlate with logs
}

func (h *AnalysisHandler) fail(w http.ResponseWriter, route, requestId, message string, err error, code int) {
	detail := err.Error()
	if code == http.StatusInternalServerError {
		detail = internalErrDetail
	}
	h.respond(w, Response{
		Message:   message,
		Error:     detail,
		RequestID: requestId,
	}, code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}

func (h *AnalysisHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, internalErrDetail, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, sanctions.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, ethereum.ErrBlockNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrBlockSource):
		return http.StatusBadGateway
	case errors.Is(err, core.ErrNoBlockSource),
		errors.Is(err, core.ErrNoSignalStore),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
