// Package httpserver contains HTTP handlers and middleware.
//
// It exposes the public ask endpoint plus liveness, readiness and operator
// endpoints, keeping HTTP concerns separate from the pipeline logic.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taracare/askgate/internal/domain"
)

// errorEnvelope is the flat error body the web client expects.
type errorEnvelope struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, _ *http.Request, err error) {
	code := http.StatusInternalServerError
	msg := "server error"
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		code = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, domain.ErrRateLimited):
		code = http.StatusTooManyRequests
		msg = "Too many requests, please slow down."
	case errors.Is(err, domain.ErrUpstreamTimeout), errors.Is(err, domain.ErrUpstreamFailure):
		// Infrastructure faults are the only true server errors; the
		// message stays generic, details go to the operator log.
		code = http.StatusInternalServerError
		msg = "server error"
	}
	writeJSON(w, code, errorEnvelope{Error: msg})
}
