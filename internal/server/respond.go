package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	gerrors "github.com/matzehuels/gedtree/pkg/errors"
	"github.com/matzehuels/gedtree/pkg/store"
)

type errorBody struct {
	Error string       `json:"error"`
	Code  gerrors.Code `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto an HTTP status by its error code.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := gerrors.Classify(err)
	if errors.Is(err, store.ErrNotFound) {
		code = gerrors.ErrCodeDocumentNotFound
	}
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorBody{Error: message(err), Code: code})
}

func message(err error) string {
	msg := gerrors.UserMessage(err)
	var e *gerrors.Error
	if errors.As(err, &e) && e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func statusFor(code gerrors.Code) int {
	switch {
	case gerrors.IsNotFound(code):
		return http.StatusNotFound
	case code == gerrors.ErrCodeInvalidFormat, code == gerrors.ErrCodeWrongKind:
		return http.StatusUnprocessableEntity
	case strings.HasPrefix(string(code), "INVALID_"), code == gerrors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case code == gerrors.ErrCodeStorage, code == gerrors.ErrCodeCache:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
