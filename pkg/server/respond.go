package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/01wneo/RollingText/pkg/errors"
	"github.com/01wneo/RollingText/pkg/observability"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// decode reads a JSON request body into T, rejecting unknown fields.
func decode[T any](body io.Reader) (T, error) {
	var v T
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeBytes(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writeError reports err to the HTTP hooks and writes it as JSON. Input
// errors map to 400, unknown ids to 404, and everything else to 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)

	status := statusFor(err)
	resp := errorResponse{Error: errors.UserMessage(err), Code: string(errors.GetCode(err))}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		resp.Error = "internal error"
	}
	writeJSON(w, status, resp)
}

func statusFor(err error) int {
	code := errors.GetCode(err)
	switch {
	case errors.IsContractViolation(err):
		return http.StatusInternalServerError
	case code == errors.ErrCodeNotFound:
		return http.StatusNotFound
	case code == errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case strings.HasPrefix(string(code), "INVALID_"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
