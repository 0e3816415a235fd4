package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"fieldmap-service/internal/middleware"
	"fieldmap-service/internal/utils"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg, RequestID: middleware.GetRequestID(r)})
}

// decodeJSON: пустое тело и лишние поля считаются ошибкой.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errors.Newf("body larger than %d bytes", maxErr.Limit)
		}
		return errors.Wrap(err, "bad json")
	}
	return nil
}

// reqLogger: логгер с req_id, если middleware его проставил.
func reqLogger(base zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := middleware.GetRequestID(r); rid != "" {
		return base.With().Str("req_id", rid).Logger()
	}
	return base
}

func atoi(s string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return def
}

func toFloat(s string, def float64) float64 { return utils.DecimalOr(s, def) }
