// Package httpapi exposes flscape.Characterize over HTTP, de-duplicating
// concurrent identical requests with singleflight and reporting Prometheus
// metrics for every call.
package httpapi

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/flscape/flscape"
	"github.com/flscape/flscape/internal/metrics"
)

// Handler serves POST /v1/characterize.
type Handler struct {
	group   singleflight.Group
	metrics *metrics.Metrics
}

// NewHandler builds a Handler reporting to m.
func NewHandler(m *metrics.Metrics) *Handler {
	return &Handler{metrics: m}
}

// requestBody mirrors flscape.Input's JSON shape.
type requestBody struct {
	Positions  [][]float64   `json:"positions"`
	Values     []float64     `json:"values"`
	Population [][][]float64 `json:"population,omitempty"`
	PopValues  [][]float64   `json:"popValues,omitempty"`
	PopSizes   []int         `json:"popSizes,omitempty"`
	Dims       int           `json:"dims"`
	Seed       int64         `json:"seed"`
}

// responseBody is the JSON document returned on success.
type responseBody struct {
	Result []float64 `json:"result"`
	Length int       `json:"length"`
}

const route = "characterize"

// ServeHTTP decodes the request body, characterizes the resulting trace,
// and writes the flattened vector as JSON. Identical concurrent request
// bodies are coalesced into a single Characterize call via singleflight.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		h.fail(w, route, http.StatusMethodNotAllowed, "method_not_allowed", "only POST is supported")
		return
	}

	raw, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		h.fail(w, route, http.StatusBadRequest, "read_body", err.Error())
		return
	}

	var body requestBody
	if err := json.Unmarshal(raw, &body); err != nil {
		h.fail(w, route, http.StatusBadRequest, "decode_json", err.Error())
		return
	}

	in := flscape.Input{
		Positions:  body.Positions,
		Values:     body.Values,
		Population: body.Population,
		PopValues:  body.PopValues,
		PopSizes:   body.PopSizes,
		Dims:       body.Dims,
		Seed:       body.Seed,
	}

	sum := sha256.Sum256(raw)
	key := hex.EncodeToString(sum[:])

	characterizeStart := time.Now()
	v, err, shared := h.group.Do(key, func() (interface{}, error) {
		return flscape.Characterize(in)
	})
	h.metrics.RecordDedup(shared)

	if err != nil {
		status, errType := classifyErr(err)
		h.fail(w, route, status, errType, err.Error())
		return
	}

	result := v.(flscape.Result)
	flat := result.Flatten()
	h.metrics.RecordCharacterize(time.Since(characterizeStart), len(flat))

	writeJSON(w, http.StatusOK, responseBody{Result: flat, Length: len(flat)})
	h.metrics.RecordRequest(route, "200", time.Since(start))
}

// classifyErr maps a Characterize error to an HTTP status and metric label.
// ErrSampleTooSmall and ErrEmptyPopulation never reach here — Characterize
// recovers from both internally — so anything arriving is either an error in
// the input itself (an unevaluated point, or points of differing dimension
// found while the measures run) or an unexpected internal failure.
func classifyErr(err error) (status int, errType string) {
	switch {
	case errors.Is(err, flscape.ErrNotEvaluated):
		return http.StatusBadRequest, "not_evaluated"
	case errors.Is(err, flscape.ErrDimensionMismatch):
		return http.StatusBadRequest, "dimension_mismatch"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (h *Handler) fail(w http.ResponseWriter, route string, status int, errType, msg string) {
	h.metrics.RecordError(route, errType)
	h.metrics.RecordRequest(route, http.StatusText(status), 0)
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
