// Package httpapi exposes the curve library and sampler as JSON over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xtding233/curvekit/internal/library"
	"github.com/xtding233/curvekit/internal/sampler"
	"github.com/xtding233/curvekit/internal/scan"
	"github.com/xtding233/curvekit/internal/verify"
)

// MaxSamples caps one /sample or /summary request.
const MaxSamples = 1_000_000

type curveInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	From        float64 `json:"from"`
	To          float64 `json:"to"`
	Step        float64 `json:"step"`
}

type evalResp struct {
	Curve string  `json:"curve"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type scanResp struct {
	Curve  string       `json:"curve"`
	Points []scan.Point `json:"points"`
}

type sampleResp struct {
	Samples []float64 `json:"samples"`
}

type summaryResp struct {
	Summary   verify.DistributionSummary `json:"summary"`
	Histogram *verify.Histogram          `json:"histogram,omitempty"`
}

type errResp struct {
	Err string `json:"err"`
}

// Handler serves the HTTP API.
type Handler struct {
	curves *library.Holder
	newRNG func() sampler.RandomSource
}

// NewHandler creates the handler. A nil newRNG uses the crypto source.
func NewHandler(curves *library.Holder, newRNG func() sampler.RandomSource) *Handler {
	if newRNG == nil {
		newRNG = sampler.DefaultRNG
	}
	return &Handler{curves: curves, newRNG: newRNG}
}

// Router builds the chi routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/curves", h.ListCurves)
	r.Route("/curves/{name}", func(r chi.Router) {
		r.Get("/", h.Eval)
		r.Get("/scan", h.Scan)
	})
	r.Get("/sample", h.Sample)
	r.Get("/summary", h.Summary)
	return r
}

func parseFloat(r *http.Request, key string) (float64, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func parseInt(r *http.Request, key string) (int, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

// writeJSON encodes before writing the status so an unencodable value
// becomes a 500 instead of a 200 with an empty body.
func writeJSON(w http.ResponseWriter, code int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("encode response: %v", err)
		code = http.StatusInternalServerError
		b, _ = json.Marshal(errResp{Err: "encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(append(b, '\n'))
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errResp{Err: msg})
}

func (h *Handler) ListCurves(w http.ResponseWriter, r *http.Request) {
	lib := h.curves.Load()
	out := make([]curveInfo, 0, len(lib.Names()))
	for _, name := range lib.Names() {
		c, _ := lib.Get(name)
		out = append(out, curveInfo{c.Name, c.Description, c.Range.From, c.Range.To, c.Range.Step})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) curve(w http.ResponseWriter, r *http.Request) (library.Curve, bool) {
	name := chi.URLParam(r, "name")
	c, ok := h.curves.Load().Get(name)
	if !ok {
		writeErr(w, http.StatusNotFound, "unknown curve "+strconv.Quote(name))
	}
	return c, ok
}

// Eval: GET /curves/{name}?x=
func (h *Handler) Eval(w http.ResponseWriter, r *http.Request) {
	c, ok := h.curve(w, r)
	if !ok {
		return
	}
	x, ok, msg := parseFloat(r, "x")
	if msg != "" {
		writeErr(w, http.StatusBadRequest, msg)
		return
	}
	if !ok {
		writeErr(w, http.StatusBadRequest, "missing param x")
		return
	}
	y, err := c.Map(x)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, evalResp{Curve: c.Name, X: x, Y: y})
}

// Scan: GET /curves/{name}/scan?from&to&step, defaulting to the design range.
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	c, ok := h.curve(w, r)
	if !ok {
		return
	}
	bounds := []*float64{&c.Range.From, &c.Range.To, &c.Range.Step}
	for i, key := range []string{"from", "to", "step"} {
		v, has, msg := parseFloat(r, key)
		if msg != "" {
			writeErr(w, http.StatusBadRequest, msg)
			return
		}
		if has {
			*bounds[i] = v
		}
	}
	pts, err := scan.CurveRange(r.Context(), c, c.Range.From, c.Range.To, c.Range.Step)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scanResp{Curve: c.Name, Points: pts})
}

// sampleParams reads mean, std and n; it writes the error response itself.
func sampleParams(w http.ResponseWriter, r *http.Request) (mean, std float64, n int, ok bool) {
	mean, hasMean, msg := parseFloat(r, "mean")
	if msg != "" || !hasMean {
		writeErr(w, http.StatusBadRequest, "missing/invalid param mean")
		return 0, 0, 0, false
	}
	std, hasStd, msg := parseFloat(r, "std")
	if msg != "" || !hasStd {
		writeErr(w, http.StatusBadRequest, "missing/invalid param std")
		return 0, 0, 0, false
	}
	n, hasN, msg := parseInt(r, "n")
	if msg != "" || !hasN || n <= 0 || n > MaxSamples {
		writeErr(w, http.StatusBadRequest, "missing/invalid param n")
		return 0, 0, 0, false
	}
	return mean, std, n, true
}

// Sample: GET /sample?mean&std&n
func (h *Handler) Sample(w http.ResponseWriter, r *http.Request) {
	mean, std, n, ok := sampleParams(w, r)
	if !ok {
		return
	}
	set, err := sampler.Generate(r.Context(), n, mean, std, h.newRNG())
	if err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sampleResp{Samples: set})
}

// Summary: GET /summary?mean&std&n[&hist_min&hist_max]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	mean, std, n, ok := sampleParams(w, r)
	if !ok {
		return
	}
	histMin, hasMin, msg := parseInt(r, "hist_min")
	if msg != "" {
		writeErr(w, http.StatusBadRequest, msg)
		return
	}
	histMax, hasMax, msg := parseInt(r, "hist_max")
	if msg != "" {
		writeErr(w, http.StatusBadRequest, msg)
		return
	}

	set, err := sampler.Generate(r.Context(), n, mean, std, h.newRNG())
	if err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	resp := summaryResp{Summary: verify.Summarize(set, mean, std)}
	if hasMin && hasMax {
		hist, err := verify.Bucket(set, histMin, histMax)
		if err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.Histogram = &hist
	}
	writeJSON(w, http.StatusOK, resp)
}

func statusFor(err error) int {
	if errors.Is(err, sampler.ErrInvalidMean) || errors.Is(err, sampler.ErrInvalidStdDev) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
