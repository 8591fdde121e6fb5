package httpapi

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/curvekit/internal/library"
	"github.com/xtding233/curvekit/internal/sampler"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := NewHandler(library.NewHolder(library.MustDefault()), func() sampler.RandomSource {
		return sampler.NewSeededRNG(7)
	})
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, srv *httptest.Server, path string, out any) int {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestListCurves(t *testing.T) {
	srv := newServer(t)
	var out []curveInfo
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/curves", &out))
	require.Len(t, out, len(library.MustDefault().Names()))
	assert.Equal(t, library.AcademicToSAT, out[0].Name)
}

func TestEval(t *testing.T) {
	srv := newServer(t)
	var out evalResp
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/curves/population_size?x=50", &out))
	assert.InDelta(t, 718.75, out.Y, 1e-9)

	var e errResp
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/curves/population_size", &e))
	assert.Equal(t, "missing param x", e.Err)
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/curves/population_size?x=abc", &e))
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv, "/curves/nope?x=1", &e))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/curves/target_tuition?x=-10", &e))
	assert.Contains(t, e.Err, "target_tuition")
}

func TestEvalOverflowIsBadRequest(t *testing.T) {
	srv := newServer(t)
	var e errResp
	require.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/curves/population_size?x=1e300", &e))
	assert.Contains(t, e.Err, "population_size")
	assert.Contains(t, e.Err, "result overflows")
}

func TestWriteJSONUnencodable(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, evalResp{Curve: "c", Y: math.Inf(1)})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var e errResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
	assert.Equal(t, "encode response", e.Err)
}

func TestScan(t *testing.T) {
	srv := newServer(t)
	var out scanResp
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/curves/academic_to_sat/scan?from=60&to=150&step=45", &out))
	require.Len(t, out.Points, 3)
	assert.InDelta(t, 800, out.Points[0].Y, 1e-9)
	assert.InDelta(t, 1600, out.Points[2].Y, 1e-9)

	require.Equal(t, http.StatusOK, getJSON(t, srv, "/curves/population_size/scan", &out))
	assert.Len(t, out.Points, 101)

	var e errResp
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/curves/population_size/scan?from=10&to=0", &e))
}

func TestSample(t *testing.T) {
	srv := newServer(t)
	var out sampleResp
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/sample?mean=50&std=25&n=10", &out))
	assert.Len(t, out.Samples, 10)

	var again sampleResp
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/sample?mean=50&std=25&n=10", &again))
	assert.Equal(t, out.Samples, again.Samples)

	var e errResp
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/sample?mean=50&std=-1&n=10", &e))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/sample?mean=50&std=1&n=0", &e))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/sample?std=1&n=5", &e))
}

func TestSummary(t *testing.T) {
	srv := newServer(t)
	var out summaryResp
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/summary?mean=50&std=25&n=20000&hist_min=0&hist_max=100", &out))
	assert.Equal(t, 20000, out.Summary.Count)
	assert.InDelta(t, 50, out.Summary.Mean, 1.5)
	require.NotNil(t, out.Histogram)
	assert.Len(t, out.Histogram.Counts, 101)
	assert.InDelta(t, 20000, out.Histogram.Total()+float64(out.Histogram.Outside), 1e-9)

	var e errResp
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/summary?mean=0&std=1&n=10&hist_min=0&hist_max=2000000000", &e))
	assert.Contains(t, e.Err, "invalid histogram range")
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/summary?mean=0&std=1&n=10&hist_min=-9223372036854775808&hist_max=9223372036854775807", &e))

	var bare summaryResp
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/summary?mean=0&std=1&n=100", &bare))
	assert.Nil(t, bare.Histogram)
}
