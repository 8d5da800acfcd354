package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordGenerate(t *testing.T) {
	r := NewRegistry()

	r.RecordGenerate(SurfaceCLI, true, time.Microsecond)
	r.RecordGenerate(SurfaceCLI, true, time.Microsecond)
	r.RecordGenerate(SurfaceHTTP, true, time.Microsecond)
	r.RecordGenerate(SurfaceNATS, false, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.generated.WithLabelValues(SurfaceCLI)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.generated.WithLabelValues(SurfaceHTTP)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.entropyFailures.WithLabelValues(SurfaceNATS)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.generated.WithLabelValues(SurfaceNATS)))
}

func TestRecordParse(t *testing.T) {
	r := NewRegistry()
	r.RecordParse(SurfaceHTTP, true)
	r.RecordParse(SurfaceHTTP, false)
	r.RecordParse(SurfaceHTTP, false)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.parsed.WithLabelValues(SurfaceHTTP, "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.parsed.WithLabelValues(SurfaceHTTP, "invalid")))
}

func TestNilRegistryIsNoop(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.RecordGenerate(SurfaceCLI, true, time.Second)
		r.RecordParse(SurfaceCLI, false)
	})
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.RecordGenerate(SurfaceHTTP, true, time.Microsecond)

	rr := httptest.NewRecorder()
	r.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "# HELP uuidgen_generated_total")
	assert.Contains(t, rr.Body.String(), `uuidgen_generated_total{surface="http"} 1`)
}

func TestDefaultAndEnabled(t *testing.T) {
	r := Default()
	require.NotNil(t, r)
	assert.Same(t, r, Default())
	assert.True(t, Enabled())
	assert.NotPanics(t, Init)
}
