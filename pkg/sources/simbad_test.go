package sources

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/morikuni/failure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simbadServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync", r.URL.Path)
		assert.Equal(t, "doQuery", r.URL.Query().Get("request"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestSimbad_Lookup(t *testing.T) {
	body := `{
		"metadata": [{"name": "ra"}, {"name": "dec"}, {"name": "dist"}, {"name": "unit"}],
		"data": [[269.6392, 66.63306, 1001.0, "pc"]]
	}`
	srv := simbadServer(t, http.StatusOK, body)
	defer srv.Close()

	rec, err := NewSimbad(srv.URL).Lookup("NGC 6543")
	require.NoError(t, err)
	assert.Equal(t, "17 58 33.4", rec.RA)
	assert.Equal(t, "+66 37 59", rec.Dec)
	require.NotNil(t, rec.DistPC)
	assert.InDelta(t, 1001.0, *rec.DistPC, 1e-9)
	// light-year derivation happens in the astrometry service
	assert.Nil(t, rec.DistLY)
}

func TestSimbad_Lookup_KiloparsecUnit(t *testing.T) {
	body := `{"metadata": [], "data": [[269.6392, 66.63306, 1.001, "kpc"]]}`
	srv := simbadServer(t, http.StatusOK, body)
	defer srv.Close()

	rec, err := NewSimbad(srv.URL).Lookup("NGC 6543")
	require.NoError(t, err)
	assert.InDelta(t, 1001.0, *rec.DistPC, 1e-9)
}

func TestSimbad_Lookup_NullDistance(t *testing.T) {
	body := `{"metadata": [], "data": [[112.295, 20.91167, null, null]]}`
	srv := simbadServer(t, http.StatusOK, body)
	defer srv.Close()

	rec, err := NewSimbad(srv.URL).Lookup("NGC 2392")
	require.NoError(t, err)
	assert.Equal(t, "07 29 10.8", rec.RA)
	assert.Equal(t, "+20 54 42", rec.Dec)
	assert.Nil(t, rec.DistPC)
}

func TestSimbad_Lookup_NoRows(t *testing.T) {
	srv := simbadServer(t, http.StatusOK, `{"metadata": [], "data": []}`)
	defer srv.Close()

	_, err := NewSimbad(srv.URL).Lookup("Not An Object")
	assert.True(t, failure.Is(err, ErrNoData))
}

func TestSimbad_Lookup_ServerError(t *testing.T) {
	srv := simbadServer(t, http.StatusInternalServerError, "boom")
	defer srv.Close()

	_, err := NewSimbad(srv.URL).Lookup("NGC 6543")
	assert.True(t, failure.Is(err, ErrTransport))
}

func TestSimbad_Lookup_MalformedBody(t *testing.T) {
	srv := simbadServer(t, http.StatusOK, "not json at all")
	defer srv.Close()

	_, err := NewSimbad(srv.URL).Lookup("NGC 6543")
	assert.True(t, failure.Is(err, ErrMalformed))
}

func TestSimbad_Lookup_MissingCoordinates(t *testing.T) {
	srv := simbadServer(t, http.StatusOK, `{"metadata": [], "data": [[null, null, null, null]]}`)
	defer srv.Close()

	_, err := NewSimbad(srv.URL).Lookup("NGC 6543")
	assert.True(t, failure.Is(err, ErrMalformed))
}

func TestSexagesimalConversion(t *testing.T) {
	assert.Equal(t, "18 53 35.1", raToSexagesimal(283.39625))
	assert.Equal(t, "+33 01 45", decToSexagesimal(33.029167))
	assert.Equal(t, "-11 21 48", decToSexagesimal(-11.363333))
}
