package services

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/nebulae/pkg/data"
)

func testImagePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(40 * x), G: uint8(40 * y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFilename(t *testing.T) {
	cand := data.ImageCandidate{Title: "Ring Nebula (M57)?", DateCreated: "1999-05-09T00:00:00Z"}
	assert.Equal(t, "Ring_Nebula_(M57)__1999-05-09.jpg", Filename(cand))
}

func TestFilename_UnknownDate(t *testing.T) {
	cand := data.ImageCandidate{Title: "Helix", DateCreated: "unknown date"}
	assert.Equal(t, "Helix_unknown_date.jpg", Filename(cand))
}

func TestDownloader_Download(t *testing.T) {
	pngBytes := testImagePNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngBytes)
	}))
	defer srv.Close()

	dir := t.TempDir()
	d := NewDownloader(dir)

	name, err := d.Download(data.ImageCandidate{
		Title:       "Cat's Eye",
		DateCreated: "2002-01-01T12:00:00Z",
		URL:         srv.URL + "/img.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cat's_Eye_2002-01-01.jpg", name)

	// PNG input must come back out as a real JPEG file
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	_, err = jpeg.Decode(bytes.NewReader(content))
	assert.NoError(t, err)
}

func TestDownloader_Download_EmptyURL(t *testing.T) {
	d := NewDownloader(t.TempDir())
	_, err := d.Download(data.ImageCandidate{Title: "no link"})
	assert.Error(t, err)
}

func TestDownloader_Download_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	d := NewDownloader(t.TempDir())
	_, err := d.Download(data.ImageCandidate{Title: "gone", URL: srv.URL})
	assert.Error(t, err)
}

func TestDownloader_Download_NotAnImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not pixels</html>"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	d := NewDownloader(dir)
	_, err := d.Download(data.ImageCandidate{Title: "broken", URL: srv.URL})
	assert.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
