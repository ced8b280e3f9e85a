package services

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/kerbaras/nebulae/pkg/data"
	"github.com/kerbaras/nebulae/pkg/utils"
)

// Downloader fetches selected image candidates and persists them as JPEG
// files. Archive downloads carry no deadline; a slow mirror simply blocks.
type Downloader struct {
	client *http.Client
	dir    string
}

func NewDownloader(dir string) *Downloader {
	return &Downloader{client: http.DefaultClient, dir: dir}
}

// Filename derives the deterministic output name for a candidate: the
// sanitized title plus the date portion of its creation timestamp.
func Filename(cand data.ImageCandidate) string {
	date := "unknown_date"
	if idx := strings.Index(cand.DateCreated, "T"); idx > 0 {
		date = cand.DateCreated[:idx]
	}
	return fmt.Sprintf("%s_%s.jpg", utils.SanitizeFilename(cand.Title), date)
}

// Download fetches one candidate, decodes it and re-encodes it as JPEG so
// the saved file matches its extension regardless of the archive's source
// format. Returns the written filename.
func (d *Downloader) Download(cand data.ImageCandidate) (string, error) {
	if cand.URL == "" {
		return "", fmt.Errorf("candidate %q has no image URL", cand.Title)
	}

	resp, err := d.client.Get(cand.URL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status: %s", resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image content: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	name := Filename(cand)
	path := filepath.Join(d.dir, name)
	if err := d.save(path, img); err != nil {
		return "", err
	}
	return name, nil
}

func (d *Downloader) save(path string, img image.Image) error {
	rgba := image.NewRGBA(img.Bounds())
	draw.Copy(rgba, img.Bounds().Min, img, img.Bounds(), draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, rgba, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
