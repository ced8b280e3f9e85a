// Package report renders the final text artifact of a run: astrometric
// data, downloaded image names, a suggested caption and the composition
// estimate, in a fixed section order.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kerbaras/nebulae/pkg/data"
	"github.com/kerbaras/nebulae/pkg/utils"
)

// Writer composes and writes one report file per run. Now is overridable
// for tests and defaults to time.Now.
type Writer struct {
	Dir string
	Now func() time.Time
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, Now: time.Now}
}

// Write renders the report and persists it as <sanitized name>_info.txt,
// overwriting any previous run. Returns the written path; filesystem errors
// are fatal to this step only.
func (w *Writer) Write(neb data.Nebula, astro *data.AstroRecord, images []string, comp data.Composition, cond *data.Conditions) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Nebula: %s\n", neb.Name)
	if astro != nil {
		fmt.Fprintf(&b, "Coordinates: RA = %s, DEC = %s\n", astro.RA, astro.Dec)
		if astro.HasDistance() {
			fmt.Fprintf(&b, "Estimated distance: %.1f light-years (%.0f pc)\n", *astro.DistLY, *astro.DistPC)
		}
	} else {
		b.WriteString("Astronomical data unavailable.\n")
	}

	now := w.Now
	if now == nil {
		now = time.Now
	}
	fmt.Fprintf(&b, "Date: %s\n", now().Format("2006-01-02 15:04:05"))

	b.WriteString("\nDownloaded images:\n")
	for _, img := range images {
		fmt.Fprintf(&b, "- %s\n", img)
	}

	b.WriteString("\nSuggested caption:\n")
	b.WriteString(caption(neb, astro))

	b.WriteString("\nEstimated chemical composition:\n")
	if comp.FromCatalog() {
		fmt.Fprintf(&b, "- %s (from catalog survey data)\n", comp.Derived)
	} else {
		for _, line := range comp.Generic {
			fmt.Fprintf(&b, "- %s (line at %s) - tint: %s\n", line.Species, line.Wavelength, line.Tint)
		}
	}

	if cond != nil {
		b.WriteString("\nPhysical conditions (illustrative):\n")
		writeConditionLine(&b, "Te[O III]", cond.TempOIII, "K")
		writeConditionLine(&b, "Te[N II]", cond.TempNII, "K")
		writeConditionLine(&b, "Ne[S II]", cond.Density, "cm^-3")
	}

	path := filepath.Join(w.Dir, utils.SanitizeFilename(neb.Name)+"_info.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

func caption(neb data.Nebula, astro *data.AstroRecord) string {
	if astro.HasDistance() {
		return fmt.Sprintf(
			"Image of the %s, located approximately %.0f light-years from Earth. RA: %s | DEC: %s. Credit: NASA.\n",
			neb.Name, *astro.DistLY, astro.RA, astro.Dec,
		)
	}
	return fmt.Sprintf("Image of the %s. Incomplete data. Credit: NASA.\n", neb.Name)
}

func writeConditionLine(b *strings.Builder, label string, value float64, unit string) {
	if value <= 0 {
		fmt.Fprintf(b, "- %s = unavailable\n", label)
		return
	}
	fmt.Fprintf(b, "- %s = %.0f %s\n", label, value, unit)
}
