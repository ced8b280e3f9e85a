package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/nebulae/pkg/catalog"
	"github.com/kerbaras/nebulae/pkg/data"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
}

func writeReport(t *testing.T, astro *data.AstroRecord, images []string, comp data.Composition, cond *data.Conditions) string {
	t.Helper()
	dir := t.TempDir()
	w := &Writer{Dir: dir, Now: fixedNow}

	path, err := w.Write(data.Nebula{Name: "Ring Nebula", Identifier: "NGC 6720"}, astro, images, comp, cond)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Ring_Nebula_info.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestWriter_FullReport(t *testing.T) {
	pc, ly := 720.0, 2350.3
	astro := &data.AstroRecord{RA: "18 53 35.1", Dec: "+33 01 45", DistPC: &pc, DistLY: &ly}

	text := writeReport(t, astro, []string{"Ring_One_1999-05-09.jpg"},
		data.Composition{Derived: "log(O/H) ≈ 8.52"}, nil)

	assert.Contains(t, text, "Nebula: Ring Nebula\n")
	assert.Contains(t, text, "Coordinates: RA = 18 53 35.1, DEC = +33 01 45\n")
	assert.Contains(t, text, "Estimated distance: 2350.3 light-years (720 pc)\n")
	assert.Contains(t, text, "Date: 2024-03-15 10:30:00\n")
	assert.Contains(t, text, "- Ring_One_1999-05-09.jpg\n")
	assert.Contains(t, text, "located approximately 2350 light-years from Earth")
	assert.Contains(t, text, "- log(O/H) ≈ 8.52 (from catalog survey data)\n")
	assert.NotContains(t, text, "Physical conditions")
}

func TestWriter_UnavailableAstrometry(t *testing.T) {
	text := writeReport(t, nil, nil, data.Composition{Generic: catalog.GenericComposition()}, nil)

	assert.Contains(t, text, "Astronomical data unavailable.\n")
	assert.Contains(t, text, "Downloaded images:\n")
	assert.Contains(t, text, "Image of the Ring Nebula. Incomplete data. Credit: NASA.\n")
	assert.Contains(t, text, "- Hydrogen (Hα) (line at 656.3 nm) - tint: red\n")
	assert.NotContains(t, text, "Coordinates:")
}

func TestWriter_NoDistanceCaption(t *testing.T) {
	astro := &data.AstroRecord{RA: "07 29 10.8", Dec: "+20 54 42"}
	text := writeReport(t, astro, nil, data.Composition{Generic: catalog.GenericComposition()}, nil)

	assert.Contains(t, text, "Coordinates: RA = 07 29 10.8, DEC = +20 54 42\n")
	assert.NotContains(t, text, "Estimated distance:")
	assert.Contains(t, text, "Image of the Ring Nebula. Incomplete data. Credit: NASA.\n")
}

func TestWriter_ConditionsSection(t *testing.T) {
	cond := &data.Conditions{TempOIII: 9913, TempNII: 9440, Density: 231}
	text := writeReport(t, nil, nil, data.Composition{Generic: catalog.GenericComposition()}, cond)

	assert.Contains(t, text, "Physical conditions (illustrative):\n")
	assert.Contains(t, text, "- Te[O III] = 9913 K\n")
	assert.Contains(t, text, "- Te[N II] = 9440 K\n")
	assert.Contains(t, text, "- Ne[S II] = 231 cm^-3\n")
}

func TestWriter_ConditionsUnavailableLine(t *testing.T) {
	cond := &data.Conditions{TempOIII: 9913}
	text := writeReport(t, nil, nil, data.Composition{Generic: catalog.GenericComposition()}, cond)

	assert.Contains(t, text, "- Te[O III] = 9913 K\n")
	assert.Contains(t, text, "- Te[N II] = unavailable\n")
	assert.Contains(t, text, "- Ne[S II] = unavailable\n")
}

func TestWriter_SectionOrder(t *testing.T) {
	text := writeReport(t, nil, []string{"a.jpg"}, data.Composition{Generic: catalog.GenericComposition()}, nil)

	order := []string{
		"Nebula:",
		"Astronomical data unavailable.",
		"Date:",
		"Downloaded images:",
		"Suggested caption:",
		"Estimated chemical composition:",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(text, marker)
		require.GreaterOrEqual(t, idx, 0, marker)
		assert.Greater(t, idx, last, marker)
		last = idx
	}
}

func TestWriter_WriteFailure(t *testing.T) {
	w := &Writer{Dir: filepath.Join(t.TempDir(), "missing", "nested"), Now: fixedNow}
	_, err := w.Write(data.Nebula{Name: "X"}, nil, nil, data.Composition{}, nil)
	assert.Error(t, err)
}
