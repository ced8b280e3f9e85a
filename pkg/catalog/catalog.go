// Package catalog holds the static lookup data the pipeline falls back on:
// the numbered menu of well-known planetary nebulae, the common-name to
// designation mapping, curated astrometric values for a handful of objects,
// and the generic emission-line composition list.
package catalog

import "github.com/kerbaras/nebulae/pkg/data"

// Menu is the numbered catalog presented by the CLI, in display order.
var Menu = []string{
	"Helix Nebula",
	"Cat's Eye Nebula",
	"Ring Nebula",
	"Dumbbell Nebula",
	"Eskimo Nebula",
	"Saturn Nebula",
	"NGC 7027",
	"NGC 6543",
	"IC 418",
	"NGC 3242",
}

// designations maps common names to the NGC designations the external
// services index by. Names not present here are queried as typed.
var designations = map[string]string{
	"Cat's Eye Nebula": "NGC 6543",
	"Ring Nebula":      "NGC 6720",
	"Eskimo Nebula":    "NGC 2392",
	"Helix Nebula":     "NGC 7293",
	"Dumbbell Nebula":  "NGC 6853",
	"Saturn Nebula":    "NGC 7009",
}

// fallbackAstro carries curated coordinates and distances for objects whose
// remote lookup is allowed to fail without losing the report section.
var fallbackAstro = map[string]data.AstroRecord{
	"NGC 6543": {RA: "17 58 33.4", Dec: "+66 37 59", DistPC: pc(1001), DistLY: pc(3266.5)},
	"NGC 6720": {RA: "18 53 35.1", Dec: "+33 01 45", DistPC: pc(720), DistLY: pc(2350.3)},
	"NGC 2392": {RA: "07 29 10.8", Dec: "+20 54 42", DistPC: pc(870), DistLY: pc(2837.6)},
}

// genericComposition is the fixed line list reported when no abundance
// column can be found in the catalog service.
var genericComposition = []data.SpectralLine{
	{Species: "Hydrogen (Hα)", Wavelength: "656.3 nm", Tint: "red"},
	{Species: "Doubly ionized oxygen [O III]", Wavelength: "495.9 nm and 500.7 nm", Tint: "bright green"},
	{Species: "Helium II", Wavelength: "468.6 nm", Tint: "bluish"},
	{Species: "Ionized nitrogen [N II]", Wavelength: "658.4 nm", Tint: "orange-red"},
}

func pc(v float64) *float64 { return &v }

// Resolve maps a common name to its catalog designation. Unknown names are
// returned unchanged; the mapping is pure and total.
func Resolve(name string) string {
	if id, ok := designations[name]; ok {
		return id
	}
	return name
}

// FallbackAstro returns a copy of the curated record for the given
// designation, or nil when none exists.
func FallbackAstro(id string) *data.AstroRecord {
	rec, ok := fallbackAstro[id]
	if !ok {
		return nil
	}
	out := rec
	if rec.DistPC != nil {
		v := *rec.DistPC
		out.DistPC = &v
	}
	if rec.DistLY != nil {
		v := *rec.DistLY
		out.DistLY = &v
	}
	return &out
}

// GenericComposition returns a copy of the fixed generic line list.
func GenericComposition() []data.SpectralLine {
	out := make([]data.SpectralLine, len(genericComposition))
	copy(out, genericComposition)
	return out
}
