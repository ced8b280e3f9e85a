package sources

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/morikuni/failure/v2"

	"github.com/kerbaras/nebulae/pkg/data"
)

const DefaultSimbadURL = "https://simbad.cds.unistra.fr/simbad/sim-tap"

// simbadTimeout is the only deadline the program enforces on catalog
// queries; image archive calls run without one.
const simbadTimeout = 10 * time.Second

// Simbad queries the SIMBAD TAP service for coordinates and distance.
type Simbad struct {
	api *API
}

func NewSimbad(baseURL string) *Simbad {
	if baseURL == "" {
		baseURL = DefaultSimbadURL
	}
	return &Simbad{api: NewAPI(baseURL, simbadTimeout)}
}

// tapResponse is the TAP sync JSON layout: column metadata plus rows of
// heterogeneous values.
type tapResponse struct {
	Metadata []struct {
		Name string `json:"name"`
	} `json:"metadata"`
	Data [][]any `json:"data"`
}

// Lookup issues a single ADQL query joining the identifier, base and
// distance tables. Coordinates come back in degrees and are converted to
// the sexagesimal strings the rest of the program works with.
func (s *Simbad) Lookup(id string) (*data.AstroRecord, error) {
	adql := fmt.Sprintf(
		"SELECT b.ra, b.dec, d.dist, d.unit FROM ident i JOIN basic b ON b.oid = i.oidref LEFT JOIN mesdist d ON d.oidref = b.oid WHERE i.id = '%s'",
		strings.ReplaceAll(id, "'", "''"),
	)
	params := url.Values{
		"request": {"doQuery"},
		"lang":    {"adql"},
		"format":  {"json"},
		"query":   {adql},
	}

	var res tapResponse
	if err := s.api.Get("/sync", params, &res); err != nil {
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, failure.New(ErrNoData,
			failure.Message("object not found"),
			failure.Context{"id": id},
		)
	}

	row := res.Data[0]
	if len(row) < 4 {
		return nil, failure.New(ErrMalformed,
			failure.Message("row too short"),
			failure.Context{"id": id},
		)
	}
	ra, raOK := row[0].(float64)
	dec, decOK := row[1].(float64)
	if !raOK || !decOK {
		return nil, failure.New(ErrMalformed,
			failure.Message("missing coordinate fields"),
			failure.Context{"id": id},
		)
	}

	rec := &data.AstroRecord{
		RA:  raToSexagesimal(ra),
		Dec: decToSexagesimal(dec),
	}
	if dist, ok := row[2].(float64); ok {
		unit, _ := row[3].(string)
		pc := distanceInParsecs(dist, unit)
		rec.DistPC = &pc
	}
	return rec, nil
}

func distanceInParsecs(dist float64, unit string) float64 {
	switch strings.TrimSpace(strings.ToLower(unit)) {
	case "kpc":
		return dist * 1e3
	case "mpc":
		return dist * 1e6
	default:
		return dist
	}
}

// raToSexagesimal renders a right ascension in degrees as "HH MM SS.s".
func raToSexagesimal(deg float64) string {
	hours := deg / 15
	h := int(hours)
	min := (hours - float64(h)) * 60
	m := int(min)
	sec := (min - float64(m)) * 60
	return fmt.Sprintf("%02d %02d %04.1f", h, m, sec)
}

// decToSexagesimal renders a declination in degrees as "+DD MM SS".
func decToSexagesimal(deg float64) string {
	sign := "+"
	if deg < 0 {
		sign = "-"
		deg = -deg
	}
	d := int(deg)
	min := (deg - float64(d)) * 60
	m := int(min)
	sec := (min - float64(m)) * 60
	return fmt.Sprintf("%s%02d %02d %02.0f", sign, d, m, sec)
}
