package sources

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/morikuni/failure/v2"
)

const DefaultVizierURL = "https://vizier.cds.unistra.fr"

// abundanceMarkers are the column-name substrings treated as oxygen
// abundance columns. The match is case-sensitive and the first hit wins;
// there is no ranking or unit validation.
var abundanceMarkers = []string{"logOH", "O_H"}

// Vizier queries the VizieR tabular catalog service.
type Vizier struct {
	api      *API
	rowLimit int
}

func NewVizier(baseURL string) *Vizier {
	if baseURL == "" {
		baseURL = DefaultVizierURL
	}
	return &Vizier{api: NewAPI(baseURL, simbadTimeout), rowLimit: 50}
}

// vizierResponse is the tabular JSON layout: zero or more tables, each with
// named columns and rows of heterogeneous values.
type vizierResponse struct {
	Tables []struct {
		Name    string   `json:"name"`
		Columns []string `json:"columns"`
		Data    [][]any  `json:"data"`
	} `json:"tables"`
}

// QueryAbundance runs an object query and scans every returned table for a
// column whose name contains an abundance marker, returning the first
// matching cell of the first row.
func (v *Vizier) QueryAbundance(id string) (string, error) {
	params := url.Values{
		"-c":       {id},
		"-out.max": {strconv.Itoa(v.rowLimit)},
	}

	var res vizierResponse
	if err := v.api.Get("/viz-bin/tabular", params, &res); err != nil {
		return "", err
	}

	for _, table := range res.Tables {
		for col, name := range table.Columns {
			if !matchesAbundanceMarker(name) {
				continue
			}
			if len(table.Data) == 0 || col >= len(table.Data[0]) {
				continue
			}
			cell := table.Data[0][col]
			if cell == nil {
				continue
			}
			return formatCell(cell), nil
		}
	}
	return "", failure.New(ErrNoData,
		failure.Message("no abundance column found"),
		failure.Context{"id": id},
	)
}

func matchesAbundanceMarker(column string) bool {
	for _, marker := range abundanceMarkers {
		if strings.Contains(column, marker) {
			return true
		}
	}
	return false
}

func formatCell(cell any) string {
	if f, ok := cell.(float64); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", cell)
}
