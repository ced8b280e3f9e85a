package services

import (
	"github.com/kerbaras/nebulae/pkg/catalog"
	"github.com/kerbaras/nebulae/pkg/data"
	"github.com/kerbaras/nebulae/pkg/log"
	"github.com/kerbaras/nebulae/pkg/sources"
)

// AstrometryService resolves coordinates and distance for a designation,
// falling back to the curated static table when the remote lookup fails.
type AstrometryService struct {
	source sources.AstrometrySource
}

func NewAstrometryService(source sources.AstrometrySource) *AstrometryService {
	return &AstrometryService{source: source}
}

// Lookup issues a single remote query; there are no retries. A nil return
// means neither the service nor the fallback table had data, and the report
// must say so explicitly.
func (s *AstrometryService) Lookup(id string) *data.AstroRecord {
	rec, err := s.source.Lookup(id)
	if err != nil {
		log.Warn("astrometry lookup failed", "id", id, "error", err)
		if fb := catalog.FallbackAstro(id); fb != nil {
			log.Info("using curated astrometric values", "id", id)
			return fb
		}
		return nil
	}
	if rec.DistPC != nil {
		ly := *rec.DistPC * data.LightYearsPerParsec
		rec.DistLY = &ly
	}
	return rec
}
