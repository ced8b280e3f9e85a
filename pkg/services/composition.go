package services

import (
	"fmt"

	"github.com/morikuni/failure/v2"

	"github.com/kerbaras/nebulae/pkg/catalog"
	"github.com/kerbaras/nebulae/pkg/data"
	"github.com/kerbaras/nebulae/pkg/log"
	"github.com/kerbaras/nebulae/pkg/sources"
)

// CompositionService estimates the chemical composition of an object from
// catalog abundance columns, substituting the generic line list when the
// scan comes up empty.
type CompositionService struct {
	source sources.AbundanceSource
}

func NewCompositionService(source sources.AbundanceSource) *CompositionService {
	return &CompositionService{source: source}
}

func (s *CompositionService) Estimate(id string) data.Composition {
	value, err := s.source.QueryAbundance(id)
	if err != nil {
		if failure.Is(err, sources.ErrNoData) {
			log.Info("no abundance column in catalog tables", "id", id)
		} else {
			log.Warn("abundance query failed", "id", id, "error", err)
		}
		return data.Composition{Generic: catalog.GenericComposition()}
	}
	return data.Composition{Derived: fmt.Sprintf("log(O/H) ≈ %s", value)}
}
