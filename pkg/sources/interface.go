package sources

import "github.com/kerbaras/nebulae/pkg/data"

// AstrometrySource resolves a catalog designation to coordinates and an
// optional distance. Failures carry one of the package error codes.
type AstrometrySource interface {
	Lookup(id string) (*data.AstroRecord, error)
}

// AbundanceSource scans a tabular catalog service for an oxygen-abundance
// value and returns the first matching cell, unformatted.
type AbundanceSource interface {
	QueryAbundance(id string) (string, error)
}

// ImageArchive searches an image archive by free text.
type ImageArchive interface {
	Search(query string, max int) ([]data.ImageCandidate, error)
}
