package data

// LightYearsPerParsec converts parsec distances to light-years.
const LightYearsPerParsec = 3.26156

// Nebula pairs the name the user asked for with the canonical catalog
// designation used to query the external services.
type Nebula struct {
	Name       string
	Identifier string
}

// AstroRecord holds coordinates and distance for one object. RA and Dec are
// sexagesimal strings. Distances are optional; DistLY is derived from DistPC.
type AstroRecord struct {
	RA     string
	Dec    string
	DistPC *float64
	DistLY *float64
}

// HasDistance reports whether the record carries a usable distance.
func (r *AstroRecord) HasDistance() bool {
	return r != nil && r.DistPC != nil && r.DistLY != nil
}

// ImageCandidate is one image-archive search result, kept in API order.
type ImageCandidate struct {
	Title       string
	Description string
	DateCreated string
	URL         string
}

// SpectralLine is one entry of the generic composition list.
type SpectralLine struct {
	Species    string
	Wavelength string
	Tint       string
}

// Composition is either a single derived abundance string from the catalog
// service or, when that lookup yields nothing, the fixed generic line list.
type Composition struct {
	Derived string
	Generic []SpectralLine
}

// FromCatalog reports whether the estimate came from a real catalog column.
func (c Composition) FromCatalog() bool {
	return c.Derived != ""
}

// Conditions holds line-ratio diagnostic results. A zero value means the
// corresponding diagnostic could not be computed.
type Conditions struct {
	TempOIII float64 // K, from the [O III] ratio
	TempNII  float64 // K, from the [N II] ratio
	Density  float64 // cm^-3, from the [S II] ratio
}
