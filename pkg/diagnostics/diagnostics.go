// Package diagnostics computes illustrative nebular physical conditions
// from fixed emission-line fluxes: two electron temperatures from the
// [O III] and [N II] auroral-to-nebular ratios and an electron density from
// the [S II] doublet ratio. The inputs are demonstration constants, not
// observed data.
package diagnostics

import (
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/kerbaras/nebulae/pkg/data"
)

// Illustrative fluxes, normalized to Hβ = 1 scales typical of bright
// planetary nebulae.
const (
	fluxOIII5007 = 10.0
	fluxOIII4959 = 3.31
	fluxOIII4363 = 0.061

	fluxNII6583 = 3.05
	fluxNII6548 = 1.02
	fluxNII5755 = 0.035

	fluxSII6716 = 1.18
	fluxSII6731 = 1.0
)

// tempCurve inverts an emissivity-ratio relation R(Te) = scale*exp(coef/Te)
// by sampling it over a temperature grid and interpolating ratio -> Te.
type tempCurve struct {
	pl       interp.PiecewiseLinear
	min, max float64
	ok       bool
}

func newTempCurve(coef, scale float64) tempCurve {
	const (
		tLow  = 5000.0
		tHigh = 20000.0
		step  = 250.0
	)
	var xs, ys []float64
	// The ratio decreases with temperature, so walking the grid downward
	// yields the strictly increasing abscissa Fit requires.
	for t := tHigh; t >= tLow; t -= step {
		xs = append(xs, scale*math.Exp(coef/t))
		ys = append(ys, t)
	}
	c := tempCurve{min: xs[0], max: xs[len(xs)-1]}
	if err := c.pl.Fit(xs, ys); err != nil {
		return c
	}
	c.ok = true
	return c
}

func (c tempCurve) temperature(ratio float64) float64 {
	if !c.ok || math.IsNaN(ratio) || ratio <= 0 {
		return 0
	}
	return c.pl.Predict(clamp(ratio, c.min, c.max))
}

// sulphurRatio and sulphurLogDensity tabulate the [S II] 6716/6731 density
// diagnostic at Te = 10^4 K (Osterbrock-style curve). The ratio runs from
// the high-density to the low-density limit.
var (
	sulphurRatio      = []float64{0.45, 0.50, 0.55, 0.86, 1.03, 1.34, 1.40, 1.45}
	sulphurLogDensity = []float64{4.30, 4.00, 3.70, 3.00, 2.70, 2.00, 1.70, 1.00}
)

var (
	oiiiCurve = newTempCurve(32900, 7.9)
	niiCurve  = newTempCurve(25000, 8.23)
)

// Estimate computes the three diagnostics from the fixed fluxes. Fields the
// calculation cannot produce are left zero so the report can render them as
// unavailable instead of failing the whole section.
func Estimate() data.Conditions {
	var cond data.Conditions

	cond.TempOIII = oiiiCurve.temperature((fluxOIII5007 + fluxOIII4959) / fluxOIII4363)
	cond.TempNII = niiCurve.temperature((fluxNII6583 + fluxNII6548) / fluxNII5755)
	cond.Density = density(fluxSII6716/fluxSII6731, cond.TempOIII)

	return cond
}

// density inverts the doublet-ratio curve and applies the sqrt(Te)
// collision-rate scaling, using the oxygen temperature as auxiliary input.
func density(ratio, te float64) float64 {
	if math.IsNaN(ratio) || ratio <= 0 {
		return 0
	}
	if te <= 0 {
		te = 1e4
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(sulphurRatio, sulphurLogDensity); err != nil {
		return 0
	}
	logN := pl.Predict(clamp(ratio, sulphurRatio[0], sulphurRatio[len(sulphurRatio)-1]))
	return math.Pow(10, logN) * math.Sqrt(te/1e4)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
