package stress

import "math"

// State represents a 2D plane-stress state acting on an unrotated element.
// Sign convention: normal stresses are tension-positive; shear is positive
// when it acts counter-clockwise on the x-face.
// Units are whatever the caller works in (MPa, ksi, ...); all outputs share
// the input unit.
type State struct {
	SigmaX float64 `json:"sigma_x"` // σx - normal stress on the x-face
	SigmaY float64 `json:"sigma_y"` // σy - normal stress on the y-face
	TauXY  float64 `json:"tau_xy"`  // τxy - shear stress
}

// IsFinite reports whether every component is a finite number.
// The transformation math itself never rejects input (non-finite values
// simply propagate), but file-loaded states are checked up front so a typo
// in a scenario file fails loudly instead of printing a page of NaNs.
func (s State) IsFinite() bool {
	return isFinite(s.SigmaX) && isFinite(s.SigmaY) && isFinite(s.TauXY)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Point holds the stresses on an element rotated by ThetaDeg.
// SigmaY1 is the normal stress on the complementary face (the face 90°
// away); SigmaX1 + SigmaY1 always equals SigmaX + SigmaY.
type Point struct {
	ThetaDeg float64 // rotation angle (degrees)
	SigmaX1  float64 // σx' - normal stress on the rotated x-face
	SigmaY1  float64 // σy' - normal stress on the rotated y-face
	TauX1Y1  float64 // τx'y' - shear stress on the rotated element
}

// Circle describes the Mohr's Circle of a stress state.
type Circle struct {
	Center float64 // σavg - average normal stress
	Radius float64 // R - always >= 0

	Sigma1 float64 // maximum principal stress (Center + R)
	Sigma2 float64 // minimum principal stress (Center - R)
	TauMax float64 // maximum in-plane shear stress (= R)

	ThetaPDeg float64 // principal plane angle (degrees, shear = 0)
	ThetaSDeg float64 // maximum-shear plane angle (degrees, = ThetaPDeg - 45)
}

// Curve is an ordered sequence of transformed points sampled over an angle
// range, used for plotting. It is a pure derived value: resample whenever
// the state changes.
type Curve []Point

// Thetas returns the sampled angles as a plain slice for plotting.
func (c Curve) Thetas() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.ThetaDeg
	}
	return out
}

// SigmaX1s returns the σx' series.
func (c Curve) SigmaX1s() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.SigmaX1
	}
	return out
}

// TauX1Y1s returns the τx'y' series.
func (c Curve) TauX1Y1s() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.TauX1Y1
	}
	return out
}

// Bounds returns the minimum and maximum of both stress series, used for
// axis ranges. Returns zeros for an empty curve.
func (c Curve) Bounds() (min, max float64) {
	if len(c) == 0 {
		return 0, 0
	}
	min, max = c[0].SigmaX1, c[0].SigmaX1
	for _, p := range c {
		min = math.Min(min, math.Min(p.SigmaX1, p.TauX1Y1))
		max = math.Max(max, math.Max(p.SigmaX1, p.TauX1Y1))
	}
	return min, max
}
