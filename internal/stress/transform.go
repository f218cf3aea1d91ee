package stress

import "math"

// Plane-stress transformation follows the double-angle convention: every
// trigonometric argument is 2θ, so the physical period is 180°.

const (
	// DomainStartDeg and DomainEndDeg bound one full period of the
	// transformation, the default plotting domain.
	DomainStartDeg = 0.0
	DomainEndDeg   = 180.0

	// DefaultSamples gives 1° spacing over the default domain, so any
	// whole-degree rotation angle lands exactly on a sample.
	DefaultSamples = 181
)

// Transform computes the stresses on an element rotated by thetaDeg.
//
//	σx'   = σavg + σdiff·cos(2θ) + τxy·sin(2θ)
//	σy'   = σavg - σdiff·cos(2θ) - τxy·sin(2θ)
//	τx'y' = -σdiff·sin(2θ) + τxy·cos(2θ)
//
// where σavg = (σx+σy)/2 and σdiff = (σx-σy)/2. Pure and deterministic;
// non-finite inputs propagate to non-finite outputs.
func Transform(s State, thetaDeg float64) Point {
	avg := (s.SigmaX + s.SigmaY) / 2
	diff := (s.SigmaX - s.SigmaY) / 2

	twoTheta := 2 * thetaDeg * math.Pi / 180
	cos2t := math.Cos(twoTheta)
	sin2t := math.Sin(twoTheta)

	return Point{
		ThetaDeg: thetaDeg,
		SigmaX1:  avg + diff*cos2t + s.TauXY*sin2t,
		SigmaY1:  avg - diff*cos2t - s.TauXY*sin2t,
		TauX1Y1:  -diff*sin2t + s.TauXY*cos2t,
	}
}

// Principal computes the Mohr's Circle geometry of a stress state: center,
// radius, principal stresses, maximum in-plane shear, and the principal and
// maximum-shear plane angles.
//
// Radius is zero only for a hydrostatic state (σx = σy, τxy = 0); the circle
// degenerates to a point and every rotation returns the same stresses.
func Principal(s State) Circle {
	avg := (s.SigmaX + s.SigmaY) / 2
	diff := (s.SigmaX - s.SigmaY) / 2

	r := math.Hypot(diff, s.TauXY)

	// tan(2θp) = τxy / σdiff; atan2 picks the quadrant so that θp always
	// rotates the x-face onto the σ1 direction.
	thetaP := 0.5 * math.Atan2(s.TauXY, diff) * 180 / math.Pi

	return Circle{
		Center:    avg,
		Radius:    r,
		Sigma1:    avg + r,
		Sigma2:    avg - r,
		TauMax:    r,
		ThetaPDeg: thetaP,
		ThetaSDeg: thetaP - 45,
	}
}

// SampleCurve evaluates the transformation at n evenly spaced angles from
// startDeg to endDeg, inclusive of both endpoints. n is clamped to a minimum
// of 2. The result is a pure function of its arguments: resample at will.
func SampleCurve(s State, n int, startDeg, endDeg float64) Curve {
	if n < 2 {
		n = 2
	}
	step := (endDeg - startDeg) / float64(n-1)

	curve := make(Curve, n)
	for i := range curve {
		curve[i] = Transform(s, startDeg+float64(i)*step)
	}
	return curve
}

// MohrPoints samples the circle perimeter for plotting: n points of
// (Center + R·cosβ, R·sinβ) with β sweeping a full revolution, first point
// repeated last so the polyline closes.
func MohrPoints(c Circle, n int) (xs, ys []float64) {
	if n < 3 {
		n = 3
	}
	xs = make([]float64, n+1)
	ys = make([]float64, n+1)
	for i := 0; i <= n; i++ {
		beta := 2 * math.Pi * float64(i) / float64(n)
		xs[i] = c.Center + c.Radius*math.Cos(beta)
		ys[i] = c.Radius * math.Sin(beta)
	}
	return xs, ys
}
