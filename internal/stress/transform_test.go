package stress

import (
	"fmt"
	"math"
	"testing"
)

// Shared test states covering tension, compression, pure shear, hydrostatic
// and mixed cases.
var testStates = []State{
	{SigmaX: -89, SigmaY: 20, TauXY: 40},
	{SigmaX: 100, SigmaY: 100, TauXY: 0},
	{SigmaX: 0, SigmaY: 0, TauXY: 55},
	{SigmaX: 250, SigmaY: -75, TauXY: -120},
	{SigmaX: -12.5, SigmaY: -12.5, TauXY: 3},
	{SigmaX: 0, SigmaY: 0, TauXY: 0},
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestTransformZeroAngle(t *testing.T) {
	for _, s := range testStates {
		p := Transform(s, 0)
		if !almostEqual(p.SigmaX1, s.SigmaX, 1e-12) {
			t.Errorf("state %+v: σx'(0) = %v, want %v", s, p.SigmaX1, s.SigmaX)
		}
		if !almostEqual(p.SigmaY1, s.SigmaY, 1e-12) {
			t.Errorf("state %+v: σy'(0) = %v, want %v", s, p.SigmaY1, s.SigmaY)
		}
		if !almostEqual(p.TauX1Y1, s.TauXY, 1e-12) {
			t.Errorf("state %+v: τ(0) = %v, want %v", s, p.TauX1Y1, s.TauXY)
		}
	}
}

func TestTransformReferenceScenario(t *testing.T) {
	s := State{SigmaX: -89, SigmaY: 20, TauXY: 40}

	c := Principal(s)
	if !almostEqual(c.Center, -34.5, 1e-12) {
		t.Errorf("center = %v, want -34.5", c.Center)
	}
	if !almostEqual(c.Radius, 67.6036, 1e-3) {
		t.Errorf("radius = %v, want 67.6036", c.Radius)
	}
	if !almostEqual(c.Sigma1, 33.1036, 1e-3) {
		t.Errorf("σ1 = %v, want 33.1036", c.Sigma1)
	}
	if !almostEqual(c.Sigma2, -102.1036, 1e-3) {
		t.Errorf("σ2 = %v, want -102.1036", c.Sigma2)
	}
	if !almostEqual(c.ThetaPDeg, 71.862, 1e-2) {
		t.Errorf("θp = %v, want 71.862", c.ThetaPDeg)
	}

	// At θ=67°: 2θ=134°, cos(134°)≈-0.694658, sin(134°)≈0.719340.
	p := Transform(s, 67)
	if !almostEqual(p.SigmaX1, 32.1325, 1e-3) {
		t.Errorf("σx'(67°) = %v, want 32.1325", p.SigmaX1)
	}
	if !almostEqual(p.TauX1Y1, 11.4177, 1e-3) {
		t.Errorf("τ(67°) = %v, want 11.4177", p.TauX1Y1)
	}
}

func TestTraceInvariance(t *testing.T) {
	for _, s := range testStates {
		trace := s.SigmaX + s.SigmaY
		for theta := -90.0; theta <= 270; theta += 7.5 {
			p := Transform(s, theta)
			if !almostEqual(p.SigmaX1+p.SigmaY1, trace, 1e-9) {
				t.Errorf("state %+v θ=%v: σx'+σy' = %v, want %v",
					s, theta, p.SigmaX1+p.SigmaY1, trace)
			}
		}
	}
}

func TestComplementaryFace(t *testing.T) {
	// σy'(θ) must equal σx' of the face rotated 90° further.
	for _, s := range testStates {
		for theta := 0.0; theta < 180; theta += 13 {
			p := Transform(s, theta)
			q := Transform(s, theta+90)
			if !almostEqual(p.SigmaY1, q.SigmaX1, 1e-9) {
				t.Errorf("state %+v θ=%v: σy'(θ) = %v, σx'(θ+90°) = %v",
					s, theta, p.SigmaY1, q.SigmaX1)
			}
		}
	}
}

func TestPeriodicity(t *testing.T) {
	for _, s := range testStates {
		for theta := 0.0; theta < 180; theta += 11 {
			p := Transform(s, theta)
			q := Transform(s, theta+180)
			if !almostEqual(p.SigmaX1, q.SigmaX1, 1e-9) ||
				!almostEqual(p.TauX1Y1, q.TauX1Y1, 1e-9) {
				t.Errorf("state %+v θ=%v: period broken: %+v vs %+v", s, theta, p, q)
			}
		}
	}
}

func TestPrincipalBounds(t *testing.T) {
	for _, s := range testStates {
		c := Principal(s)
		if c.Radius < 0 {
			t.Errorf("state %+v: negative radius %v", s, c.Radius)
		}
		if c.Sigma1 < c.Center || c.Center < c.Sigma2 {
			t.Errorf("state %+v: want σ2 ≤ center ≤ σ1, got %v, %v, %v",
				s, c.Sigma2, c.Center, c.Sigma1)
		}
		if !almostEqual(c.Sigma1-c.Sigma2, 2*c.Radius, 1e-9) {
			t.Errorf("state %+v: σ1-σ2 = %v, want 2R = %v",
				s, c.Sigma1-c.Sigma2, 2*c.Radius)
		}
		if !almostEqual(c.TauMax, c.Radius, 0) {
			t.Errorf("state %+v: τmax = %v, want %v", s, c.TauMax, c.Radius)
		}
	}
}

func TestPrincipalPlaneHasZeroShear(t *testing.T) {
	for _, s := range testStates {
		c := Principal(s)

		p := Transform(s, c.ThetaPDeg)
		if !almostEqual(p.TauX1Y1, 0, 1e-9*(1+c.Radius)) {
			t.Errorf("state %+v: τ at θp = %v, want 0", s, p.TauX1Y1)
		}
		if !almostEqual(p.SigmaX1, c.Sigma1, 1e-9*(1+c.Radius)) {
			t.Errorf("state %+v: σx' at θp = %v, want σ1 = %v", s, p.SigmaX1, c.Sigma1)
		}

		q := Transform(s, c.ThetaSDeg)
		if !almostEqual(math.Abs(q.TauX1Y1), c.TauMax, 1e-9*(1+c.Radius)) {
			t.Errorf("state %+v: |τ| at θs = %v, want τmax = %v",
				s, math.Abs(q.TauX1Y1), c.TauMax)
		}
	}
}

func TestDegenerateCircle(t *testing.T) {
	s := State{SigmaX: 42, SigmaY: 42, TauXY: 0}
	c := Principal(s)
	if c.Radius != 0 {
		t.Fatalf("hydrostatic state: radius = %v, want 0", c.Radius)
	}
	for theta := 0.0; theta <= 180; theta += 30 {
		p := Transform(s, theta)
		if !almostEqual(p.SigmaX1, 42, 1e-12) || !almostEqual(p.TauX1Y1, 0, 1e-12) {
			t.Errorf("hydrostatic state rotated by %v°: %+v", theta, p)
		}
	}

	// Radius is zero only for the hydrostatic case.
	if Principal(State{SigmaX: 42, SigmaY: 42, TauXY: 0.001}).Radius == 0 {
		t.Error("non-zero shear must give a non-zero radius")
	}
	if Principal(State{SigmaX: 42, SigmaY: 41.999, TauXY: 0}).Radius == 0 {
		t.Error("unequal normal stresses must give a non-zero radius")
	}
}

func TestSampleCurve(t *testing.T) {
	s := State{SigmaX: -89, SigmaY: 20, TauXY: 40}

	curve := SampleCurve(s, DefaultSamples, DomainStartDeg, DomainEndDeg)
	if len(curve) != DefaultSamples {
		t.Fatalf("len = %d, want %d", len(curve), DefaultSamples)
	}
	if curve[0].ThetaDeg != 0 || !almostEqual(curve[len(curve)-1].ThetaDeg, 180, 1e-9) {
		t.Fatalf("endpoints = %v, %v; want 0, 180",
			curve[0].ThetaDeg, curve[len(curve)-1].ThetaDeg)
	}

	// With 1° spacing, sample 67 is the transformation at exactly 67°.
	p := Transform(s, 67)
	got := curve[67]
	if !almostEqual(got.SigmaX1, p.SigmaX1, 1e-9) || !almostEqual(got.TauX1Y1, p.TauX1Y1, 1e-9) {
		t.Errorf("curve[67] = %+v, want %+v", got, p)
	}

	// Sample count is clamped to 2.
	if got := SampleCurve(s, 0, 0, 180); len(got) != 2 {
		t.Errorf("clamped len = %d, want 2", len(got))
	}
}

func TestMohrPointsLieOnCircle(t *testing.T) {
	c := Principal(State{SigmaX: -89, SigmaY: 20, TauXY: 40})
	xs, ys := MohrPoints(c, 90)
	if len(xs) != 91 || len(ys) != 91 {
		t.Fatalf("len = %d, %d; want 91", len(xs), len(ys))
	}
	if xs[0] != xs[90] || ys[0] != ys[90] {
		t.Error("perimeter polyline must close")
	}
	for i := range xs {
		d := math.Hypot(xs[i]-c.Center, ys[i])
		if !almostEqual(d, c.Radius, 1e-9) {
			t.Errorf("point %d at distance %v from center, want %v", i, d, c.Radius)
		}
	}
}

func TestNonFinitePropagation(t *testing.T) {
	s := State{SigmaX: math.NaN(), SigmaY: 20, TauXY: 40}
	if s.IsFinite() {
		t.Error("NaN component reported finite")
	}
	if p := Transform(s, 30); !math.IsNaN(p.SigmaX1) {
		t.Errorf("σx' = %v, want NaN", p.SigmaX1)
	}

	inf := State{SigmaX: 1, SigmaY: math.Inf(1), TauXY: 0}
	if inf.IsFinite() {
		t.Error("Inf component reported finite")
	}

	if !(State{SigmaX: -89, SigmaY: 20, TauXY: 40}).IsFinite() {
		t.Error("finite state reported non-finite")
	}
}

func Example() {
	s := State{SigmaX: -89, SigmaY: 20, TauXY: 40}
	c := Principal(s)
	p := Transform(s, 67)

	fmt.Printf("| Center σavg   %8.2f |\n", c.Center)
	fmt.Printf("| Radius R      %8.2f |\n", c.Radius)
	fmt.Printf("| σ1 (max)      %8.2f |\n", c.Sigma1)
	fmt.Printf("| σ2 (min)      %8.2f |\n", c.Sigma2)
	fmt.Printf("| θp            %8.1f |\n", c.ThetaPDeg)
	fmt.Printf("| σx' at 67°    %8.2f |\n", p.SigmaX1)
	fmt.Printf("| σy' at 67°    %8.2f |\n", p.SigmaY1)
	fmt.Printf("| τx'y' at 67°  %8.2f |\n", p.TauX1Y1)

	// Output:
	// | Center σavg     -34.50 |
	// | Radius R         67.60 |
	// | σ1 (max)         33.10 |
	// | σ2 (min)       -102.10 |
	// | θp                71.9 |
	// | σx' at 67°       32.13 |
	// | σy' at 67°     -101.13 |
	// | τx'y' at 67°     11.42 |
}
