package geo

import (
	"math"
	"testing"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	points := [][2]float64{
		{28.6139, 77.2090},
		{0, 0},
		{-33.8688, 151.2093},
		{90, 0},
	}
	for _, p := range points {
		if d := Distance(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("Distance(%v, %v, same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	d1 := Distance(28.6139, 77.2090, 19.0760, 72.8777)
	d2 := Distance(19.0760, 72.8777, 28.6139, 77.2090)
	if math.Abs(d1-d2) > 1e-6 {
		t.Errorf("Distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistanceDelhiMumbai(t *testing.T) {
	// Great-circle distance between Delhi and Mumbai is roughly 1,150-1,160 km.
	d := Distance(28.6139, 77.2090, 19.0760, 72.8777)
	if d < 1150000 || d > 1160000 {
		t.Errorf("Distance(Delhi, Mumbai) = %v m, want between 1,150,000 and 1,160,000", d)
	}
}

func TestDistanceShortRange(t *testing.T) {
	// One degree of latitude is about 111 km, so 0.001 degrees is about 111 m.
	d := Distance(28.6139, 77.2090, 28.6149, 77.2090)
	if d < 100 || d > 120 {
		t.Errorf("Distance over 0.001 deg latitude = %v m, want ~111 m", d)
	}
}

func TestDistanceNeverNaN(t *testing.T) {
	// Out-of-range inputs are garbage-in/garbage-out but must stay numeric.
	d := Distance(5000, -5000, 123, 456)
	if math.IsNaN(d) {
		t.Error("Distance returned NaN for out-of-range input")
	}
}
