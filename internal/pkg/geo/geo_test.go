package geo

import (
	"math"
	"testing"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	points := []Point{
		{0, 0},
		{28.7041, 77.1025},
		{-33.8688, 151.2093},
		{89.9, -179.9},
	}
	for _, p := range points {
		if d := DistanceMeters(p, p); d != 0 {
			t.Errorf("DistanceMeters(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := Point{28.7041, 77.1025}
	b := Point{28.8000, 77.2000}

	ab := DistanceMeters(a, b)
	ba := DistanceMeters(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: a->b %v, b->a %v", ab, ba)
	}
}

func TestDistanceMeters_KnownFixture(t *testing.T) {
	// Connaught Place, Delhi to a point ~13-14km northeast.
	a := Point{28.7041, 77.1025}
	b := Point{28.8000, 77.2000}

	d := DistanceMeters(a, b)
	if d < 13000 || d > 15000 {
		t.Errorf("DistanceMeters = %v, want roughly 13-14km", d)
	}
}

func TestIsWithinRadius(t *testing.T) {
	center := Point{28.7041, 77.1025}

	cases := []struct {
		name   string
		point  Point
		radius float64
		want   bool
	}{
		{"exact center inside 100m", Point{28.7041, 77.1025}, 100, true},
		{"13km away outside 100m", Point{28.8000, 77.2000}, 100, false},
		{"zero radius requires coincidence", Point{28.7041, 77.1025}, 0, true},
		{"zero radius rejects distant point", Point{28.7042, 77.1025}, 0, false},
	}
	for _, c := range cases {
		if got := IsWithinRadius(c.point, center, c.radius); got != c.want {
			t.Errorf("%s: IsWithinRadius = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsWithinRadius_InclusiveBoundary(t *testing.T) {
	center := Point{28.7041, 77.1025}
	point := Point{28.8000, 77.2000}

	d := DistanceMeters(point, center)

	// Exactly on the boundary counts as inside; 1mm short of it does not.
	if !IsWithinRadius(point, center, d) {
		t.Errorf("point at exactly radius distance should be within")
	}
	if IsWithinRadius(point, center, d-0.001) {
		t.Errorf("point 1mm outside radius should not be within")
	}
}
