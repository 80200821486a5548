package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBoundingBox(t *testing.T) {
	bb, err := BoundingBoxOf(
		mgl64.Vec3{1, 5, -2},
		mgl64.Vec3{-3, 2, 4},
		mgl64.Vec3{0, 7, 0},
	)
	if err != nil {
		t.Fatal(err)
	}

	var tests = []struct {
		name   string
		got    mgl64.Vec3
		expect mgl64.Vec3
	}{
		{"min", bb.Min(), mgl64.Vec3{-3, 2, -2}},
		{"max", bb.Max(), mgl64.Vec3{1, 7, 4}},
		{"center", bb.Center(), mgl64.Vec3{-1, 4.5, 1}},
		{"extent", bb.Extent(), mgl64.Vec3{4, 5, 6}},
	}
	for _, test := range tests {
		if test.got != test.expect {
			t.Errorf("%s = %v; expected %v", test.name, test.got, test.expect)
		}
	}
}

func TestBoundingBoxIncludeBothSides(t *testing.T) {
	// a point below min on one axis and above max on another
	bb := NewBoundingBox(mgl64.Vec3{0, 0, 0})
	bb.Include(mgl64.Vec3{-1, 1, 0})
	bb.Include(mgl64.Vec3{2, -2, 0})
	if bb.Min() != (mgl64.Vec3{-1, -2, 0}) || bb.Max() != (mgl64.Vec3{2, 1, 0}) {
		t.Errorf("box = %v..%v", bb.Min(), bb.Max())
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	if _, err := BoundingBoxOf(); err == nil {
		t.Errorf("expected error for no points")
	}
}

func TestNormalizeCoords(t *testing.T) {
	center := mgl64.Vec3{1, 2, 3}
	size := mgl64.Vec3{2, 8, 0}
	got := NormalizeCoords(center, size, mgl64.Vec3{2, -2, 3})
	if got != (mgl64.Vec3{1, -1, 0}) {
		t.Errorf("NormalizeCoords = %v", got)
	}
}
