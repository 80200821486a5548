package utils

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// BoundingBox is an axis aligned box accumulated from points.
type BoundingBox struct {
	min, max mgl64.Vec3
}

func NewBoundingBox(p mgl64.Vec3) *BoundingBox {
	return &BoundingBox{min: p, max: p}
}

// BoundingBoxOf accumulates every point, there must be at least one.
func BoundingBoxOf(points ...mgl64.Vec3) (*BoundingBox, error) {
	if len(points) == 0 {
		return nil, errors.Errorf("Bounding box of zero points")
	}
	bb := NewBoundingBox(points[0])
	for _, p := range points[1:] {
		bb.Include(p)
	}
	return bb, nil
}

func (bb *BoundingBox) Include(p mgl64.Vec3) {
	for i := range p {
		if p[i] < bb.min[i] {
			bb.min[i] = p[i]
		}
		if p[i] > bb.max[i] {
			bb.max[i] = p[i]
		}
	}
}

func (bb *BoundingBox) Min() mgl64.Vec3 { return bb.min }
func (bb *BoundingBox) Max() mgl64.Vec3 { return bb.max }

func (bb *BoundingBox) Center() mgl64.Vec3 {
	return bb.min.Add(bb.max).Mul(0.5)
}

func (bb *BoundingBox) Extent() mgl64.Vec3 {
	return bb.max.Sub(bb.min)
}

// NormalizeCoords maps p from a box of the given center and size onto
// [-1,1]. Axes with zero size collapse to 0.
func NormalizeCoords(center, size, p mgl64.Vec3) mgl64.Vec3 {
	p = p.Sub(center)
	for i := range p {
		if size[i] == 0 {
			p[i] = 0
		} else {
			p[i] /= size[i] / 2
		}
	}
	return p
}
