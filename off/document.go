package off

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mogaika/offmesh/utils"
)

const HEADER_TAG = "OFF"

// Face is an ordered list of vertex indices. Documents produced by Parse
// hold only triangles.
type Face []int

// Document is an in-memory OFF mesh.
type Document struct {
	VertexCount int
	FaceCount   int
	EdgeCount   int
	Vertices    []mgl64.Vec3
	Faces       []Face
}

// NewDocument wraps caller data, deriving counts from slice lengths.
func NewDocument(vertices []mgl64.Vec3, faces []Face) *Document {
	return &Document{
		VertexCount: len(vertices),
		FaceCount:   len(faces),
		Vertices:    vertices,
		Faces:       faces,
	}
}

func (d *Document) checkShape() error {
	if d == nil {
		return newError(InvalidDocument, "nil document")
	}
	if d.VertexCount <= 0 {
		e := newError(InvalidDocument, "vertex count %d must be positive", d.VertexCount)
		e.Value = d.VertexCount
		return e
	}
	if d.VertexCount != len(d.Vertices) {
		e := newError(InvalidDocument, "vertex count %d does not match %d vertices", d.VertexCount, len(d.Vertices))
		e.Value, e.Expected = len(d.Vertices), d.VertexCount
		return e
	}
	if d.FaceCount <= 0 {
		e := newError(InvalidDocument, "face count %d must be positive", d.FaceCount)
		e.Value = d.FaceCount
		return e
	}
	if d.FaceCount != len(d.Faces) {
		e := newError(InvalidDocument, "face count %d does not match %d faces", d.FaceCount, len(d.Faces))
		e.Value, e.Expected = len(d.Faces), d.FaceCount
		return e
	}
	if d.EdgeCount < 0 {
		e := newError(InvalidDocument, "edge count %d is negative", d.EdgeCount)
		e.Value = d.EdgeCount
		return e
	}
	for i, v := range d.Vertices {
		for j, c := range v {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				e := newError(InvalidDocument, "vertex %d coordinate %d is %v", i, j, c)
				e.Value = i
				return e
			}
		}
	}
	for i, f := range d.Faces {
		if len(f) == 0 {
			e := newError(InvalidDocument, "face %d is empty", i)
			e.Face = i
			return e
		}
	}
	return nil
}

// Validate checks every document invariant, including that all faces are
// triangles with indices inside the vertex list.
func (d *Document) Validate() error {
	if err := d.checkShape(); err != nil {
		return err
	}
	for i, f := range d.Faces {
		if len(f) != 3 {
			e := newError(InvalidDocument, "face %d has %d indices, want 3", i, len(f))
			e.Face, e.Value, e.Expected = i, len(f), 3
			return e
		}
		for _, idx := range f {
			if idx < 0 || idx >= d.VertexCount {
				e := newError(InvalidDocument, "face %d references vertex %d of %d", i, idx, d.VertexCount)
				e.Face, e.Value, e.Expected = i, idx, d.VertexCount
				return e.because(IndexOutOfRange)
			}
		}
	}
	return nil
}

// splitFace appends the triangles of f to dst. Quads are split along the
// 0-2 diagonal.
func splitFace(dst []Face, f Face) ([]Face, bool) {
	switch len(f) {
	case 3:
		return append(dst, Face{f[0], f[1], f[2]}), true
	case 4:
		return append(dst, Face{f[0], f[1], f[2]}, Face{f[0], f[2], f[3]}), true
	default:
		return dst, false
	}
}

// Triangulate splits the quads of a caller built document in place and
// updates FaceCount. The document is left untouched on failure.
func (d *Document) Triangulate() error {
	if d == nil {
		return newError(InvalidDocument, "nil document")
	}
	faces := make([]Face, 0, len(d.Faces))
	for i, f := range d.Faces {
		var ok bool
		if faces, ok = splitFace(faces, f); !ok {
			e := newError(UnsupportedFaceArity, "face %d has arity %d", i, len(f))
			e.Face, e.Value = i, len(f)
			return e
		}
	}
	d.Faces = faces
	d.FaceCount = len(faces)
	return nil
}

// Bounds returns the bounding box of all vertices.
func (d *Document) Bounds() (*utils.BoundingBox, error) {
	if d == nil {
		return nil, newError(InvalidDocument, "nil document")
	}
	bb, err := utils.BoundingBoxOf(d.Vertices...)
	if err != nil {
		return nil, newError(InvalidDocument, "no vertices").because(err)
	}
	return bb, nil
}

// NormalizeToUnitCube moves and scales vertices so the bounding box maps
// onto [-1,1] on every axis with non zero extent.
func (d *Document) NormalizeToUnitCube() error {
	bb, err := d.Bounds()
	if err != nil {
		return err
	}
	center, extent := bb.Center(), bb.Extent()
	for i := range d.Vertices {
		d.Vertices[i] = utils.NormalizeCoords(center, extent, d.Vertices[i])
	}
	return nil
}
