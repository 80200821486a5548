package off_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/mogaika/offmesh/off"
)

func TestWriteParseRoundTrip(t *testing.T) {
	d := off.NewDocument(
		[]mgl64.Vec3{
			{0.1, -2.5e-7, 1e300},
			{3, 4, 5},
			{-1.0 / 3.0, 123456.789, 0},
			{7, 8, 9.000001},
		},
		[]off.Face{{0, 1, 2}, {2, 1, 3}, {3, 0, 2}},
	)
	d.EdgeCount = 6

	var buf bytes.Buffer
	if err := off.Write(&buf, d); err != nil {
		t.Fatal(err)
	}

	parsed, err := off.Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(parsed, d) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", parsed, d)
	}
}

func TestWritePolygons(t *testing.T) {
	d := off.NewDocument(
		[]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0.5, 1.5, 0}, {0, 1, 0}},
		[]off.Face{{0, 1, 2, 3, 4}},
	)

	var buf bytes.Buffer
	if err := off.Write(&buf, d); err != nil {
		t.Fatal(err)
	}
	const expected = "OFF\n5 1 0\n0 0 0\n1 0 0\n1 1 0\n0.5 1.5 0\n0 1 0\n5 0 1 2 3 4\n"
	if buf.String() != expected {
		t.Errorf("written %q; expected %q", buf.String(), expected)
	}

	// polygon documents are writable but not parseable back
	if _, err := off.Parse(&buf); !errors.Is(err, off.UnsupportedFaceArity) {
		t.Errorf("expected UnsupportedFaceArity, got %v", err)
	}
}

func TestWriteInvalidDocument(t *testing.T) {
	valid := func() *off.Document {
		return off.NewDocument([]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, []off.Face{{0, 1, 2}})
	}

	tests := []struct {
		name   string
		mutate func(d *off.Document)
	}{
		{"vertex count mismatch", func(d *off.Document) { d.VertexCount = 4 }},
		{"no vertices", func(d *off.Document) { d.Vertices, d.VertexCount = nil, 0 }},
		{"face count mismatch", func(d *off.Document) { d.FaceCount = 2 }},
		{"no faces", func(d *off.Document) { d.Faces, d.FaceCount = nil, 0 }},
		{"negative edges", func(d *off.Document) { d.EdgeCount = -1 }},
		{"empty face", func(d *off.Document) { d.Faces[0] = off.Face{} }},
	}
	for _, test := range tests {
		d := valid()
		test.mutate(d)
		var buf bytes.Buffer
		err := off.Write(&buf, d)
		if !errors.Is(err, off.InvalidDocument) {
			t.Errorf("%s: expected InvalidDocument, got %v", test.name, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: %d bytes written for invalid document", test.name, buf.Len())
		}
	}
}

type brokenSink struct{}

func (brokenSink) Write([]byte) (int, error) { return 0, errors.New("no space left") }

func TestWriteSinkUnwritable(t *testing.T) {
	d := off.NewDocument([]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, []off.Face{{0, 1, 2}})
	err := off.Write(brokenSink{}, d)
	if !errors.Is(err, off.SinkUnwritable) {
		t.Errorf("expected SinkUnwritable, got %v", err)
	}
	var e *off.Error
	if !errors.As(err, &e) || e.Err == nil || e.Err.Error() != "no space left" {
		t.Errorf("sink error is not carried: %v", err)
	}
}

func TestWriteNonFiniteCoordinates(t *testing.T) {
	tests := []mgl64.Vec3{
		{math.NaN(), 0, 0},
		{0, math.Inf(1), 0},
		{0, 0, math.Inf(-1)},
	}
	for _, bad := range tests {
		d := off.NewDocument([]mgl64.Vec3{{0, 0, 0}, bad, {0, 1, 0}}, []off.Face{{0, 1, 2}})
		var buf bytes.Buffer
		err := off.Write(&buf, d)
		var e *off.Error
		if !errors.As(err, &e) || e.Kind != off.InvalidDocument {
			t.Errorf("Write(%v): expected InvalidDocument, got %v", bad, err)
			continue
		}
		if e.Value != 1 {
			t.Errorf("Write(%v): vertex in error = %d; expected 1", bad, e.Value)
		}
		if buf.Len() != 0 {
			t.Errorf("Write(%v): %d bytes written", bad, buf.Len())
		}
	}
}

func TestWriteNilDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := off.Write(&buf, nil); !errors.Is(err, off.InvalidDocument) {
		t.Errorf("Write(nil): expected InvalidDocument, got %v", err)
	}
	path := filepath.Join(t.TempDir(), "nil.off")
	if err := off.WriteFile(path, nil); !errors.Is(err, off.InvalidDocument) {
		t.Errorf("WriteFile(nil): expected InvalidDocument, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file created for nil document")
	}
}
