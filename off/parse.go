package off

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/mogaika/offmesh/config"
)

// upper bound on slice preallocation driven by declared counts, so a
// lying header cannot make us allocate before the data is actually read
const maxPrealloc = 1 << 16

func preallocSize(n int) int {
	if n > maxPrealloc {
		return maxPrealloc
	}
	return n
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Parse reads a whole OFF source, decoded with the configured charmap, and
// returns a validated, triangulated document. No document is returned on
// failure.
func Parse(r io.Reader) (*Document, error) {
	text, err := ioutil.ReadAll(config.DecodingReader(r))
	if err != nil {
		return nil, newError(SourceUnreadable, "read failed").because(err)
	}
	return ParseBytes(text)
}

// ParseBytes parses text that is already UTF-8 (or plain ASCII).
func ParseBytes(text []byte) (*Document, error) {
	text = bytes.TrimPrefix(text, utf8BOM)
	rd, err := NewReader(text)
	if err != nil {
		return nil, newError(SourceUnreadable, "tokenizer failed").because(err)
	}

	if err := parseHeaderTag(rd); err != nil {
		return nil, err
	}

	var d Document
	if err := parseCounts(rd, &d); err != nil {
		return nil, err
	}
	if err := parseVertices(rd, &d); err != nil {
		return nil, err
	}
	if err := parseFaces(rd, &d); err != nil {
		return nil, err
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func parseHeaderTag(rd *Reader) error {
	tok, err := rd.NextToken()
	if err == io.EOF {
		return newError(InvalidHeader, "empty source, expected %q", HEADER_TAG).
			because(newError(UnexpectedEndOfInput, "expected header tag"))
	} else if err != nil {
		return newError(InvalidHeader, "expected %q", HEADER_TAG).because(err)
	}
	if tok.Text != HEADER_TAG {
		return newError(InvalidHeader, "got %q, expected %q", tok.Text, HEADER_TAG).at(tok)
	}
	return nil
}

func parseCounts(rd *Reader, d *Document) error {
	names := [...]string{"vertex", "face", "edge"}
	dst := [...]*int{&d.VertexCount, &d.FaceCount, &d.EdgeCount}
	for i, p := range dst {
		v, err := rd.NextInteger()
		if err != nil {
			return newError(TruncatedHeader, "reading %s count", names[i]).because(err)
		}
		*p = v
	}

	for i, p := range dst {
		// vertex and face counts must be positive, edges may be zero
		if *p < 0 || (i < 2 && *p == 0) {
			e := newError(InvalidCounts, "%s count is %d", names[i], *p)
			e.Value = *p
			return e.at(rd.Last())
		}
	}
	return nil
}

func parseVertices(rd *Reader, d *Document) error {
	d.Vertices = make([]mgl64.Vec3, 0, preallocSize(d.VertexCount))
	for i := 0; i < d.VertexCount; i++ {
		var v mgl64.Vec3
		for j := range v {
			f, err := rd.NextFloat()
			if err != nil {
				if errors.Is(err, UnexpectedEndOfInput) {
					e := newError(TruncatedVertexData, "got %d of %d vertices", i, d.VertexCount)
					e.Value, e.Expected = i, d.VertexCount
					return e.because(err)
				}
				return newError(MalformedNumber, "vertex %d coordinate %d", i, j).because(err)
			}
			v[j] = f
		}
		d.Vertices = append(d.Vertices, v)
	}
	return nil
}

func parseFaces(rd *Reader, d *Document) error {
	d.Faces = make([]Face, 0, preallocSize(d.FaceCount))
	raw := make(Face, 0, 4)
	for iFace := 0; iFace < d.FaceCount; iFace++ {
		arity, err := rd.NextInteger()
		if err != nil {
			return faceReadError(iFace, d.FaceCount, err)
		}
		// checked before reading indices so a huge arity does not drive allocation
		if arity != 3 && arity != 4 {
			e := newError(UnsupportedFaceArity, "face %d declares arity %d", iFace, arity)
			e.Face, e.Value = iFace, arity
			return e.at(rd.Last())
		}

		raw = raw[:0]
		for j := 0; j < arity; j++ {
			idx, err := rd.NextInteger()
			if err != nil {
				return faceReadError(iFace, d.FaceCount, err)
			}
			if idx < 0 || idx >= d.VertexCount {
				e := newError(IndexOutOfRange, "face %d references vertex %d, have %d vertices", iFace, idx, d.VertexCount)
				e.Face, e.Value, e.Expected = iFace, idx, d.VertexCount
				return e.at(rd.Last())
			}
			raw = append(raw, idx)
		}

		d.Faces, _ = splitFace(d.Faces, raw)
	}
	d.FaceCount = len(d.Faces)
	return nil
}

func faceReadError(iFace, faceCount int, err error) error {
	if errors.Is(err, UnexpectedEndOfInput) {
		e := newError(TruncatedFaceData, "got %d of %d faces", iFace, faceCount)
		e.Face, e.Value, e.Expected = iFace, iFace, faceCount
		return e.because(err)
	}
	e := newError(MalformedNumber, "face %d", iFace)
	e.Face = iFace
	return e.because(err)
}
