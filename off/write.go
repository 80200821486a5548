package off

import (
	"bufio"
	"io"
	"strconv"
)

type errWriter struct {
	w   *bufio.Writer
	err error
}

func (ew *errWriter) writeString(s string) {
	if ew.err == nil {
		_, ew.err = ew.w.WriteString(s)
	}
}

func (ew *errWriter) writeByte(b byte) {
	if ew.err == nil {
		ew.err = ew.w.WriteByte(b)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Write serializes d as OFF text. Faces are written with whatever arity
// they hold, so caller built polygon documents round trip too.
func Write(w io.Writer, d *Document) error {
	if err := d.checkShape(); err != nil {
		return err
	}

	ew := &errWriter{w: bufio.NewWriter(w)}

	ew.writeString(HEADER_TAG)
	ew.writeByte('\n')
	ew.writeString(strconv.Itoa(d.VertexCount))
	ew.writeByte(' ')
	ew.writeString(strconv.Itoa(d.FaceCount))
	ew.writeByte(' ')
	ew.writeString(strconv.Itoa(d.EdgeCount))
	ew.writeByte('\n')

	for _, v := range d.Vertices {
		ew.writeString(formatFloat(v[0]))
		ew.writeByte(' ')
		ew.writeString(formatFloat(v[1]))
		ew.writeByte(' ')
		ew.writeString(formatFloat(v[2]))
		ew.writeByte('\n')
	}

	for _, f := range d.Faces {
		ew.writeString(strconv.Itoa(len(f)))
		for _, idx := range f {
			ew.writeByte(' ')
			ew.writeString(strconv.Itoa(idx))
		}
		ew.writeByte('\n')
	}

	if ew.err != nil {
		return newError(SinkUnwritable, "write failed").because(ew.err)
	}
	if err := ew.w.Flush(); err != nil {
		return newError(SinkUnwritable, "flush failed").because(err)
	}
	return nil
}
