package off

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"

	"github.com/mogaika/offmesh/config"
)

// ErrSourceTooLarge is the cause of the SourceUnreadable error returned
// when a source goes past its size limit.
var ErrSourceTooLarge = errors.New("source too large")

// ParseFile parses the OFF file at path, bounded by the configured
// max source size.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(SourceUnreadable, "open %q", path).because(err)
	}
	defer f.Close()

	return ParseLimited(f, config.Get().MaxSourceSize)
}

// ParseLimited parses r, failing with SourceUnreadable if it holds more
// than limit bytes.
func ParseLimited(r io.Reader, limit int64) (*Document, error) {
	lr := &io.LimitedReader{R: r, N: limit + 1}
	text, err := ioutil.ReadAll(config.DecodingReader(lr))
	if err != nil {
		return nil, newError(SourceUnreadable, "read failed").because(err)
	}
	if lr.N <= 0 {
		e := newError(SourceUnreadable, "source exceeds %d bytes", limit)
		e.Expected = int(limit)
		return nil, e.because(ErrSourceTooLarge)
	}
	return ParseBytes(text)
}

// WriteFile writes d to path. Creation, write, flush and close failures
// are all reported as SinkUnwritable.
func WriteFile(path string, d *Document) (err error) {
	if err := d.checkShape(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return newError(SinkUnwritable, "create %q", path).because(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newError(SinkUnwritable, "close %q", path).because(cerr)
		}
	}()

	return Write(f, d)
}
