package off

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies codec failures. Kind implements error so that
// errors.Is(err, off.IndexOutOfRange) works on any returned error.
type Kind int

const (
	_ Kind = iota
	InvalidHeader
	TruncatedHeader
	TruncatedVertexData
	TruncatedFaceData
	UnexpectedEndOfInput
	MalformedNumber
	InvalidCounts
	IndexOutOfRange
	UnsupportedFaceArity
	InvalidDocument
	SourceUnreadable
	SinkUnwritable
)

var kindNames = map[Kind]string{
	InvalidHeader:        "invalid header",
	TruncatedHeader:      "truncated header",
	TruncatedVertexData:  "truncated vertex data",
	TruncatedFaceData:    "truncated face data",
	UnexpectedEndOfInput: "unexpected end of input",
	MalformedNumber:      "malformed number",
	InvalidCounts:        "invalid counts",
	IndexOutOfRange:      "index out of range",
	UnsupportedFaceArity: "unsupported face arity",
	InvalidDocument:      "invalid document",
	SourceUnreadable:     "source unreadable",
	SinkUnwritable:       "sink unwritable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) Error() string { return k.String() }

// Error is the failure returned by Parse, Write and the document helpers.
// Face is -1 when the failure is not tied to a face, Line is 0 when there
// is no source position.
type Error struct {
	Kind     Kind
	Face     int
	Value    int
	Expected int
	Line     int
	Column   int
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("off: ")
	sb.WriteString(e.Kind.String())
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, " (line %d, column %d)", e.Line, e.Column)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func newError(kind Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Face: -1, Msg: fmt.Sprintf(format, a...)}
}

func (e *Error) at(t Token) *Error {
	e.Line, e.Column = t.Line, t.Column
	return e
}

func (e *Error) because(err error) *Error {
	e.Err = err
	if e.Line == 0 {
		var cause *Error
		if errors.As(err, &cause) {
			e.Line, e.Column = cause.Line, cause.Column
		}
	}
	return e
}

// KindOf returns the Kind of the outermost codec error in err's chain,
// or 0 if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return 0
}
