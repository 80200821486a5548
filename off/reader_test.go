package off

import (
	"io"
	"testing"

	"github.com/pkg/errors"
)

func TestReaderTokens(t *testing.T) {
	const src = "OFF\n4 1 0 # counts\n1.5\t-2 +3e2\r\n.5 7."
	rd, err := NewReader([]byte(src))
	if err != nil {
		t.Fatal(err)
	}

	expected := []struct {
		text   string
		number bool
	}{
		{"OFF", false},
		{"4", true}, {"1", true}, {"0", true},
		{"1.5", true}, {"-2", true}, {"+3e2", true},
		{".5", true}, {"7.", true},
	}

	var prevLine int
	for i, e := range expected {
		tok, err := rd.NextToken()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Text != e.text || tok.IsNumber() != e.number {
			t.Errorf("token %d = %q (number %v); expected %q (number %v)", i, tok.Text, tok.IsNumber(), e.text, e.number)
		}
		if tok.Line < prevLine {
			t.Errorf("token %d line %d went backwards from %d", i, tok.Line, prevLine)
		}
		prevLine = tok.Line
	}

	if _, err := rd.NextToken(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if !rd.EOF() {
		t.Errorf("EOF() = false after end of input")
	}
	if _, err := rd.NextToken(); err != io.EOF {
		t.Errorf("expected io.EOF to stick, got %v", err)
	}
}

func TestReaderCommentGlued(t *testing.T) {
	rd, err := NewReader([]byte("12#34 56\n78"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []int{12, 78} {
		v, err := rd.NextInteger()
		if err != nil {
			t.Fatal(err)
		}
		if v != want {
			t.Errorf("NextInteger() = %d; expected %d", v, want)
		}
	}
}

func TestReaderNumbers(t *testing.T) {
	floats := []struct {
		in  string
		out float64
	}{
		{"0", 0},
		{"-1.25", -1.25},
		{"2e-3", 0.002},
		{"+7", 7},
	}
	for _, test := range floats {
		rd, _ := NewReader([]byte(test.in))
		v, err := rd.NextFloat()
		if err != nil {
			t.Errorf("NextFloat(%q) error: %v", test.in, err)
		} else if v != test.out {
			t.Errorf("NextFloat(%q) = %v; expected %v", test.in, v, test.out)
		}
	}

	failures := []struct {
		in      string
		integer bool
		kind    Kind
	}{
		{"", true, UnexpectedEndOfInput},
		{"  \n # only comment", false, UnexpectedEndOfInput},
		{"1.5", true, MalformedNumber},
		{"1e3", true, MalformedNumber},
		{"abc", true, MalformedNumber},
		{"99999999999999999999999", true, MalformedNumber},
		{"nan", false, MalformedNumber},
		{"inf", false, MalformedNumber},
		{"0x10", false, MalformedNumber},
		{"1e400", false, MalformedNumber},
		{"1.2.3", false, MalformedNumber},
	}
	for _, test := range failures {
		rd, _ := NewReader([]byte(test.in))
		var err error
		if test.integer {
			_, err = rd.NextInteger()
		} else {
			_, err = rd.NextFloat()
		}
		if !errors.Is(err, test.kind) {
			t.Errorf("reading %q: got %v; expected %v", test.in, err, test.kind)
		}
	}
}

func TestReaderFormFeedAndVerticalTab(t *testing.T) {
	rd, err := NewReader([]byte("OFF\f3\v1 \f\v 0"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"OFF", "3", "1", "0"} {
		tok, err := rd.NextToken()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Text != want {
			t.Errorf("token = %q; expected %q", tok.Text, want)
		}
	}
	if _, err := rd.NextToken(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}
