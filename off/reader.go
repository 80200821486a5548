package off

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

const (
	TOKEN_NUMBER = iota
	TOKEN_WORD
)

var lexer *lexmachine.Lexer

func init() {
	lexer = lexmachine.NewLexer()
	lexer.Add([]byte(`[\+\-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][\+\-]?[0-9]+)?`), getToken(TOKEN_NUMBER))
	lexer.Add([]byte(`[^ \t\r\n\f\v#]+`), getToken(TOKEN_WORD))
	lexer.Add([]byte(`#[^\n]*`), skip)
	lexer.Add([]byte(`\s+`), skip)

	// compile once up front, lazy compilation inside Scanner is not goroutine safe
	if err := lexer.Compile(); err != nil {
		panic(err)
	}
}

func getToken(tokenType int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(tokenType, string(m.Bytes), m), nil
	}
}

func skip(scan *lexmachine.Scanner, match *machines.Match) (interface{}, error) {
	return nil, nil
}

// Token is one whitespace separated field of an OFF source.
type Token struct {
	Type   int
	Text   string
	Line   int
	Column int
}

func (t Token) IsNumber() bool { return t.Type == TOKEN_NUMBER }

// Reader pulls tokens from an OFF source. It never rewinds.
type Reader struct {
	scanner *lexmachine.Scanner
	eof     bool
	last    Token
}

func NewReader(text []byte) (*Reader, error) {
	scanner, err := lexer.Scanner(text)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to create lexer scanner")
	}
	return &Reader{scanner: scanner}, nil
}

// EOF reports whether the reader has hit the end of the source.
func (r *Reader) EOF() bool { return r.eof }

// Last returns the most recently consumed token.
func (r *Reader) Last() Token { return r.last }

// NextToken returns the next token or io.EOF once the source is exhausted.
func (r *Reader) NextToken() (Token, error) {
	if r.eof {
		return Token{}, io.EOF
	}
	for {
		itok, err, eos := r.scanner.Next()
		if eos {
			r.eof = true
			return Token{}, io.EOF
		}
		if err != nil {
			// the WORD rule covers every non blank byte, so this is only reachable on
			// scanner internals failing; treat it as the end of usable input
			r.eof = true
			return Token{}, errors.Wrapf(err, "Failed to scan token")
		}
		if itok == nil {
			continue
		}
		tok := itok.(*lexmachine.Token)
		r.last = Token{
			Type:   tok.Type,
			Text:   string(tok.Lexeme),
			Line:   tok.StartLine,
			Column: tok.StartColumn,
		}
		return r.last, nil
	}
}

func (r *Reader) nextNumber(what string) (Token, error) {
	tok, err := r.NextToken()
	if err == io.EOF {
		e := newError(UnexpectedEndOfInput, "expected %s", what)
		if r.last.Line > 0 {
			e.at(r.last)
		}
		return tok, e
	} else if err != nil {
		return tok, newError(UnexpectedEndOfInput, "expected %s", what).because(err)
	}
	if !tok.IsNumber() {
		return tok, newError(MalformedNumber, "%q is not a %s", tok.Text, what).at(tok)
	}
	return tok, nil
}

// NextInteger reads a base 10 integer token.
func (r *Reader) NextInteger() (int, error) {
	tok, err := r.nextNumber("integer")
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok.Text)
	if err != nil {
		return 0, newError(MalformedNumber, "%q is not an integer", tok.Text).at(tok)
	}
	return v, nil
}

// NextFloat reads a base 10 floating point token.
func (r *Reader) NextFloat() (float64, error) {
	tok, err := r.nextNumber("float")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return 0, newError(MalformedNumber, "%q is out of float range", tok.Text).at(tok)
	}
	return v, nil
}
