// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"strconv"

	"github.com/kestrel-data/pdflex/logger"
)

// TokenType tags the lexical classes the tokenizer can produce.
type TokenType int

const (
	TokKeyword TokenType = iota
	TokInteger
	TokReal
	TokName
	TokSymbol
	TokString
	TokBeginArray
	TokEndArray
	TokBeginDictionary
	TokEndDictionary
)

// Token is the tagged union the tokenizer emits. Only the fields
// relevant to Type are populated.
type Token struct {
	Type        TokenType
	Keyword     KeywordID
	KeywordText string // raw text when Keyword == KeywordUnknown
	Int         int64
	Real        float64
	Name        NameID
	NameText    string // raw text when Name == NameUnknown (a Symbol)
	Str         []byte
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return isWhitespace(b)
}

// Tokenizer scans Tokens off a Source.
type Tokenizer struct {
	src Source
}

func NewTokenizer(src Source) *Tokenizer { return &Tokenizer{src: src} }

func (t *Tokenizer) skipWhitespace() {
	for {
		b, ok := t.src.getch()
		if !ok {
			return
		}
		if b == '%' {
			for {
				c, ok := t.src.getch()
				if !ok || c == '\n' || c == '\r' {
					break
				}
			}
			continue
		}
		if isWhitespace(b) {
			continue
		}
		t.src.backup()
		return
	}
}

// Next returns the next token, or (nil, nil) at a clean EOF.
func (t *Tokenizer) Next() (*Token, error) {
	t.skipWhitespace()
	b, ok := t.src.getch()
	if !ok {
		return nil, nil
	}
	switch {
	case (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z'):
		return t.keyword(b)
	case b == '+' || b == '-' || b == '.' || (b >= '0' && b <= '9'):
		return t.number(b)
	case b == '/':
		return t.nameOrSymbol()
	case b == '[':
		return &Token{Type: TokBeginArray}, nil
	case b == ']':
		return &Token{Type: TokEndArray}, nil
	case b == '(':
		return t.literalString()
	case b == '<':
		c, ok := t.src.getch()
		if ok && c == '<' {
			return &Token{Type: TokBeginDictionary}, nil
		}
		if ok {
			t.src.backup()
		}
		return t.hexString()
	case b == '>':
		c, ok := t.src.getch()
		if !ok || c != '>' {
			return nil, newErr(InvalidPdf, "expected '>>'")
		}
		return &Token{Type: TokEndDictionary}, nil
	default:
		return nil, newErr(InvalidPdf, "unexpected byte in token stream")
	}
}

func (t *Tokenizer) keyword(first byte) (*Token, error) {
	text := []byte{first}
	for {
		b, ok := t.src.getch()
		if !ok {
			break
		}
		if isDelimiter(b) {
			t.src.backup()
			break
		}
		text = append(text, b)
	}
	s := string(text)
	if id, found := lookupKeyword(s); found {
		return &Token{Type: TokKeyword, Keyword: id}, nil
	}
	return &Token{Type: TokKeyword, Keyword: KeywordUnknown, KeywordText: s}, nil
}

func (t *Tokenizer) number(first byte) (*Token, error) {
	text := []byte{first}
	hasDot := first == '.'
	for {
		b, ok := t.src.getch()
		if !ok {
			break
		}
		if b == '.' && !hasDot {
			hasDot = true
			text = append(text, b)
			continue
		}
		if b >= '0' && b <= '9' {
			text = append(text, b)
			continue
		}
		t.src.backup()
		break
	}
	s := string(text)
	if hasDot {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, wrapErr(ParseFloatError, s, err)
		}
		return &Token{Type: TokReal, Real: f}, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, wrapErr(ParseIntError, s, err)
	}
	return &Token{Type: TokInteger, Int: i}, nil
}

func nybble(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}

func (t *Tokenizer) nameOrSymbol() (*Token, error) {
	var text []byte
	for {
		b, ok := t.src.getch()
		if !ok || isDelimiter(b) {
			if ok {
				t.src.backup()
			}
			break
		}
		if b == '#' {
			h1, ok1 := t.src.getch()
			h2, ok2 := t.src.getch()
			n1, v1 := nybble(h1)
			n2, v2 := nybble(h2)
			if ok1 && ok2 && v1 && v2 {
				text = append(text, n1<<4|n2)
				continue
			}
			return nil, newErr(InvalidPdf, "malformed name escape")
		}
		text = append(text, b)
	}
	s := string(text)
	if id, found := lookupName(s); found {
		logger.Debug("tokenizer: name", "text", s)
		return &Token{Type: TokName, Name: id}, nil
	}
	return &Token{Type: TokSymbol, NameText: s}, nil
}

func (t *Tokenizer) literalString() (*Token, error) {
	out := []byte{}
	depth := 1
	for {
		b, ok := t.src.getch()
		if !ok {
			break // permissive: EOF terminates the string
		}
		if b == '(' {
			depth++
			out = append(out, b)
			continue
		}
		if b == ')' {
			depth--
			if depth == 0 {
				break
			}
			out = append(out, b)
			continue
		}
		if b != '\\' {
			out = append(out, b)
			continue
		}
		e, ok := t.src.getch()
		if !ok {
			break
		}
		switch e {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case '(':
			out = append(out, '(')
		case ')':
			out = append(out, ')')
		case '\\':
			out = append(out, '\\')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, err := t.octalEscape(e)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		default:
			// any other escape is silently dropped
		}
	}
	return &Token{Type: TokString, Str: out}, nil
}

func (t *Tokenizer) octalEscape(first byte) (byte, error) {
	v := first - '0'
	for i := 0; i < 2; i++ {
		b, ok := t.src.getch()
		if !ok {
			break
		}
		if b < '0' || b > '7' {
			t.src.backup()
			break
		}
		v = v*8 + (b - '0')
	}
	return v, nil
}

func (t *Tokenizer) hexString() (*Token, error) {
	var nybbles []byte
	for {
		b, ok := t.src.getch()
		if !ok {
			return nil, newErr(EndOfFile, "unterminated hex string")
		}
		if b == '>' {
			break
		}
		if isWhitespace(b) {
			continue
		}
		n, valid := nybble(b)
		if !valid {
			return nil, newErr(InvalidPdf, "invalid hex digit")
		}
		nybbles = append(nybbles, n)
	}
	if len(nybbles)%2 != 0 {
		nybbles = append(nybbles, 0)
	}
	out := make([]byte, len(nybbles)/2)
	for i := range out {
		out[i] = nybbles[2*i]<<4 | nybbles[2*i+1]
	}
	return &Token{Type: TokString, Str: out}, nil
}
