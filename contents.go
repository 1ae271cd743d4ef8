// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

// ContentIterator wraps a page's decoded content-stream bytes in a
// byte Source and re-runs the object parser over them. Not
// restartable: once NextObject returns (nil, nil) the iterator stays
// exhausted.
type ContentIterator struct {
	parser *Parser
	done   bool
}

// newContentIterator appends a trailing space sentinel to contents
// before wrapping it, so the last token in the stream doesn't trip a
// premature EndOfFile while the tokenizer looks for its terminator.
func newContentIterator(contents []byte) *ContentIterator {
	padded := make([]byte, len(contents)+1)
	copy(padded, contents)
	padded[len(contents)] = ' '
	return &ContentIterator{parser: NewParser(NewByteSource(padded))}
}

// NextObject returns the next token/operand object, or (nil, nil) once
// the stream is exhausted.
func (c *ContentIterator) NextObject() (*Object, error) {
	if c.done {
		return nil, nil
	}
	obj, err := c.parser.Next()
	if err != nil {
		return nil, err
	}
	if obj == nil {
		c.done = true
	}
	return obj, nil
}
