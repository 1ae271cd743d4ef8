// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"io"
	"os"
)

// Whence mirrors io.Seek* without forcing callers to import io.
const (
	SeekStart   = io.SeekStart
	SeekCurrent = io.SeekCurrent
	SeekEnd     = io.SeekEnd
)

// Source is the abstract random-access byte reader every parsing layer
// is built on. getch/backup give the tokenizer single-byte lookahead
// without a peek buffer: over-consume one byte, rewind it.
type Source interface {
	Seek(offset int64, whence int) (int64, error)
	Read(buf []byte) (int, error)
	Size() int64

	// getch returns the next byte and true, or (0, false) at EOF.
	getch() (byte, bool)
	// backup rewinds the cursor by one byte. No-op at position 0.
	backup()
}

// FileSource is a Source backed by an open, seekable file.
type FileSource struct {
	f    *os.File
	size int64
	pos  int64
}

// NewFileSource opens path for reading and wraps it as a Source.
func NewFileSource(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapErr(IoError, "open "+path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, wrapErr(IoError, "stat "+path, err)
	}
	return &FileSource{f: f, size: fi.Size()}, nil
}

func (s *FileSource) Close() error { return s.f.Close() }

func (s *FileSource) Size() int64 { return s.size }

func (s *FileSource) Seek(offset int64, whence int) (int64, error) {
	pos, err := s.f.Seek(offset, whence)
	if err != nil {
		return 0, wrapErr(IoError, "seek", err)
	}
	s.pos = pos
	return pos, nil
}

func (s *FileSource) Read(buf []byte) (int, error) {
	n, err := io.ReadFull(s.f, buf)
	s.pos += int64(n)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return n, nil
	}
	if err != nil {
		return n, wrapErr(IoError, "read", err)
	}
	return n, nil
}

func (s *FileSource) getch() (byte, bool) {
	var b [1]byte
	n, err := s.f.Read(b[:])
	if n == 0 || err != nil {
		return 0, false
	}
	s.pos++
	return b[0], true
}

func (s *FileSource) backup() {
	if s.pos == 0 {
		return
	}
	s.pos--
	s.f.Seek(s.pos, io.SeekStart)
}

// ByteSource is an in-memory Source over a byte slice. It backs both
// whole-file byte-slice input and the decoded content stream each
// ContentIterator re-parses.
type ByteSource struct {
	data []byte
	pos  int64
}

// NewByteSource wraps data (not copied) as a Source.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data}
}

func (s *ByteSource) Size() int64 { return int64(len(s.data)) }

func (s *ByteSource) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = s.pos
	case io.SeekEnd:
		base = int64(len(s.data))
	default:
		return 0, newErr(InternalError, "bad whence")
	}
	pos := base + offset
	if pos < 0 {
		return 0, wrapErr(IoError, "seek before start", nil)
	}
	s.pos = pos
	return pos, nil
}

func (s *ByteSource) Read(buf []byte) (int, error) {
	if s.pos >= int64(len(s.data)) {
		return 0, nil
	}
	n := copy(buf, s.data[s.pos:])
	s.pos += int64(n)
	return n, nil
}

func (s *ByteSource) getch() (byte, bool) {
	if s.pos >= int64(len(s.data)) {
		return 0, false
	}
	b := s.data[s.pos]
	s.pos++
	return b, true
}

func (s *ByteSource) backup() {
	if s.pos == 0 {
		return
	}
	s.pos--
}
