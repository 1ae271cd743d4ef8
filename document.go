// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"bytes"
	"io"

	"github.com/kestrel-data/pdflex/logger"
)

// xrefEntry is one slot of the classic cross-reference table.
type xrefEntry struct {
	Gen      uint16
	Position uint64
}

const tailWindow = 8192

// Document owns a Source for its whole lifetime plus the xref table and
// flat, depth-first page list built once at Open. Per spec.md §5 this
// state is read-only after Open; the only later mutation is the
// Source's own seek cursor, made during PageContents. A Document is
// therefore safe for sequential, but not concurrent, reuse — see
// SafeDocument for a mutex-guarded wrapper.
type Document struct {
	src     Source
	parser  *Parser
	xref    []xrefEntry
	trailer Dictionary
	pages   []Dictionary
	closer  io.Closer
}

// Open reads header, trailer, xref, catalog, and page tree from src,
// returning a ready-to-use Document.
func Open(src Source) (*Document, error) {
	d := &Document{src: src, parser: NewParser(src)}
	if c, ok := src.(io.Closer); ok {
		d.closer = c
	}

	if err := d.checkHeader(); err != nil {
		return nil, err
	}
	base, buf, err := d.readTail()
	if err != nil {
		return nil, err
	}
	trailerPos, err := findTrailer(base, buf)
	if err != nil {
		return nil, err
	}
	trailer, startxref, err := d.readTrailer(trailerPos)
	if err != nil {
		return nil, err
	}
	d.trailer = trailer

	size, err := trailer.NeedU32(NameSize, InvalidPdf, "Size missing in trailer")
	if err != nil {
		return nil, err
	}
	if err := d.readXref(startxref, size); err != nil {
		return nil, err
	}

	root, err := trailer.NeedReference(NameRoot, InvalidPdf, "Root missing from trailer")
	if err != nil {
		return nil, err
	}
	catalog, err := d.readDictionary(root)
	if err != nil {
		return nil, err
	}
	pagesRef, err := catalog.NeedReference(NamePages, InvalidPdf, "document page tree missing")
	if err != nil {
		return nil, err
	}
	pagesRoot, err := d.readDictionary(pagesRef)
	if err != nil {
		return nil, err
	}
	pages, err := d.readPages(pagesRoot)
	if err != nil {
		return nil, err
	}
	d.pages = pages

	logger.Debug("document opened", "pages", len(d.pages), "xref", len(d.xref))
	return d, nil
}

// OpenFile is a convenience wrapper around NewFileSource + Open.
func OpenFile(path string) (*Document, error) {
	src, err := NewFileSource(path)
	if err != nil {
		return nil, err
	}
	doc, err := Open(src)
	if err != nil {
		src.Close()
		return nil, err
	}
	return doc, nil
}

// Close releases the underlying file handle, if any.
func (d *Document) Close() error {
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}

// PageCount returns the number of leaf pages collected from the page
// tree at Open.
func (d *Document) PageCount() int { return len(d.pages) }

func (d *Document) checkHeader() error {
	if _, err := d.src.Seek(0, SeekStart); err != nil {
		return err
	}
	buf := make([]byte, 7)
	n, err := d.src.Read(buf)
	if err != nil {
		return err
	}
	if n < 7 || string(buf) != "%PDF-1." {
		return newErr(InvalidPdf, "bad pdf header")
	}
	return nil
}

func (d *Document) readTail() (int64, []byte, error) {
	size := d.src.Size()
	window := int64(tailWindow)
	if size < window {
		window = size
	}
	base := size - window
	if base < 0 {
		base = 0
	}
	if _, err := d.src.Seek(base, SeekStart); err != nil {
		return 0, nil, err
	}
	buf := make([]byte, window)
	if _, err := d.src.Read(buf); err != nil {
		return 0, nil, err
	}
	return base, buf, nil
}

// findTrailer reverse-scans buf (whose first byte sits at absolute
// position base) for the literal "trailer", returning the absolute
// position immediately after the match.
func findTrailer(base int64, buf []byte) (int64, error) {
	needle := []byte("trailer")
	idx := bytes.LastIndex(buf, needle)
	if idx < 0 {
		return 0, newErr(InvalidPdf, "no trailer")
	}
	return base + int64(idx) + int64(len(needle)), nil
}

func (d *Document) readTrailer(pos int64) (Dictionary, int64, error) {
	if _, err := d.parser.Seek(pos, SeekStart); err != nil {
		return nil, 0, err
	}
	dict, err := d.parser.NeedDictionary()
	if err != nil {
		return nil, 0, err
	}
	if err := d.parser.NeedKeyword(KeywordStartxref); err != nil {
		return nil, 0, err
	}
	obj, err := d.parser.Next()
	if err != nil {
		return nil, 0, err
	}
	if obj == nil || obj.Kind != ObjInteger {
		return nil, 0, newErr(InvalidPdf, "startxref address expected")
	}
	return dict, obj.Int, nil
}

func (d *Document) readXref(startxref int64, size uint32) error {
	d.xref = make([]xrefEntry, size)
	for i := range d.xref {
		d.xref[i] = xrefEntry{Gen: freeGen, Position: 0}
	}
	if _, err := d.parser.Seek(startxref, SeekStart); err != nil {
		return err
	}
	if err := d.parser.NeedKeyword(KeywordXref); err != nil {
		return err
	}
	for {
		first, err := d.parser.Next()
		if err != nil {
			return err
		}
		count, err := d.parser.Next()
		if err != nil {
			return err
		}
		if first == nil || count == nil || first.Kind != ObjInteger || count.Kind != ObjInteger {
			return nil // subsection loop terminates; terminating tokens are consumed, not reused
		}
		for k := int64(0); k < count.Int; k++ {
			idx := first.Int + k
			entry, err := d.readXrefEntry()
			if err != nil {
				return err
			}
			if idx >= 0 && idx < int64(len(d.xref)) {
				d.xref[idx] = entry
			}
		}
	}
}

func (d *Document) readXrefEntry() (xrefEntry, error) {
	pos, err := d.parser.Next()
	if err != nil {
		return xrefEntry{}, err
	}
	gen, err := d.parser.Next()
	if err != nil {
		return xrefEntry{}, err
	}
	flag, err := d.parser.Next()
	if err != nil {
		return xrefEntry{}, err
	}
	if pos == nil || gen == nil || flag == nil || pos.Kind != ObjInteger ||
		gen.Kind != ObjInteger || flag.Kind != ObjKeyword {
		return xrefEntry{}, newErr(InvalidPdf, "invalid xref entry")
	}
	switch flag.Keyword {
	case KeywordN:
		return xrefEntry{Gen: uint16(gen.Int), Position: uint64(pos.Int)}, nil
	case KeywordFOp:
		return xrefEntry{Gen: freeGen, Position: 0}, nil
	default:
		return xrefEntry{}, newErr(InvalidPdf, "invalid xref entry")
	}
}

func (d *Document) readPages(node Dictionary) ([]Dictionary, error) {
	kids, err := node.NeedArray(NameKids, InvalidPdf, "Kids missing from pages node")
	if err != nil {
		return nil, err
	}
	var out []Dictionary
	for _, k := range kids {
		if k.Kind != ObjReference {
			return nil, newErr(InvalidPdf, "invalid Kids entry")
		}
		child, err := d.readDictionary(k.Ref)
		if err != nil {
			return nil, err
		}
		typ, _ := child.GetName(NameType)
		switch typ {
		case NamePages:
			sub, err := d.readPages(child)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		case NamePage:
			out = append(out, child)
		default:
			return nil, newErr(InvalidPdf, "invalid page tree entry")
		}
	}
	return out, nil
}

// seekReference validates ref against the xref table and positions the
// source at its recorded offset.
func (d *Document) seekReference(ref Reference) error {
	if ref.Gen == freeGen || int64(ref.ID) >= int64(len(d.xref)) {
		return newErr(InvalidReference, "")
	}
	entry := d.xref[ref.ID]
	if entry.Gen == freeGen {
		return newErr(InvalidReference, "")
	}
	_, err := d.parser.Seek(int64(entry.Position), SeekStart)
	return err
}

// readPrefix reads the "id gen obj" header and the object body, but
// does not expect "endobj" — used by readStream, which needs the
// stream keyword instead.
func (d *Document) readPrefix(ref Reference) (*Object, error) {
	if err := d.seekReference(ref); err != nil {
		return nil, err
	}
	if err := d.parser.NeedU32(ref.ID); err != nil {
		return nil, err
	}
	if err := d.parser.NeedU32(uint32(ref.Gen)); err != nil {
		return nil, err
	}
	if err := d.parser.NeedKeyword(KeywordObj); err != nil {
		return nil, err
	}
	obj, err := d.parser.Next()
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, newErr(InvalidPdf, "pdf object expected")
	}
	return obj, nil
}

func (d *Document) readObject(ref Reference) (*Object, error) {
	obj, err := d.readPrefix(ref)
	if err != nil {
		return nil, err
	}
	if err := d.parser.NeedKeyword(KeywordEndobj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (d *Document) readDictionary(ref Reference) (Dictionary, error) {
	obj, err := d.readObject(ref)
	if err != nil {
		return nil, err
	}
	if obj.Kind != ObjDictionary {
		return nil, newErr(InvalidPdf, "dictionary expected")
	}
	return obj.Dict, nil
}

// structural keys left untouched by dereference: resolving them eagerly
// would walk cycles real documents exhibit (Page -> Parent -> Kids ->
// Page, Contents/Resources shared across many pages).
func isStructuralKey(n NameID) bool {
	return n == NameParent || n == NameContents || n == NameResources
}

// dereference recursively resolves References inside obj, leaving the
// three structural keys of any Dictionary untouched. Errors while
// resolving a non-essential nested entry are swallowed to Null rather
// than failing the whole pass.
func (d *Document) dereference(obj Object) Object {
	switch obj.Kind {
	case ObjReference:
		if err := d.seekReference(obj.Ref); err != nil {
			return Object{Kind: ObjNull}
		}
		inner, err := d.readObject(obj.Ref)
		if err != nil {
			return Object{Kind: ObjNull}
		}
		return d.dereference(*inner)
	case ObjArray:
		out := make([]Object, len(obj.Array))
		for i, e := range obj.Array {
			out[i] = d.dereference(e)
		}
		return Object{Kind: ObjArray, Array: out}
	case ObjDictionary:
		return Object{Kind: ObjDictionary, Dict: d.dereferenceDictionary(obj.Dict)}
	default:
		return obj
	}
}

func (d *Document) dereferenceDictionary(dict Dictionary) Dictionary {
	out := make(Dictionary, len(dict))
	for k, v := range dict {
		if isStructuralKey(k) {
			out[k] = v
			continue
		}
		out[k] = d.dereference(v)
	}
	return out
}

// readStream reads the "id gen obj <dict> stream ... endstream"
// envelope at ref, applying the filter chain, and returns the decoded
// payload. The trailing "endobj" is not consumed.
func (d *Document) readStream(ref Reference) ([]byte, error) {
	if err := d.seekReference(ref); err != nil {
		return nil, err
	}
	streamObj, err := d.readPrefix(ref)
	if err != nil {
		return nil, err
	}
	if streamObj.Kind != ObjDictionary {
		return nil, newErr(InvalidPdf, "stream dictionary expected")
	}
	streamDict := streamObj.Dict

	if err := d.parser.NeedKeyword(KeywordStream); err != nil {
		return nil, err
	}
	// consume bytes until a bare '\n' ends the header line; PDF allows
	// "\r\n" or "\n" here, a bare '\r' is a known, documented deviation.
	for {
		b, ok := d.src.getch()
		if !ok {
			return nil, newErr(EndOfFile, "unterminated stream header")
		}
		if b == '\n' {
			break
		}
	}
	payloadStart, err := d.src.Seek(0, SeekCurrent)
	if err != nil {
		return nil, err
	}

	streamDict = d.dereferenceDictionary(streamDict)

	if _, err := d.src.Seek(payloadStart, SeekStart); err != nil {
		return nil, err
	}
	length, err := streamDict.NeedU32(NameLength, InvalidPdf, "Length missing from stream dictionary")
	if err != nil {
		return nil, err
	}
	raw := make([]byte, length)
	n, err := d.src.Read(raw)
	if err != nil {
		return nil, err
	}
	if uint32(n) != length {
		return nil, newErr(InvalidPdf, "failed to read stream")
	}
	if err := d.parser.NeedKeyword(KeywordEndstream); err != nil {
		return nil, err
	}
	return decodeStream(raw, streamDict)
}

// readStreams decodes each referenced stream and concatenates them in
// order, separated by a newline so that no token spans two streams.
func (d *Document) readStreams(refs []Object) ([]byte, error) {
	var out []byte
	for i, r := range refs {
		if r.Kind != ObjReference {
			return nil, newErr(InvalidPdf, "invalid page contents")
		}
		bytes, err := d.readStream(r.Ref)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, bytes...)
	}
	return out, nil
}

// contents resolves a page dictionary's /Contents entry to decoded
// bytes, concatenating when it is an array of streams.
func (d *Document) contents(pageDict Dictionary) ([]byte, error) {
	c, ok := pageDict[NameContents]
	if !ok {
		return nil, newErr(InvalidPdf, "invalid page contents")
	}
	switch c.Kind {
	case ObjReference:
		return d.readStream(c.Ref)
	case ObjArray:
		return d.readStreams(c.Array)
	default:
		return nil, newErr(InvalidPdf, "invalid page contents")
	}
}

// PageContents fetches, decodes, and wraps page i's content stream(s)
// in a ContentIterator. i is 0-based.
func (d *Document) PageContents(i int) (*ContentIterator, error) {
	if i < 0 || i >= len(d.pages) {
		return nil, newErr(InvalidPageNumber, "")
	}
	pageDict := d.pages[i].Clone()
	raw, err := d.contents(pageDict)
	if err != nil {
		return nil, err
	}
	return newContentIterator(raw), nil
}

// PageDict returns a clone of page i's raw dictionary (0-based).
func (d *Document) PageDict(i int) (Dictionary, error) {
	if i < 0 || i >= len(d.pages) {
		return nil, newErr(InvalidPageNumber, "")
	}
	return d.pages[i].Clone(), nil
}
