// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

// ObjKind tags the variants of the PDF object algebra. There is
// deliberately no Stream variant: a stream's decoded bytes are returned
// by a separate code path (Document.readStream), never as a PdfObject.
type ObjKind int

const (
	ObjNull ObjKind = iota
	ObjKeyword
	ObjBoolean
	ObjInteger
	ObjReal
	ObjString
	ObjName
	ObjSymbol
	ObjArray
	ObjDictionary
	ObjReference
)

// Reference identifies an indirect object by (id, gen). gen == 0xFFFF
// conventionally marks a free xref slot.
type Reference struct {
	ID  uint32
	Gen uint16
}

const freeGen uint16 = 0xFFFF

// Object is the tagged PDF value. Only the field matching Kind is
// meaningful.
type Object struct {
	Kind    ObjKind
	Keyword KeywordID
	Bool    bool
	Int     int64
	Real    float64
	Str     []byte
	Name    NameID
	Symbol  string
	Array   []Object
	Dict    Dictionary
	Ref     Reference
}

func (o Object) IsNull() bool { return o.Kind == ObjNull }

// Dictionary maps interned Names to Objects. Unknown names (Symbols)
// cannot be dictionary keys; they are silently discarded when a
// dictionary is built from a token stream.
type Dictionary map[NameID]Object

// Parser folds a Tokenizer's output into the recursive PdfObject
// algebra, including the postfix "id gen R" reference form.
type Parser struct {
	tok *Tokenizer
}

func NewParser(src Source) *Parser { return &Parser{tok: NewTokenizer(src)} }

// Seek repositions the underlying source.
func (p *Parser) Seek(offset int64, whence int) (int64, error) {
	return p.tok.src.Seek(offset, whence)
}

// Next returns the next object, or (nil, nil) at a structural boundary
// (EndArray/EndDictionary) or clean EOF.
func (p *Parser) Next() (*Object, error) {
	t, err := p.tok.Next()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	switch t.Type {
	case TokKeyword:
		switch t.Keyword {
		case KeywordNull:
			return &Object{Kind: ObjNull}, nil
		case KeywordTrue:
			return &Object{Kind: ObjBoolean, Bool: true}, nil
		case KeywordFalse:
			return &Object{Kind: ObjBoolean, Bool: false}, nil
		default:
			return &Object{Kind: ObjKeyword, Keyword: t.Keyword}, nil
		}
	case TokInteger:
		return &Object{Kind: ObjInteger, Int: t.Int}, nil
	case TokReal:
		return &Object{Kind: ObjReal, Real: t.Real}, nil
	case TokName:
		return &Object{Kind: ObjName, Name: t.Name}, nil
	case TokSymbol:
		return &Object{Kind: ObjSymbol, Symbol: t.NameText}, nil
	case TokString:
		return &Object{Kind: ObjString, Str: t.Str}, nil
	case TokBeginArray:
		return p.array()
	case TokBeginDictionary:
		return p.dictionary()
	case TokEndArray, TokEndDictionary:
		return nil, nil
	default:
		return nil, newErr(InternalError, "unreachable token type")
	}
}

func (p *Parser) array() (*Object, error) {
	var elems []Object
	for {
		obj, err := p.Next()
		if err != nil {
			return nil, err
		}
		if obj == nil {
			return &Object{Kind: ObjArray, Array: elems}, nil
		}
		if obj.Kind == ObjKeyword && obj.Keyword == KeywordR {
			ref, err := foldReference(elems)
			if err != nil {
				return nil, err
			}
			elems = append(elems[:len(elems)-2], *ref)
			continue
		}
		elems = append(elems, *obj)
	}
}

func (p *Parser) dictionary() (*Object, error) {
	var flat []Object
	for {
		obj, err := p.Next()
		if err != nil {
			return nil, err
		}
		if obj == nil {
			if len(flat)%2 != 0 {
				flat = append(flat, Object{Kind: ObjNull})
			}
			d := Dictionary{}
			for len(flat) > 0 {
				value := flat[len(flat)-1]
				name := flat[len(flat)-2]
				flat = flat[:len(flat)-2]
				switch name.Kind {
				case ObjName:
					d[name.Name] = value
				case ObjSymbol:
					// unrecognized key: silently discarded
				default:
					return nil, newErr(InvalidPdf, "malformed dictionary")
				}
			}
			return &Object{Kind: ObjDictionary, Dict: d}, nil
		}
		if obj.Kind == ObjKeyword && obj.Keyword == KeywordR {
			ref, err := foldReference(flat)
			if err != nil {
				return nil, err
			}
			flat = append(flat[:len(flat)-2], *ref)
			continue
		}
		flat = append(flat, *obj)
	}
}

// foldReference reaches back two positions in buf (id then gen, in push
// order) and folds them into a Reference, per the postfix "id gen R"
// PDF syntax.
func foldReference(buf []Object) (*Object, error) {
	if len(buf) < 2 {
		return nil, newErr(InvalidPdf, "not enough arguments for R")
	}
	id := buf[len(buf)-2]
	gen := buf[len(buf)-1]
	if id.Kind != ObjInteger || gen.Kind != ObjInteger {
		return nil, newErr(InvalidPdf, "invalid arguments to R")
	}
	return &Object{Kind: ObjReference, Ref: Reference{ID: uint32(id.Int), Gen: uint16(gen.Int)}}, nil
}

// NeedKeyword consumes the next object and fails unless it is exactly
// Keyword(k).
func (p *Parser) NeedKeyword(k KeywordID) error {
	obj, err := p.Next()
	if err != nil {
		return err
	}
	if obj == nil || obj.Kind != ObjKeyword || obj.Keyword != k {
		return newErr(KeywordExpected, k.String())
	}
	return nil
}

// NeedU32 consumes the next object and fails unless it is Integer(v).
func (p *Parser) NeedU32(v uint32) error {
	obj, err := p.Next()
	if err != nil {
		return err
	}
	if obj == nil || obj.Kind != ObjInteger || obj.Int != int64(v) {
		return newErr(InvalidReferenceTarget, "")
	}
	return nil
}

// NeedDictionary consumes the next object and fails unless it is a
// Dictionary.
func (p *Parser) NeedDictionary() (Dictionary, error) {
	obj, err := p.Next()
	if err != nil {
		return nil, err
	}
	if obj == nil || obj.Kind != ObjDictionary {
		return nil, newErr(InvalidPdf, "dictionary expected")
	}
	return obj.Dict, nil
}
