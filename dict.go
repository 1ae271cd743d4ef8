// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

// This file implements the two typed-extractor families spec.md §4.5
// calls for: "peek" (get*, non-mutating) and "take" (want*, removing),
// plus a "need" family that returns the caller's error kind when the
// entry is absent or the wrong type.

// GetName peeks at a Name-valued entry without removing it.
func (d Dictionary) GetName(n NameID) (NameID, bool) {
	o, ok := d[n]
	if !ok || o.Kind != ObjName {
		return NameUnknown, false
	}
	return o.Name, true
}

// GetReference peeks at a Reference-valued entry without removing it.
func (d Dictionary) GetReference(n NameID) (Reference, bool) {
	o, ok := d[n]
	if !ok || o.Kind != ObjReference {
		return Reference{}, false
	}
	return o.Ref, true
}

// WantI32 removes and returns an Integer entry as an int32.
func (d Dictionary) WantI32(n NameID) (int32, bool) {
	o, ok := d[n]
	if !ok || o.Kind != ObjInteger {
		return 0, false
	}
	delete(d, n)
	return int32(o.Int), true
}

// WantU32 removes and returns an Integer entry as a uint32.
func (d Dictionary) WantU32(n NameID) (uint32, bool) {
	o, ok := d[n]
	if !ok || o.Kind != ObjInteger {
		return 0, false
	}
	delete(d, n)
	return uint32(o.Int), true
}

// WantU64 removes and returns an Integer entry as a uint64.
func (d Dictionary) WantU64(n NameID) (uint64, bool) {
	o, ok := d[n]
	if !ok || o.Kind != ObjInteger {
		return 0, false
	}
	delete(d, n)
	return uint64(o.Int), true
}

// WantString removes and returns a String entry.
func (d Dictionary) WantString(n NameID) ([]byte, bool) {
	o, ok := d[n]
	if !ok || o.Kind != ObjString {
		return nil, false
	}
	delete(d, n)
	return o.Str, true
}

// WantName removes and returns a Name entry.
func (d Dictionary) WantName(n NameID) (NameID, bool) {
	o, ok := d[n]
	if !ok || o.Kind != ObjName {
		return NameUnknown, false
	}
	delete(d, n)
	return o.Name, true
}

// WantSymbol removes and returns a Symbol entry.
func (d Dictionary) WantSymbol(n NameID) (string, bool) {
	o, ok := d[n]
	if !ok || o.Kind != ObjSymbol {
		return "", false
	}
	delete(d, n)
	return o.Symbol, true
}

// WantNumber removes and returns a Number (Integer or Real) entry as a
// float64.
func (d Dictionary) WantNumber(n NameID) (float64, bool) {
	o, ok := d[n]
	if !ok {
		return 0, false
	}
	switch o.Kind {
	case ObjInteger:
		delete(d, n)
		return float64(o.Int), true
	case ObjReal:
		delete(d, n)
		return o.Real, true
	}
	return 0, false
}

// WantReference removes and returns a Reference entry.
func (d Dictionary) WantReference(n NameID) (Reference, bool) {
	o, ok := d[n]
	if !ok || o.Kind != ObjReference {
		return Reference{}, false
	}
	delete(d, n)
	return o.Ref, true
}

// WantArray removes and returns an Array entry.
func (d Dictionary) WantArray(n NameID) ([]Object, bool) {
	o, ok := d[n]
	if !ok || o.Kind != ObjArray {
		return nil, false
	}
	delete(d, n)
	return o.Array, true
}

// WantDictionary removes and returns a Dictionary entry.
func (d Dictionary) WantDictionary(n NameID) (Dictionary, bool) {
	o, ok := d[n]
	if !ok || o.Kind != ObjDictionary {
		return nil, false
	}
	delete(d, n)
	return o.Dict, true
}

// NeedU32 is WantU32, failing with kind/detail when absent or mistyped.
func (d Dictionary) NeedU32(n NameID, kind Kind, detail string) (uint32, error) {
	v, ok := d.WantU32(n)
	if !ok {
		return 0, newErr(kind, detail)
	}
	return v, nil
}

// NeedReference is WantReference, failing with kind/detail when absent
// or mistyped.
func (d Dictionary) NeedReference(n NameID, kind Kind, detail string) (Reference, error) {
	v, ok := d.WantReference(n)
	if !ok {
		return Reference{}, newErr(kind, detail)
	}
	return v, nil
}

// NeedDictionary is WantDictionary, failing with kind/detail when absent
// or mistyped.
func (d Dictionary) NeedDictionary(n NameID, kind Kind, detail string) (Dictionary, error) {
	v, ok := d.WantDictionary(n)
	if !ok {
		return nil, newErr(kind, detail)
	}
	return v, nil
}

// NeedArray is WantArray, failing with kind/detail when absent or
// mistyped.
func (d Dictionary) NeedArray(n NameID, kind Kind, detail string) ([]Object, error) {
	v, ok := d.WantArray(n)
	if !ok {
		return nil, newErr(kind, detail)
	}
	return v, nil
}

// Clone returns a shallow copy of d, used by the document layer when a
// dictionary must be handed out without letting callers mutate the
// owner's copy via the take-family helpers.
func (d Dictionary) Clone() Dictionary {
	out := make(Dictionary, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
