// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

// Trailer is a typed projection of the trailer dictionary, grounded on
// original_source's trailer.rs. Built lazily; does not change xref or
// page-tree semantics.
type Trailer struct {
	Size    uint32
	Prev    *uint64
	Root    Reference
	Encrypt Dictionary
	Info    Dictionary
	ID      []Object
}

// Trailer projects the raw trailer dictionary captured at Open.
func (d *Document) Trailer() Trailer {
	t := d.trailer.Clone()
	out := Trailer{}
	out.Size, _ = t.WantU32(NameSize)
	if prev, ok := t.WantU64(NamePrev); ok {
		out.Prev = &prev
	}
	out.Root, _ = t.WantReference(NameRoot)
	out.Encrypt = d.wantDictionaryOrReference(t, NameEncrypt)
	out.Info = d.wantDictionaryOrReference(t, NameInfo)
	out.ID, _ = t.WantArray(NameID_)
	return out
}

// wantDictionaryOrReference resolves n from t whether it was stored
// inline or, as is conventional for /Encrypt and /Info, as an indirect
// reference.
func (d *Document) wantDictionaryOrReference(t Dictionary, n NameID) Dictionary {
	if dict, ok := t.WantDictionary(n); ok {
		return dict
	}
	if ref, ok := t.WantReference(n); ok {
		dict, err := d.readDictionary(ref)
		if err == nil {
			return dict
		}
	}
	return nil
}

// Catalog is a typed projection of the document catalog, grounded on
// original_source's catalog.rs, narrowed to the entries a read-only
// parser plausibly needs.
type Catalog struct {
	Pages      Reference
	PageLayout NameID
	PageMode   NameID
	Outlines   *Reference
	Metadata   *Reference
	Lang       []byte
}

// Catalog re-reads and projects the /Root catalog dictionary.
func (d *Document) Catalog() (Catalog, error) {
	root, err := d.trailer.NeedReference(NameRoot, InvalidPdf, "Root missing from trailer")
	if err != nil {
		return Catalog{}, err
	}
	dict, err := d.readDictionary(root)
	if err != nil {
		return Catalog{}, err
	}
	out := Catalog{}
	out.Pages, _ = dict.WantReference(NamePages)
	out.PageLayout, _ = dict.WantName(NamePageLayout)
	out.PageMode, _ = dict.WantName(NamePageMode)
	if r, ok := dict.WantReference(NameOutlines); ok {
		out.Outlines = &r
	}
	if r, ok := dict.WantReference(NameMetadata); ok {
		out.Metadata = &r
	}
	out.Lang, _ = dict.WantString(NameLang)
	return out, nil
}

// PageInfo is a typed projection of a leaf page dictionary's geometry,
// grounded on original_source's pages.rs Page struct, narrowed to the
// fields a read-only parser plausibly needs. MediaBox/CropBox/Rotate
// inherit from /Parent chains per the PDF inheritance rule when absent
// on the leaf itself.
type PageInfo struct {
	MediaBox  []float64
	CropBox   []float64
	Rotate    int32
	Resources Dictionary
	Dict      Dictionary
}

// PageInfo builds the typed geometry view for page i (0-based),
// resolving inherited attributes up the /Parent chain.
func (d *Document) PageInfo(i int) (PageInfo, error) {
	dict, err := d.PageDict(i)
	if err != nil {
		return PageInfo{}, err
	}
	out := PageInfo{Dict: dict}
	out.MediaBox = d.inheritedBox(dict, NameMediaBox)
	out.CropBox = d.inheritedBox(dict, NameCropBox)
	out.Rotate = d.inheritedRotate(dict)
	if res, ok := dict[NameResources]; ok && res.Kind == ObjDictionary {
		out.Resources = res.Dict
	}
	return out, nil
}

func (d *Document) inheritedBox(dict Dictionary, key NameID) []float64 {
	for node := dict; node != nil; {
		if arr, ok := node[key]; ok && arr.Kind == ObjArray && len(arr.Array) == 4 {
			box := make([]float64, 4)
			for i, e := range arr.Array {
				switch e.Kind {
				case ObjInteger:
					box[i] = float64(e.Int)
				case ObjReal:
					box[i] = e.Real
				}
			}
			return box
		}
		node = d.parentOf(node)
	}
	return nil
}

func (d *Document) inheritedRotate(dict Dictionary) int32 {
	for node := dict; node != nil; {
		if r, ok := node[NameRotate]; ok && r.Kind == ObjInteger {
			return int32(r.Int)
		}
		node = d.parentOf(node)
	}
	return 0
}

func (d *Document) parentOf(dict Dictionary) Dictionary {
	ref, ok := dict.GetReference(NameParent)
	if !ok {
		return nil
	}
	parent, err := d.readDictionary(ref)
	if err != nil {
		return nil
	}
	return parent
}
