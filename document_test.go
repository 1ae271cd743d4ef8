// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalPDF is a synthetic, internally-consistent single-page PDF: a
// Catalog -> Pages -> Page tree with one content stream that positions
// and shows "Hello World". Offsets below match byte-for-byte.
const minimalPDF = "%PDF-1.1\n" +
	"1 0 obj<</Type/Catalog/Pages 2 0 R>>\nendobj\n" +
	"2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1>>\nendobj\n" +
	"3 0 obj<</Type/Page/Parent 2 0 R/Resources<</Font<</F1 5 0 R>>>>/MediaBox[0 0 612 792]/Contents 4 0 R>>\nendobj\n" +
	"4 0 obj<</Length 55>>stream\n  BT\n    /F1 18 Tf\n    0 0 Td\n    (Hello World) Tj\n  ET\nendstream\nendobj\n" +
	"xref\n0 5\n" +
	"0000000000 65535 f \n" +
	"0000000009 00000 n \n" +
	"0000000053 00000 n \n" +
	"0000000103 00000 n \n" +
	"0000000214 00000 n \n" +
	"trailer\n<</Size 5/Root 1 0 R>>\nstartxref\n315\n%%EOF"

// multiStreamPDF has one page whose /Contents is an array of two
// streams, exercising readStreams' ordered concatenation.
const multiStreamPDF = "%PDF-1.1\n" +
	"1 0 obj<</Type/Catalog/Pages 2 0 R>>\nendobj\n" +
	"2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1>>\nendobj\n" +
	"3 0 obj<</Type/Page/Parent 2 0 R/MediaBox[0 0 100 100]/Contents[4 0 R 5 0 R]>>\nendobj\n" +
	"4 0 obj<</Length 2>>stream\nBT\nendstream\nendobj\n" +
	"5 0 obj<</Length 2>>stream\nET\nendstream\nendobj\n" +
	"xref\n0 6\n" +
	"0000000000 65535 f \n" +
	"0000000009 00000 n \n" +
	"0000000053 00000 n \n" +
	"0000000103 00000 n \n" +
	"0000000189 00000 n \n" +
	"0000000236 00000 n \n" +
	"trailer\n<</Size 6/Root 1 0 R>>\nstartxref\n283\n%%EOF"

func openBytes(t *testing.T, text string) *Document {
	t.Helper()
	doc, err := Open(NewByteSource([]byte(text)))
	require.NoError(t, err)
	return doc
}

func TestDocumentOpenMinimal(t *testing.T) {
	doc := openBytes(t, minimalPDF)
	assert.Equal(t, 1, doc.PageCount())
}

func TestDocumentTrailer(t *testing.T) {
	doc := openBytes(t, minimalPDF)
	tr := doc.Trailer()
	assert.EqualValues(t, 5, tr.Size)
	assert.Equal(t, Reference{ID: 1, Gen: 0}, tr.Root)
	assert.Nil(t, tr.Prev)
}

func TestDocumentPageContentsTokenSequence(t *testing.T) {
	doc := openBytes(t, minimalPDF)
	it, err := doc.PageContents(0)
	require.NoError(t, err)

	var names []string
	var keywords []string
	for {
		obj, err := it.NextObject()
		require.NoError(t, err)
		if obj == nil {
			break
		}
		switch obj.Kind {
		case ObjName:
			names = append(names, obj.Name.String())
		case ObjKeyword:
			keywords = append(keywords, obj.Keyword.String())
		}
	}
	assert.Contains(t, keywords, "Tf")
	assert.Contains(t, keywords, "Td")
	assert.Contains(t, keywords, "Tj")
	assert.Contains(t, keywords, "BT")
	assert.Contains(t, keywords, "ET")
}

func TestDocumentPageContentsStringOperand(t *testing.T) {
	doc := openBytes(t, minimalPDF)
	it, err := doc.PageContents(0)
	require.NoError(t, err)

	var found bool
	for {
		obj, err := it.NextObject()
		require.NoError(t, err)
		if obj == nil {
			break
		}
		if obj.Kind == ObjString && string(obj.Str) == "Hello World" {
			found = true
		}
	}
	assert.True(t, found, "expected to find the (Hello World) string operand")
}

func TestDocumentContentIteratorNotRestartable(t *testing.T) {
	doc := openBytes(t, minimalPDF)
	it, err := doc.PageContents(0)
	require.NoError(t, err)
	for {
		obj, err := it.NextObject()
		require.NoError(t, err)
		if obj == nil {
			break
		}
	}
	obj, err := it.NextObject()
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestDocumentBadHeaderRejected(t *testing.T) {
	_, err := Open(NewByteSource([]byte("not a pdf at all")))
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidPdf))
}

func TestDocumentInvalidPageNumber(t *testing.T) {
	doc := openBytes(t, minimalPDF)
	_, err := doc.PageContents(1)
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidPageNumber))

	_, err = doc.PageContents(-1)
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidPageNumber))
}

func TestDocumentMultiStreamConcatenation(t *testing.T) {
	doc := openBytes(t, multiStreamPDF)
	it, err := doc.PageContents(0)
	require.NoError(t, err)

	var keywords []string
	for {
		obj, err := it.NextObject()
		require.NoError(t, err)
		if obj == nil {
			break
		}
		if obj.Kind == ObjKeyword {
			keywords = append(keywords, obj.Keyword.String())
		}
	}
	assert.Equal(t, []string{"BT", "ET"}, keywords)
}

func TestDocumentPageDictLeavesReferencesUnresolved(t *testing.T) {
	doc := openBytes(t, minimalPDF)
	dict, err := doc.PageDict(0)
	require.NoError(t, err)

	res, ok := dict[NameResources]
	require.True(t, ok)
	require.Equal(t, ObjDictionary, res.Kind)

	fontDict, ok := res.Dict[lookupMust("Font")]
	require.True(t, ok)
	require.Equal(t, ObjDictionary, fontDict.Kind)

	// /F1 is not a well-known name, so the parser drops it as a
	// dictionary key and the font dictionary comes back empty.
	assert.Empty(t, fontDict.Dict)

	contents, ok := dict[NameContents]
	require.True(t, ok)
	// Page dictionaries are handed out as parsed, with no eager
	// dereference pass, so /Contents stays an unresolved Reference.
	assert.Equal(t, ObjReference, contents.Kind)
	assert.Equal(t, Reference{ID: 4, Gen: 0}, contents.Ref)
}

func TestDocumentPageInfoGeometry(t *testing.T) {
	doc := openBytes(t, minimalPDF)
	info, err := doc.PageInfo(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 612, 792}, info.MediaBox)
	assert.Equal(t, int32(0), info.Rotate)
}
