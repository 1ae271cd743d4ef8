// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inheritancePDF = "%PDF-1.1\n" +
	"1 0 obj<</Type/Catalog/Pages 2 0 R>>\nendobj\n" +
	"2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1/MediaBox[0 0 200 300]/Rotate 90>>\nendobj\n" +
	"3 0 obj<</Type/Page/Parent 2 0 R/Contents 4 0 R>>\nendobj\n" +
	"4 0 obj<</Length 0>>stream\n\nendstream\nendobj\n" +
	"xref\n0 5\n" +
	"0000000000 65535 f \n" +
	"0000000009 00000 n \n" +
	"0000000053 00000 n \n" +
	"0000000135 00000 n \n" +
	"0000000192 00000 n \n" +
	"trailer\n<</Size 5/Root 1 0 R>>\nstartxref\n237\n%%EOF"

func TestTypedCatalog(t *testing.T) {
	doc := openBytes(t, minimalPDF)
	cat, err := doc.Catalog()
	require.NoError(t, err)
	assert.Equal(t, Reference{ID: 2, Gen: 0}, cat.Pages)
	assert.Nil(t, cat.Outlines)
	assert.Nil(t, cat.Metadata)
}

func TestTypedPageInfoInheritsFromParent(t *testing.T) {
	doc := openBytes(t, inheritancePDF)
	info, err := doc.PageInfo(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 200, 300}, info.MediaBox)
	assert.Equal(t, int32(90), info.Rotate)
}
