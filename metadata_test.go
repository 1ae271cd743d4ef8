// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const infoOnlyPDF = "%PDF-1.1\n" +
	"1 0 obj<</Type/Catalog/Pages 2 0 R>>\nendobj\n" +
	"2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1>>\nendobj\n" +
	"3 0 obj<</Type/Page/Parent 2 0 R/Contents 4 0 R>>\nendobj\n" +
	"4 0 obj<</Length 0>>stream\n\nendstream\nendobj\n" +
	"5 0 obj<</Title(My Title)/Author(Jane Doe)/Producer(Acme)>>\nendobj\n" +
	"xref\n0 6\n" +
	"0000000000 65535 f \n" +
	"0000000009 00000 n \n" +
	"0000000053 00000 n \n" +
	"0000000103 00000 n \n" +
	"0000000160 00000 n \n" +
	"0000000205 00000 n \n" +
	"trailer\n<</Size 6/Root 1 0 R/Info 5 0 R>>\nstartxref\n272\n%%EOF"

const noPermissionPDF = "%PDF-1.1\n" +
	"1 0 obj<</Type/Catalog/Pages 2 0 R>>\nendobj\n" +
	"2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1>>\nendobj\n" +
	"3 0 obj<</Type/Page/Parent 2 0 R/Contents 4 0 R>>\nendobj\n" +
	"4 0 obj<</Length 0>>stream\n\nendstream\nendobj\n" +
	"5 0 obj<</P 0>>\nendobj\n" +
	"xref\n0 6\n" +
	"0000000000 65535 f \n" +
	"0000000009 00000 n \n" +
	"0000000053 00000 n \n" +
	"0000000103 00000 n \n" +
	"0000000160 00000 n \n" +
	"0000000205 00000 n \n" +
	"trailer\n<</Size 6/Root 1 0 R/Encrypt 5 0 R>>\nstartxref\n228\n%%EOF"

func TestMetadataInfoOnly(t *testing.T) {
	doc := openBytes(t, infoOnlyPDF)
	meta, err := doc.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "My Title", meta.Title)
	assert.Equal(t, "Jane Doe", meta.Author)
	assert.Equal(t, "Acme", meta.Producer)
}

func TestMetadataFullReportsPageCountAndNoXMP(t *testing.T) {
	doc := openBytes(t, infoOnlyPDF)
	mf, err := doc.MetadataFull()
	require.NoError(t, err)
	assert.False(t, mf.HasXMP)
	assert.False(t, mf.Encrypted)
	assert.Equal(t, 1, mf.NPages)
}

func TestMetadataNoEncryptAllPermissionsTrue(t *testing.T) {
	doc := openBytes(t, minimalPDF)
	ap := doc.accessPermissions()
	assert.True(t, ap.CanPrint)
	assert.True(t, ap.CanModify)
	assert.True(t, ap.ExtractContent)
	assert.True(t, ap.AssembleDocument)
}

func TestMetadataEncryptedZeroPermissionBitsAllFalse(t *testing.T) {
	doc := openBytes(t, noPermissionPDF)
	mf, err := doc.MetadataFull()
	require.NoError(t, err)
	assert.True(t, mf.Encrypted)
	ap := mf.AccessPermission
	assert.False(t, ap.CanPrint)
	assert.False(t, ap.CanModify)
	assert.False(t, ap.ExtractContent)
	assert.False(t, ap.ModifyAnnotations)
	assert.False(t, ap.FillInForm)
	assert.False(t, ap.ExtractForAccessibility)
	assert.False(t, ap.AssembleDocument)
	assert.False(t, ap.CanPrintFaithful)
}
