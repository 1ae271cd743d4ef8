// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dictOf(t *testing.T, text string) Dictionary {
	t.Helper()
	return nextRaw(t, parserOf(text)).Dict
}

func TestDictGetNamePeekDoesNotMutate(t *testing.T) {
	d := dictOf(t, "<< /Type /Page >> ")
	name, ok := d.GetName(NameType)
	require.True(t, ok)
	assert.Equal(t, NamePage, name)
	_, stillThere := d[NameType]
	assert.True(t, stillThere)
}

func TestDictWantU32RemovesEntry(t *testing.T) {
	d := dictOf(t, "<< /Size 7 >> ")
	v, ok := d.WantU32(NameSize)
	require.True(t, ok)
	assert.EqualValues(t, 7, v)
	_, stillThere := d[NameSize]
	assert.False(t, stillThere)
}

func TestDictWantNumberAcceptsIntegerOrReal(t *testing.T) {
	d := dictOf(t, "<< /Rotate 1 /UserUnit 2.5 >> ")
	a, ok := d.WantNumber(NameRotate)
	require.True(t, ok)
	assert.Equal(t, 1.0, a)
	b, ok := d.WantNumber(NameUserUnit)
	require.True(t, ok)
	assert.Equal(t, 2.5, b)
}

func TestDictNeedReferenceMissing(t *testing.T) {
	d := dictOf(t, "<< /Size 7 >> ")
	_, err := d.NeedReference(NameRoot, InvalidPdf, "Root missing from trailer")
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidPdf))
}

func TestDictCloneIsIndependent(t *testing.T) {
	d := dictOf(t, "<< /Size 7 >> ")
	clone := d.Clone()
	clone.WantU32(NameSize)
	_, stillInOriginal := d[NameSize]
	assert.True(t, stillInOriginal)
}
