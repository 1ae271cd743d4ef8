// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteSourceGetchBackup(t *testing.T) {
	src := NewByteSource([]byte("ab"))

	b, ok := src.getch()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)

	src.backup()
	b, ok = src.getch()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)

	b, ok = src.getch()
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)

	_, ok = src.getch()
	assert.False(t, ok)
}

func TestByteSourceBackupAtZeroIsNoOp(t *testing.T) {
	src := NewByteSource([]byte("a"))
	src.backup()
	b, ok := src.getch()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)
}

func TestByteSourceSeek(t *testing.T) {
	src := NewByteSource([]byte("hello"))
	pos, err := src.Seek(2, SeekStart)
	require.NoError(t, err)
	assert.EqualValues(t, 2, pos)

	buf := make([]byte, 3)
	n, err := src.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "llo", string(buf))
}

func TestByteSourceSize(t *testing.T) {
	src := NewByteSource([]byte("12345"))
	assert.EqualValues(t, 5, src.Size())
}
