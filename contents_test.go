// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentIteratorRoundTrip(t *testing.T) {
	it := newContentIterator([]byte("1 0 0 1 0 0 cm /F1 12 Tf"))

	obj, err := it.NextObject()
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, ObjInteger, obj.Kind)

	var last *Object
	for {
		obj, err := it.NextObject()
		require.NoError(t, err)
		if obj == nil {
			break
		}
		last = obj
	}
	require.NotNil(t, last)
	assert.Equal(t, ObjKeyword, last.Kind)
	assert.Equal(t, KeywordTf, last.Keyword)
}

func TestContentIteratorEmptyStream(t *testing.T) {
	it := newContentIterator([]byte(""))
	obj, err := it.NextObject()
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestContentIteratorExhaustedStaysExhausted(t *testing.T) {
	it := newContentIterator([]byte("true"))
	obj, err := it.NextObject()
	require.NoError(t, err)
	require.NotNil(t, obj)

	for i := 0; i < 3; i++ {
		obj, err := it.NextObject()
		require.NoError(t, err)
		assert.Nil(t, obj)
	}
}
