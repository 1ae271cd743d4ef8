// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaultValidates(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConfigRejectsZeroWorkerTimeout(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.WorkerTimeout = 0
	require.Error(t, cfg.Validate())
}

func TestConfigRejectsBadParsingMode(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.ParsingMode = ParsingMode("sloppy")
	require.Error(t, cfg.Validate())
}

func TestConfigRejectsOutOfRangeConcurrency(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.MaxConcurrentPDFs = 0
	require.Error(t, cfg.Validate())

	cfg = NewDefaultConfig()
	cfg.MaxConcurrentPDFs = 11
	require.Error(t, cfg.Validate())
}

func TestConfigAcceptsStrictMode(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.ParsingMode = Strict
	cfg.WorkerTimeout = time.Second
	assert.NoError(t, cfg.Validate())
}
