// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kestrel-data/pdflex/logger"
)

// ParsingMode selects how the Processor reacts to a page-level error.
type ParsingMode string

const (
	Strict     ParsingMode = "strict"
	BestEffort ParsingMode = "best-effort"
)

// Config governs Processor's concurrency and failure handling. Struct
// tags are enforced by Validate via validator/v10.
type Config struct {
	MaxConcurrentPDFs int           `validate:"min=1,max=10"`
	MaxWorkersPerPDF  int           `validate:"min=1,max=10"`
	WorkerTimeout     time.Duration `validate:"required"`
	ParsingMode       ParsingMode   `validate:"oneof=strict best-effort"`
	MaxRetries        int           `validate:"min=0,max=3"`
	MaxTotalTokens    int           `validate:"min=0"`
	DebugOn           bool
	Logger            logger.LogFunc
}

// NewDefaultConfig returns sane defaults matching the teacher's own
// tuning: one worker per document (since page extraction within one
// document is serialized anyway), bounded retries, no token cap.
func NewDefaultConfig() *Config {
	return &Config{
		MaxConcurrentPDFs: 5,
		MaxWorkersPerPDF:  1,
		WorkerTimeout:     5 * time.Second,
		ParsingMode:       BestEffort,
		MaxRetries:        3,
		MaxTotalTokens:    0,
		DebugOn:           false,
	}
}

// Validate checks cfg against its struct tags.
func (cfg *Config) Validate() error {
	logger.Debug("Validating Config Object")
	validate := validator.New()
	return validate.Struct(cfg)
}
