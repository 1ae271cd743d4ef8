// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/kestrel-data/pdflex/logger"
	"golang.org/x/sync/semaphore"
)

// PageResult is one page's outcome within a FileResult.
type PageResult struct {
	Index      int
	TokenCount int
	Err        error
}

// FileResult is one file's outcome from Processor.ProcessFiles.
type FileResult struct {
	Path  string
	Pages []PageResult
	Err   error
}

// ExtractorStrategy decides how a failed page affects the rest of a
// file's extraction.
type ExtractorStrategy interface {
	// handlePageError returns the error to record for a page (nil means
	// "swallow it and continue"), and whether the whole file should stop.
	handlePageError(pageIndex int, err error) (recorded error, abortFile bool)
}

// StrictExtractor fails the whole file on a page error: the file's
// result carries the first page error. The remaining pages are still
// processed; the processor does not stop early.
type StrictExtractor struct{}

func (StrictExtractor) handlePageError(pageIndex int, err error) (error, bool) {
	return err, true
}

// BestEffortExtractor records the page error but keeps going.
type BestEffortExtractor struct{}

func (BestEffortExtractor) handlePageError(pageIndex int, err error) (error, bool) {
	logger.Debug("best-effort: skipping page", "page", pageIndex, "err", err, true)
	return err, false
}

// Processor processes many whole PDF files concurrently, bounded by
// Config.MaxConcurrentPDFs. Each worker owns one file end to end (its
// own Document/Source/SafeDocument), so unlike a design that shares one
// Document across goroutines, the only cross-goroutine sharing here is
// through a SafeDocument's mutex, and a single document's pages are
// only ever touched sequentially.
type Processor struct {
	cfg       *Config
	sem       *semaphore.Weighted
	extractor ExtractorStrategy
}

// NewProcessor validates cfg and builds a Processor using the
// ExtractorStrategy implied by cfg.ParsingMode.
func NewProcessor(cfg *Config) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}

	var extractor ExtractorStrategy
	switch cfg.ParsingMode {
	case Strict:
		extractor = StrictExtractor{}
	case BestEffort:
		extractor = BestEffortExtractor{}
	default:
		return nil, newErr(InternalError, "unknown parsing mode")
	}

	logger.Debug(fmt.Sprintf("processor initialized: parsing_mode=%v max_concurrent_pdfs=%d",
		cfg.ParsingMode, cfg.MaxConcurrentPDFs), true)

	return &Processor{
		cfg:       cfg,
		sem:       semaphore.NewWeighted(int64(cfg.MaxConcurrentPDFs)),
		extractor: extractor,
	}, nil
}

// ProcessFiles processes paths concurrently (bounded by
// Config.MaxConcurrentPDFs) and returns one FileResult per path, in the
// same order as paths.
func (p *Processor) ProcessFiles(ctx context.Context, paths []string) ([]FileResult, error) {
	out := make([]FileResult, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			return out, wrapErr(InternalError, "acquire slot", err)
		}
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer p.sem.Release(1)
			out[i] = p.processFile(ctx, path)
		}(i, path)
	}
	wg.Wait()
	return out, nil
}

func (p *Processor) processFile(ctx context.Context, path string) FileResult {
	logger.Debug(fmt.Sprintf("opening %s", path), true)
	doc, err := OpenFile(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	safe := NewSafeDocument(doc)
	defer safe.Close()

	total := safe.PageCount()
	numWorkers := p.adjustWorkerCount(p.cfg.MaxWorkersPerPDF, total)

	jobs := make(chan int, total)
	results := make(chan PageResult, total)
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results <- p.processPage(ctx, safe, i)
			}
		}()
	}
	for i := 0; i < total; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	pages := make([]PageResult, 0, total)
	var fileErr error
	for res := range results {
		pages = append(pages, res)
		if res.Err != nil && p.cfg.ParsingMode == Strict && fileErr == nil {
			fileErr = fmt.Errorf("strict mode failed on page %d: %w", res.Index, res.Err)
		}
	}
	return FileResult{Path: path, Pages: pages, Err: fileErr}
}

func (p *Processor) processPage(ctx context.Context, safe *SafeDocument, i int) PageResult {
	var count int
	var err error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		pageCtx, cancel := context.WithTimeout(ctx, p.cfg.WorkerTimeout)
		count, err = p.countTokens(pageCtx, safe, i)
		cancel()
		if err == nil {
			break
		}
		logger.Debug(fmt.Sprintf("retrying page %d: attempt=%d err=%v", i, attempt, err), true)
	}
	if err != nil {
		recorded, _ := p.extractor.handlePageError(i, err)
		return PageResult{Index: i, Err: recorded}
	}
	return PageResult{Index: i, TokenCount: count}
}

func (p *Processor) countTokens(ctx context.Context, safe *SafeDocument, i int) (int, error) {
	it, err := safe.PageContents(i)
	if err != nil {
		return 0, err
	}
	count := 0
	for {
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		default:
		}
		obj, err := it.NextObject()
		if err != nil {
			return count, err
		}
		if obj == nil {
			return count, nil
		}
		count++
		if p.cfg.MaxTotalTokens > 0 && count >= p.cfg.MaxTotalTokens {
			return count, nil
		}
	}
}

func (p *Processor) adjustWorkerCount(maxWorkers, totalPages int) int {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if maxWorkers > runtime.NumCPU() {
		maxWorkers = runtime.NumCPU()
	}
	if totalPages > 0 && maxWorkers > totalPages {
		maxWorkers = totalPages
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return maxWorkers
}
