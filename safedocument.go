// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "sync"

// SafeDocument guards a *Document with a mutex so it can be handed to
// code that calls PageContents from more than one goroutine over time.
// It does not make concurrent PageContents calls run in parallel —
// spec.md is explicit that a Document's seek cursor makes that unsafe —
// it only makes sequential multi-goroutine use race-free.
type SafeDocument struct {
	mu  sync.Mutex
	doc *Document
}

// NewSafeDocument wraps doc.
func NewSafeDocument(doc *Document) *SafeDocument {
	return &SafeDocument{doc: doc}
}

func (s *SafeDocument) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.PageCount()
}

func (s *SafeDocument) PageContents(i int) (*ContentIterator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.PageContents(i)
}

func (s *SafeDocument) PageInfo(i int) (PageInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.PageInfo(i)
}

func (s *SafeDocument) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Close()
}
