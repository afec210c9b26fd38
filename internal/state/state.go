// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the shared search state a form publishes its progress
// and results into.
//
// The state is only ever changed through the typed action methods of
// [SearchStore]. Readers take a [Snapshot]; a snapshot taken while a request
// is in flight legitimately shows the parameters of the current attempt,
// IsSearching set and no result yet.
package state

import (
	"sync"

	"github.com/MKhiriev/go-borrower-search/models"
)

// Tri is a three-valued flag: unknown, false or true.
type Tri int8

const (
	Unknown Tri = iota
	False
	True
)

// TriOf converts b into a known Tri value.
func TriOf(b bool) Tri {
	if b {
		return True
	}
	return False
}

func (t Tri) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of the shared search state at one point in time.
type Snapshot struct {
	IsSearching      Tri
	SearchStatus     Tri
	Result           *models.SearchResponse
	SearchParameters []models.ParameterEntry
}

// NotFound reports whether the last search finished without a match.
func (s Snapshot) NotFound() bool {
	return s.IsSearching == False && s.SearchStatus == False
}

// Found reports whether the last search produced a result.
func (s Snapshot) Found() bool {
	return s.SearchStatus == True && s.Result != nil
}

// SearchStore is the contract between a search form and the state it shares
// with the rest of the application.
type SearchStore interface {
	SetSearchParameters(params []models.ParameterEntry)
	SetSearching(v Tri)
	SetSearchStatus(v Tri)
	SetResult(result models.SearchResponse)
	Snapshot() Snapshot
}

type memoryStore struct {
	mu sync.RWMutex

	isSearching  Tri
	searchStatus Tri
	result       *models.SearchResponse
	params       []models.ParameterEntry
}

// NewSearchStore returns an empty in-memory [SearchStore]; every flag starts
// as [Unknown]. It is safe for concurrent use.
func NewSearchStore() SearchStore {
	return &memoryStore{}
}

func (s *memoryStore) SetSearchParameters(params []models.ParameterEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = cloneParameters(params)
}

func (s *memoryStore) SetSearching(v Tri) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSearching = v
}

func (s *memoryStore) SetSearchStatus(v Tri) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchStatus = v
}

func (s *memoryStore) SetResult(result models.SearchResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &result
}

func (s *memoryStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		IsSearching:      s.isSearching,
		SearchStatus:     s.searchStatus,
		SearchParameters: cloneParameters(s.params),
	}
	if s.result != nil {
		result := *s.result
		snap.Result = &result
	}
	return snap
}

// cloneParameters copies the list and each entry so callers cannot mutate
// stored state. nil stays nil.
func cloneParameters(params []models.ParameterEntry) []models.ParameterEntry {
	if params == nil {
		return nil
	}
	out := make([]models.ParameterEntry, len(params))
	for i, entry := range params {
		copied := make(models.ParameterEntry, len(entry))
		for k, v := range entry {
			copied[k] = v
		}
		out[i] = copied
	}
	return out
}
