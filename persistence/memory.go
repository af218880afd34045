package persistence

import (
	"sync"

	"github.com/danielrcurtis/gnfs-sub002/gnfserr"
	"github.com/danielrcurtis/gnfs-sub002/relation"
)

// MemoryAdapter is an in-process Adapter implementation for tests and
// for hosts that do not need durability across process restarts. One
// instance may serve several job IDs concurrently.
type MemoryAdapter struct {
	mu       sync.Mutex
	states   map[string]*JobState
	smooth   map[string][]*relation.Relation
	rough    map[string][]*relation.Relation
	freeSols map[string]map[int][]*relation.Relation
}

// NewMemoryAdapter returns an empty adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		states:   map[string]*JobState{},
		smooth:   map[string][]*relation.Relation{},
		rough:    map[string][]*relation.Relation{},
		freeSols: map[string]map[int][]*relation.Relation{},
	}
}

func (m *MemoryAdapter) Exists(jobID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.states[jobID]
	return ok
}

func (m *MemoryAdapter) SaveAll(state *JobState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *state
	m.states[state.JobID] = &cp
	return nil
}

func (m *MemoryAdapter) AppendSmooth(jobID string, r *relation.Relation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.smooth[jobID] = append(m.smooth[jobID], r)
	return nil
}

func (m *MemoryAdapter) AppendRough(jobID string, r *relation.Relation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rough[jobID] = append(m.rough[jobID], r)
	return nil
}

func (m *MemoryAdapter) LoadAll(jobID string) (*JobState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.states[jobID]
	if !ok {
		return nil, gnfserr.New(gnfserr.ErrNotFound, "no job state for %q", jobID)
	}
	cp := *s
	return &cp, nil
}

func (m *MemoryAdapter) LoadSmoothRelations(jobID string) ([]*relation.Relation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*relation.Relation, len(m.smooth[jobID]))
	copy(out, m.smooth[jobID])
	return out, nil
}

func (m *MemoryAdapter) SaveFreeSolution(jobID string, solutionIndex int, rels []*relation.Relation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.freeSols[jobID] == nil {
		m.freeSols[jobID] = map[int][]*relation.Relation{}
	}
	cp := make([]*relation.Relation, len(rels))
	copy(cp, rels)
	m.freeSols[jobID][solutionIndex] = cp
	return nil
}
