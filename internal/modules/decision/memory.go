package decision

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepo is an in-memory Repository. It backs tests and lets the server
// run without a database. Semantics match the Postgres implementation: a
// matched row counts as modified even when set to an equal value.
type memoryRepo struct {
	mu        sync.RWMutex
	decisions map[uuid.UUID]*Decision
	order     []uuid.UUID
}

// NewMemoryRepository returns an empty in-memory Repository.
func NewMemoryRepository() Repository {
	return &memoryRepo{decisions: make(map[uuid.UUID]*Decision)}
}

func copyDecision(d *Decision) *Decision {
	c := *d
	if d.Outcome != nil {
		v := *d.Outcome
		c.Outcome = &v
	}
	if d.Success != nil {
		v := *d.Success
		c.Success = &v
	}
	return &c
}

func (r *memoryRepo) List(ctx context.Context, category string) ([]*Decision, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var decisions []*Decision
	for _, id := range r.order {
		d := r.decisions[id]
		if category != "" && d.Category != category {
			continue
		}
		decisions = append(decisions, copyDecision(d))
	}
	return decisions, nil
}

func (r *memoryRepo) Create(ctx context.Context, d *Decision) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	r.decisions[d.ID] = copyDecision(d)
	r.order = append(r.order, d.ID)
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) (int64, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.decisions[uid]; !ok {
		return 0, nil
	}
	delete(r.decisions, uid)
	for i, oid := range r.order {
		if oid == uid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (r *memoryRepo) EditText(ctx context.Context, id, text string) (*Decision, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.decisions[uid]
	if !ok {
		return nil, nil
	}
	d.Text = text
	return copyDecision(d), nil
}

func (r *memoryRepo) EditOutcome(ctx context.Context, id, outcome string, success *bool) (int64, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.decisions[uid]
	if !ok {
		return 0, nil
	}
	d.Outcome = &outcome
	if success != nil {
		v := *success
		d.Success = &v
	} else {
		d.Success = nil
	}
	return 1, nil
}

func (r *memoryRepo) EditSuccess(ctx context.Context, id string, success bool) (*Decision, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.decisions[uid]
	if !ok {
		return nil, nil
	}
	d.Success = &success
	return copyDecision(d), nil
}
