package casts

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/metamagic/internal/errors"
	"github.com/KirkDiggler/metamagic/internal/uuid"
)

type inMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*Record
	byActor map[string][]string // actorID -> record IDs
	ids     uuid.Generator
	clock   TimeProvider
}

// NewInMemoryRepository creates a new in-memory cast record repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		records: make(map[string]*Record),
		byActor: make(map[string][]string),
		ids:     uuid.NewGoogleUUIDGenerator(),
		clock:   SystemTime{},
	}
}

func (r *inMemoryRepository) Create(_ context.Context, record *Record) error {
	if record == nil {
		return errors.InvalidArgument("record cannot be nil")
	}
	if record.ActorID == "" {
		return errors.InvalidArgument("record actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = r.ids.New()
	}
	if _, exists := r.records[record.ID]; exists {
		return errors.AlreadyExistsf("cast record %s already exists", record.ID).
			WithMeta("cast_id", record.ID)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.clock.Now()
	}

	stored := *record
	stored.Applied = slices.Clone(record.Applied)
	r.records[record.ID] = &stored
	r.byActor[record.ActorID] = append(r.byActor[record.ActorID], record.ID)
	return nil
}

func (r *inMemoryRepository) Get(_ context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, errors.InvalidArgument("cast record ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, errors.NotFoundf("cast record %s not found", id).WithMeta("cast_id", id)
	}
	out := *record
	out.Applied = slices.Clone(record.Applied)
	return &out, nil
}

func (r *inMemoryRepository) ListByActor(ctx context.Context, actorID string) ([]*Record, error) {
	if actorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	r.mu.RLock()
	ids := slices.Clone(r.byActor[actorID])
	r.mu.RUnlock()

	out := make([]*Record, 0, len(ids))
	for _, id := range ids {
		record, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.records[id]
	if !exists {
		return errors.NotFoundf("cast record %s not found", id).WithMeta("cast_id", id)
	}

	delete(r.records, id)
	r.byActor[record.ActorID] = slices.DeleteFunc(r.byActor[record.ActorID], func(s string) bool { return s == id })
	if len(r.byActor[record.ActorID]) == 0 {
		delete(r.byActor, record.ActorID)
	}
	return nil
}
