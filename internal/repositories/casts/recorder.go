package casts

import (
	"context"
	"time"

	"github.com/KirkDiggler/metamagic/internal/domain/events"
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
	"github.com/KirkDiggler/metamagic/internal/errors"
)

// Recorder persists a record for every applied cast. It stores the new
// record ID on the event under events.ContextCastID.
type Recorder struct {
	repo    Repository
	timeout time.Duration
}

// NewRecorder creates a recorder writing to repo
func NewRecorder(repo Repository) *Recorder {
	if repo == nil {
		panic("repository is required")
	}
	return &Recorder{repo: repo, timeout: 5 * time.Second}
}

// Subscribe registers the recorder for applied casts
func (r *Recorder) Subscribe(bus events.Bus) {
	bus.Subscribe(events.OnMetamagicApplied, r)
}

// Priority runs the recorder after listeners that adjust the event
func (r *Recorder) Priority() int {
	return 100
}

func (r *Recorder) HandleEvent(event *events.GameEvent) error {
	if event.Type != events.OnMetamagicApplied {
		return nil
	}

	raw, ok := event.GetContext(events.ContextCastContext)
	if !ok {
		return errors.InvalidArgument("applied event has no cast context")
	}
	c, ok := raw.(*spellcast.Context)
	if !ok || c == nil {
		return errors.InvalidArgumentf("cast context has type %T", raw)
	}

	messageID, _ := event.GetStringContext(events.ContextActionID)
	spellName, _ := event.GetStringContext(events.ContextSpellName)

	record := NewRecord(event.ActorID, messageID, spellName, c)
	if canonical, ok := event.GetStringContext(events.ContextCanonical); ok && record.DazingSpellName == "" {
		record.DazingSpellName = canonical
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.repo.Create(ctx, record); err != nil {
		return errors.Wrapf(err, "failed to record cast of %s", spellName)
	}

	event.WithContext(events.ContextCastID, record.ID)
	return nil
}
