package casts

//go:generate mockgen -destination=mock/mock.go -package=mockcasts -source=repository.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

// Record is what a finished cast leaves behind for later save interception
type Record struct {
	ID              string             `json:"id"`
	ActorID         string             `json:"actor_id"`
	MessageID       string             `json:"message_id"`
	SpellName       string             `json:"spell_name"`
	Applied         []string           `json:"applied"`
	SlotIncrease    int                `json:"slot_increase"`
	Persistent      bool               `json:"persistent"`
	Dazing          bool               `json:"dazing"`
	DazingRounds    int                `json:"dazing_rounds"`
	DazingSpellName string             `json:"dazing_spell_name"`
	HeightenLevel   int                `json:"heighten_level"`
	SaveType        spellcast.SaveType `json:"save_type"`
	SaveDC          int                `json:"save_dc"`
	CreatedAt       time.Time          `json:"created_at"`
}

// NewRecord captures the flags of a final cast context
func NewRecord(actorID, messageID, spellName string, c *spellcast.Context) *Record {
	r := &Record{
		ActorID:   actorID,
		MessageID: messageID,
		SpellName: spellName,
	}
	if c == nil {
		return r
	}

	m := c.Metamagic
	r.Applied = append([]string(nil), m.Applied...)
	r.SlotIncrease = m.SlotIncrease
	r.Persistent = m.Persistent
	r.Dazing = m.Dazing
	r.DazingRounds = m.DazingRounds
	r.DazingSpellName = m.DazingSpellName
	r.HeightenLevel = m.HeightenLevel
	if c.Save != nil {
		r.SaveType = c.Save.Type
		r.SaveDC = c.Save.DC
	}
	return r
}

// Repository defines the interface for cast record persistence
type Repository interface {
	// Create stores a new record, assigning an ID when it has none
	Create(ctx context.Context, record *Record) error

	// Get retrieves a record by ID
	Get(ctx context.Context, id string) (*Record, error)

	// ListByActor returns an actor's records, oldest first
	ListByActor(ctx context.Context, actorID string) ([]*Record, error)

	// Delete removes a record
	Delete(ctx context.Context, id string) error
}

// TimeProvider supplies creation timestamps
type TimeProvider interface {
	Now() time.Time
}

// SystemTime is the wall clock in UTC
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now().UTC()
}
