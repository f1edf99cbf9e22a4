package saves

//go:generate mockgen -destination=mock/mock_service.go -package=mocksaves -source=types.go

import (
	"context"
)

// Interceptor resolves saving throws against spells cast with metamagic
type Interceptor interface {
	ResolveSave(ctx context.Context, input *SaveInput) (*SaveOutcome, error)
}

// SaveInput contains data for one target's saving throw
type SaveInput struct {
	CastID   string
	TargetID string
	// Bonus is the target's total save modifier
	Bonus int
	// DC overrides the recorded save DC when positive
	DC int
	// AttackCritical is set when the spell's attack roll was a confirmed critical
	AttackCritical bool
	Locale         string
}

// SaveOutcome contains the result of a saving throw
type SaveOutcome struct {
	CastID   string
	TargetID string
	// Rolls are the d20 results in order; the last one stands
	Rolls    []int
	Total    int
	DC       int
	Success  bool
	Rerolled bool
	// DazedRounds is 0 unless a dazing spell's save failed
	DazedRounds int
	Notes       []string
}
