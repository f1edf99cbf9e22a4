package metamagic

//go:generate mockgen -destination=mock/mock_service.go -package=mockmetamagic -source=types.go

import (
	"context"

	"github.com/KirkDiggler/metamagic/internal/domain/action"
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

// Service applies metamagic selections to a cast and pays for them
type Service interface {
	// ApplySelections resolves, applies, and projects the selected effects onto the action
	ApplySelections(ctx context.Context, input *ApplyInput) (*ApplyResult, error)

	// ConsumeSlot spends a higher level slot for a spontaneous caster
	ConsumeSlot(ctx context.Context, input *ConsumeSlotInput) (*ConsumeSlotResult, error)
}

// ExclusionPrompter asks the caster which targets a selective spell should leave out.
// A dismissed prompt reports cancelled.
type ExclusionPrompter interface {
	PromptExclusions(ctx context.Context, req *ExclusionRequest) (excluded []string, cancelled bool, err error)
}

// NameResolver maps a translated spell name to its untranslated name
type NameResolver interface {
	CanonicalName(ctx context.Context, name string) (string, error)
}

// Localizer formats catalog messages
type Localizer interface {
	Sprintf(locale, key string, args ...any) string
}

// Candidate is one target offered in the exclusion prompt
type Candidate struct {
	ID    string
	Name  string
	Ally  bool
	Label string
}

// ExclusionRequest describes one exclusion prompt
type ExclusionRequest struct {
	ActorID     string
	SpellName   string
	Prompt      string
	CancelLabel string
	Max         int
	Candidates  []Candidate
}

// ApplyInput contains data for applying metamagic to a cast
type ApplyInput struct {
	Action     *action.Action
	Selections []string
	Options    spellcast.Options
	// Locale is the caster's display locale; empty means the configured one
	Locale string
}

// ApplyResult contains the outcome of applying metamagic
type ApplyResult struct {
	// Reject is set when the whole cast must not go ahead
	Reject  bool
	Warning string

	Applied                  []string
	Pruned                   []string
	SlotIncrease             int
	ActivationExtraFullRound bool
	Excluded                 []string

	// Context is the final cast context, nil when nothing was applied
	Context *spellcast.Context

	// Restore undoes the projection onto the action. It is never nil and is safe to call twice.
	Restore func()
}

// ConsumeSlotInput contains data for paying a slot level increase
type ConsumeSlotInput struct {
	Action   *action.Action
	Increase int
	Locale   string
}

// ConsumeSlotResult contains the outcome of slot consumption
type ConsumeSlotResult struct {
	Reject    bool
	Warning   string
	Consumed  bool
	SlotLevel int
	Remaining int
	Needed    int
	// Err carries the rejection as a resource_exhausted error
	Err error
}
