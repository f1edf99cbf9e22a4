package events

// EventType identifies a step in the cast pipeline
type EventType int

const (
	// BeforeMetamagic fires before selections are resolved; cancelling it skips metamagic
	BeforeMetamagic EventType = iota
	// OnEffectPruned fires for each selected effect whose precondition failed
	OnEffectPruned
	// OnMetamagicApplied fires once the context has been projected onto the action
	OnMetamagicApplied
	// OnCastRejected fires when the user cancels or slots run out
	OnCastRejected
	// OnSlotConsumed fires when a higher level slot pays for the metamagic
	OnSlotConsumed
	// OnSaveIntercepted fires after a save against a metamagic cast was resolved
	OnSaveIntercepted
)

// String returns the string representation of the event type
func (e EventType) String() string {
	names := [...]string{
		"BeforeMetamagic",
		"OnEffectPruned",
		"OnMetamagicApplied",
		"OnCastRejected",
		"OnSlotConsumed",
		"OnSaveIntercepted",
	}
	if e < BeforeMetamagic || int(e) >= len(names) {
		return "Unknown"
	}
	return names[e]
}
