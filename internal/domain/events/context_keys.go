package events

// Context keys for event data
const (
	// Cast context keys
	ContextActionID     = "action_id"     // string: ID of the live action
	ContextActorID      = "actor_id"      // string: ID of the caster
	ContextSpellName    = "spell_name"    // string: display name of the spell
	ContextCanonical    = "canonical"     // string: untranslated spell name
	ContextEffect       = "effect"        // string: canonical metamagic effect name
	ContextApplied      = "applied"       // []string: effects applied, in order
	ContextSlotIncrease = "slot_increase" // int: spell level increase paid
	ContextCastContext  = "cast_context"  // *spellcast.Context: final cast context
	ContextReason       = "reason"        // string: why a cast was rejected
	ContextCastID       = "cast_id"       // string: persisted cast record ID

	// Slot context keys
	ContextSlotLevel = "slot_level" // int: level of the consumed slot
	ContextRemaining = "remaining"  // int: slots left at that level

	// Save context keys
	ContextSaveRoll    = "save_roll"    // int: final d20 total
	ContextSaveDC      = "save_dc"      // int: DC rolled against
	ContextSaveSuccess = "save_success" // bool: whether the target saved
	ContextRerolled    = "rerolled"     // bool: persistent spell forced a second roll
	ContextDazedRounds = "dazed_rounds" // int: rounds the target is dazed
)
