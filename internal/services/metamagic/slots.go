package metamagic

import (
	"context"
	"log"

	"github.com/KirkDiggler/metamagic/internal/domain/action"
	"github.com/KirkDiggler/metamagic/internal/domain/events"
	"github.com/KirkDiggler/metamagic/internal/errors"
	"github.com/KirkDiggler/metamagic/internal/i18n"
)

// ConsumeSlot pays a slot level increase. Prepared casters already paid when
// preparing, so for them it succeeds without touching anything.
func (s *service) ConsumeSlot(_ context.Context, input *ConsumeSlotInput) (*ConsumeSlotResult, error) {
	if input == nil || input.Action == nil {
		return nil, errors.InvalidArgument("action is required")
	}
	if input.Increase < 0 {
		return nil, errors.InvalidArgumentf("slot increase cannot be negative: %d", input.Increase)
	}

	return s.consumeSlot(input.Action, input.Increase, s.locale(input.Locale)), nil
}

func (s *service) consumeSlot(a *action.Action, increase int, locale string) *ConsumeSlotResult {
	if increase == 0 || !a.IsSpontaneous() {
		return &ConsumeSlotResult{}
	}

	target := a.Item.Level + increase
	result := &ConsumeSlotResult{SlotLevel: target, Needed: 1}

	slots := a.Spellbook().Slots(target)
	if slots == nil || slots.Remaining < 1 {
		if slots != nil {
			result.Remaining = slots.Remaining
		}
		result.Reject = true
		result.Warning = s.localizer.Sprintf(locale, i18n.KeySlotsInsufficient, result.Remaining, result.Needed)
		result.Err = errors.ResourceExhausted(result.Warning).
			WithMeta("remaining", result.Remaining).
			WithMeta("needed", result.Needed).
			WithMeta("level", target)
		log.Printf("Rejecting %s for %s: no level %d slots left", a.Item.Name, a.Actor.ID, target)
		return result
	}

	slots.Remaining--
	result.Consumed = true
	result.Remaining = slots.Remaining

	// the higher slot pays for the cast, not item charges
	if a.ChargeCost != nil {
		*a.ChargeCost = 0
		a.CostBonus = increase
	}

	s.emit(events.NewGameEvent(events.OnSlotConsumed).
		WithActor(a.Actor.ID).
		WithContext(events.ContextActionID, a.ID).
		WithContext(events.ContextSlotLevel, target).
		WithContext(events.ContextRemaining, slots.Remaining))
	return result
}
