// Package saves resolves saving throws for spells whose metamagic changes how
// the save plays out: Persistent Spell forces a second roll on a success and
// Dazing Spell dazes targets that fail.
package saves

import (
	"context"
	"log"

	"github.com/KirkDiggler/metamagic/internal/dice"
	"github.com/KirkDiggler/metamagic/internal/domain/events"
	"github.com/KirkDiggler/metamagic/internal/errors"
	"github.com/KirkDiggler/metamagic/internal/i18n"
	"github.com/KirkDiggler/metamagic/internal/repositories/casts"
)

// Localizer formats catalog messages
type Localizer interface {
	Sprintf(locale, key string, args ...any) string
}

type service struct {
	repository casts.Repository
	roller     dice.Roller
	eventBus   events.Bus
	localizer  Localizer
	locale     string
}

// ServiceConfig holds configuration for the save interceptor
type ServiceConfig struct {
	Repository casts.Repository
	Roller     dice.Roller
	EventBus   events.Bus
	Localizer  Localizer
	// Locale is used when an input does not name one
	Locale string
}

// NewService creates a new save interceptor
func NewService(cfg *ServiceConfig) Interceptor {
	if cfg.Repository == nil {
		panic("cast repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		roller:     cfg.Roller,
		eventBus:   cfg.EventBus,
		localizer:  cfg.Localizer,
		locale:     cfg.Locale,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.eventBus == nil {
		svc.eventBus = events.NopBus{}
	}
	if svc.locale == "" {
		svc.locale = "en-US"
	}
	if svc.localizer == nil {
		loc, err := i18n.New(svc.locale)
		if err != nil {
			panic(err)
		}
		svc.localizer = loc
	}
	return svc
}

// ResolveSave rolls a save against a recorded cast. A natural 20 always
// succeeds and a natural 1 always fails.
func (s *service) ResolveSave(ctx context.Context, input *SaveInput) (*SaveOutcome, error) {
	if input == nil || input.CastID == "" {
		return nil, errors.InvalidArgument("cast ID is required")
	}

	record, err := s.repository.Get(ctx, input.CastID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load cast %s", input.CastID)
	}

	dc := record.SaveDC
	if input.DC > 0 {
		dc = input.DC
	}
	if dc <= 0 {
		return nil, errors.InvalidArgumentf("cast %s has no save DC", input.CastID)
	}

	locale := input.Locale
	if locale == "" {
		locale = s.locale
	}

	outcome := &SaveOutcome{CastID: record.ID, TargetID: input.TargetID, DC: dc}

	roll, err := s.roll(outcome, input.Bonus)
	if err != nil {
		return nil, err
	}
	outcome.Success = saved(roll, dc)

	if record.Persistent && outcome.Success {
		roll, err = s.roll(outcome, input.Bonus)
		if err != nil {
			return nil, err
		}
		outcome.Success = saved(roll, dc)
		outcome.Rerolled = true
		outcome.Notes = append(outcome.Notes, s.localizer.Sprintf(locale, i18n.KeySaveRerolled))
	}
	outcome.Total = roll.Total

	if record.Dazing && !outcome.Success {
		missed := dc - roll.Total
		outcome.DazedRounds = max(1, record.DazingRounds) + DazeBonusRounds(record.DazingSpellName, missed, input.AttackCritical)
		outcome.Notes = append(outcome.Notes, s.localizer.Sprintf(locale, i18n.KeySaveDazed, outcome.DazedRounds))
	}

	event := events.NewGameEvent(events.OnSaveIntercepted).
		WithActor(record.ActorID).
		WithContext(events.ContextCastID, record.ID).
		WithContext(events.ContextSpellName, record.SpellName).
		WithContext(events.ContextSaveRoll, outcome.Total).
		WithContext(events.ContextSaveDC, dc).
		WithContext(events.ContextSaveSuccess, outcome.Success).
		WithContext(events.ContextRerolled, outcome.Rerolled).
		WithContext(events.ContextDazedRounds, outcome.DazedRounds)
	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("Failed to emit %s for cast %s: %v", event.Type, record.ID, err)
	}

	return outcome, nil
}

func (s *service) roll(outcome *SaveOutcome, bonus int) (*dice.RollResult, error) {
	roll, err := s.roller.Roll(1, 20, bonus)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll save")
	}
	outcome.Rolls = append(outcome.Rolls, roll.Natural())
	return roll, nil
}

func saved(roll *dice.RollResult, dc int) bool {
	switch {
	case roll.IsCrit:
		return true
	case roll.IsFumble:
		return false
	}
	return roll.Total >= dc
}
