package metamagic

import (
	"context"
	"log"
	"slices"

	"github.com/KirkDiggler/metamagic/internal/domain/action"
	"github.com/KirkDiggler/metamagic/internal/domain/events"
	mmrules "github.com/KirkDiggler/metamagic/internal/domain/rulebook/pf1/metamagic"
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
	"github.com/KirkDiggler/metamagic/internal/errors"
	"github.com/KirkDiggler/metamagic/internal/i18n"
)

type service struct {
	registry     *mmrules.Registry
	prompter     ExclusionPrompter
	nameResolver NameResolver
	localizer    Localizer
	eventBus     events.Bus
	rule         CastingTimeRule
	baseLocale   string
	locale       func(string) string
}

// ServiceConfig holds configuration for the metamagic service
type ServiceConfig struct {
	Registry     *mmrules.Registry
	Prompter     ExclusionPrompter
	NameResolver NameResolver
	Localizer    Localizer
	EventBus     events.Bus

	CastingTimeRule CastingTimeRule
	// BaseLocale is the language spell names are stored in
	BaseLocale string
	// Locale is used when a call does not name one
	Locale string
}

// NewService creates a new metamagic service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Registry == nil {
		panic("registry is required")
	}

	svc := &service{
		registry:     cfg.Registry,
		prompter:     cfg.Prompter,
		nameResolver: cfg.NameResolver,
		localizer:    cfg.Localizer,
		eventBus:     cfg.EventBus,
		rule:         cfg.CastingTimeRule,
		baseLocale:   cfg.BaseLocale,
	}

	if svc.rule == "" {
		svc.rule = CastingTimeStandard
	}
	if svc.baseLocale == "" {
		svc.baseLocale = "en-US"
	}
	if svc.localizer == nil {
		loc, err := i18n.New(svc.baseLocale)
		if err != nil {
			panic(err)
		}
		svc.localizer = loc
	}
	if svc.eventBus == nil {
		svc.eventBus = events.NopBus{}
	}

	fallback := cfg.Locale
	if fallback == "" {
		fallback = svc.baseLocale
	}
	svc.locale = func(locale string) string {
		if locale == "" {
			return fallback
		}
		return locale
	}

	return svc
}

// ApplySelections runs every selected effect in catalog order against a
// snapshot of the action, pays for the result, and projects it back.
func (s *service) ApplySelections(ctx context.Context, input *ApplyInput) (*ApplyResult, error) {
	if input == nil || input.Action == nil {
		return nil, errors.InvalidArgument("action is required")
	}

	a := input.Action
	locale := s.locale(input.Locale)
	result := &ApplyResult{Restore: func() {}}

	before := events.NewGameEvent(events.BeforeMetamagic).
		WithActor(a.Actor.ID).
		WithContext(events.ContextActionID, a.ID).
		WithContext(events.ContextSpellName, a.Item.Name)
	s.emit(before)
	if before.IsCancelled() {
		return result, nil
	}

	selected := s.registry.ResolveAll(input.Selections)
	if len(selected) == 0 {
		return result, nil
	}
	names := make([]string, len(selected))
	for i, n := range selected {
		names[i] = string(n)
	}

	c := a.Snapshot(names)
	c.Options = input.Options
	c.Options.HeightenLevel = clonePtr(input.Options.HeightenLevel)
	c.Options.Selective.Excluded = nil

	args := &mmrules.Args{
		ReachSteps:     input.Options.ReachSteps,
		HeightenLevel:  input.Options.HeightenLevel,
		CasterLevel:    a.CasterLevel(),
		LearnedAt:      a.Item.LearnedAt,
		PersistentNote: s.localizer.Sprintf(locale, i18n.KeyPersistentNote),
		Vars:           a.RollData.Values(),
	}

	for _, effect := range s.registry.Effects() {
		name := effect.Name()
		if !slices.Contains(selected, name) {
			continue
		}

		switch name {
		case mmrules.SelectiveSpell:
			if !mmrules.SelectiveEligible(c) {
				s.prune(a, c, result, name)
				continue
			}
			excluded, rejected := s.promptExclusions(ctx, a, locale)
			if rejected {
				result.Reject = true
				result.Warning = s.localizer.Sprintf(locale, i18n.KeySelectiveCancelled)
				s.reject(a, result.Warning)
				return result, nil
			}
			c.Options.Selective.Excluded = excluded
			result.Excluded = excluded
		case mmrules.DazingSpell:
			args.DazingSpellName = s.canonicalName(ctx, a.Item.Name, locale)
		}

		if !mmrules.Apply(c, effect, args) {
			s.prune(a, c, result, name)
			continue
		}

		if name == mmrules.HeightenSpell {
			s.heighten(a, c)
		}
	}

	if len(c.Metamagic.Applied) == 0 {
		return result, nil
	}

	result.ActivationExtraFullRound = adjustCastingTime(c, s.rule, a.IsSpontaneous(), names)

	if c.HasApplied(string(mmrules.HeightenSpell)) && c.SpellLevel.Original != nil {
		c.Metamagic.SlotIncrease += mmrules.HeightenCost(c.Metamagic.HeightenLevel, *c.SpellLevel.Original)
	}

	result.Applied = slices.Clone(c.Metamagic.Applied)
	result.SlotIncrease = c.Metamagic.SlotIncrease
	result.Context = c

	if c.Metamagic.SlotIncrease > 0 {
		slot := s.consumeSlot(a, c.Metamagic.SlotIncrease, locale)
		if slot.Reject {
			result.Reject = true
			result.Warning = slot.Warning
			s.reject(a, slot.Warning)
			return result, nil
		}
	}

	result.Restore = Project(a, c)

	s.emit(events.NewGameEvent(events.OnMetamagicApplied).
		WithActor(a.Actor.ID).
		WithContext(events.ContextActionID, a.ID).
		WithContext(events.ContextSpellName, a.Item.Name).
		WithContext(events.ContextCanonical, args.DazingSpellName).
		WithContext(events.ContextApplied, result.Applied).
		WithContext(events.ContextSlotIncrease, result.SlotIncrease).
		WithContext(events.ContextCastContext, c))

	return result, nil
}

// promptExclusions asks which targets to leave out. A dismissed prompt, a
// prompt error, and a cancelled context all reject the cast.
func (s *service) promptExclusions(ctx context.Context, a *action.Action, locale string) (excluded []string, rejected bool) {
	book := a.Spellbook()
	if book == nil {
		return nil, false
	}
	limit := mmrules.MaxExclusions(book.AbilityModifier)
	if limit == 0 || len(a.Targets) == 0 || s.prompter == nil {
		return nil, false
	}

	req := &ExclusionRequest{
		ActorID:     a.Actor.ID,
		SpellName:   a.Item.Name,
		Prompt:      s.localizer.Sprintf(locale, i18n.KeySelectivePrompt, limit, a.Item.Name),
		CancelLabel: s.localizer.Sprintf(locale, i18n.KeySelectiveCancel),
		Max:         limit,
		Candidates:  make([]Candidate, 0, len(a.Targets)),
	}
	for _, t := range a.Targets {
		ally := a.IsAlly(t)
		label := s.localizer.Sprintf(locale, i18n.KeySelectiveFoe, t.Name)
		if ally {
			label = s.localizer.Sprintf(locale, i18n.KeySelectiveAlly, t.Name)
		}
		req.Candidates = append(req.Candidates, Candidate{ID: t.ID, Name: t.Name, Ally: ally, Label: label})
	}

	ids, cancelled, err := s.prompter.PromptExclusions(ctx, req)
	if err != nil {
		log.Printf("Exclusion prompt for %s failed: %v", a.Item.Name, err)
		return nil, true
	}
	if cancelled || ctx.Err() != nil {
		return nil, true
	}

	// keep only offered targets, at most limit of them
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if len(out) == limit {
			break
		}
		if slices.ContainsFunc(a.Targets, func(t action.Target) bool { return t.ID == id }) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out, false
}

// canonicalName resolves the untranslated spell name when the caster reads another language
func (s *service) canonicalName(ctx context.Context, name, locale string) string {
	if s.nameResolver == nil || i18n.SameLanguage(locale, s.baseLocale) {
		return name
	}
	canonical, err := s.nameResolver.CanonicalName(ctx, name)
	if err != nil || canonical == "" {
		log.Printf("Failed to resolve canonical name of %s: %v", name, err)
		return name
	}
	return canonical
}

// heighten feeds the new spell level into roll data and recomputes the save DC
func (s *service) heighten(a *action.Action, c *spellcast.Context) {
	if c.SpellLevel.Effective == nil || a.DC == nil || c.Save == nil {
		return
	}
	rollData := a.RollData
	rollData.SpellLevel = *c.SpellLevel.Effective
	c.Save.DC = a.DC(&rollData)
}

func (s *service) prune(a *action.Action, c *spellcast.Context, result *ApplyResult, name mmrules.Name) {
	c.RemoveName(string(name))
	result.Pruned = append(result.Pruned, string(name))
	s.emit(events.NewGameEvent(events.OnEffectPruned).
		WithActor(a.Actor.ID).
		WithContext(events.ContextActionID, a.ID).
		WithContext(events.ContextEffect, string(name)))
}

func (s *service) reject(a *action.Action, reason string) {
	log.Printf("Cast of %s by %s rejected: %s", a.Item.Name, a.Actor.ID, reason)
	s.emit(events.NewGameEvent(events.OnCastRejected).
		WithActor(a.Actor.ID).
		WithContext(events.ContextActionID, a.ID).
		WithContext(events.ContextSpellName, a.Item.Name).
		WithContext(events.ContextReason, reason))
}

func (s *service) emit(event *events.GameEvent) {
	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("Failed to emit %s: %v", event.Type, err)
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
