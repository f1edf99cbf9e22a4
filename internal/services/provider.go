package services

import (
	"github.com/KirkDiggler/metamagic/internal/dice"
	"github.com/KirkDiggler/metamagic/internal/domain/events"
	mmrules "github.com/KirkDiggler/metamagic/internal/domain/rulebook/pf1/metamagic"
	"github.com/KirkDiggler/metamagic/internal/i18n"
	"github.com/KirkDiggler/metamagic/internal/repositories/casts"
	"github.com/KirkDiggler/metamagic/internal/services/metamagic"
	"github.com/KirkDiggler/metamagic/internal/services/saves"
)

// Provider holds all service instances
type Provider struct {
	MetamagicService metamagic.Service
	SaveInterceptor  saves.Interceptor
	CastRepository   casts.Repository
	EventBus         events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Localizer      *i18n.Localizer
	Registry       *mmrules.Registry
	Prompter       metamagic.ExclusionPrompter
	CastRepository casts.Repository
	EventBus       events.Bus
	Roller         dice.Roller

	CastingTimeRule metamagic.CastingTimeRule
	BaseLocale      string
	Locale          string
}

// NewProvider creates a new service provider with all services initialized.
// Applied casts are recorded so saves can be resolved against them later.
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg.Localizer == nil {
		panic("localizer is required")
	}

	// Use in-memory repository if none provided
	castRepo := cfg.CastRepository
	if castRepo == nil {
		castRepo = casts.NewInMemoryRepository()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewEventBus()
	}
	casts.NewRecorder(castRepo).Subscribe(bus)

	registry := cfg.Registry
	if registry == nil {
		registry = mmrules.NewRegistry()
		if err := registry.RegisterAliases(cfg.Localizer.EffectAliases()); err != nil {
			panic(err)
		}
	}

	mmService := metamagic.NewService(&metamagic.ServiceConfig{
		Registry:        registry,
		Prompter:        cfg.Prompter,
		NameResolver:    cfg.Localizer,
		Localizer:       cfg.Localizer,
		EventBus:        bus,
		CastingTimeRule: cfg.CastingTimeRule,
		BaseLocale:      cfg.BaseLocale,
		Locale:          cfg.Locale,
	})

	saveService := saves.NewService(&saves.ServiceConfig{
		Repository: castRepo,
		Roller:     cfg.Roller,
		EventBus:   bus,
		Localizer:  cfg.Localizer,
		Locale:     cfg.Locale,
	})

	return &Provider{
		MetamagicService: mmService,
		SaveInterceptor:  saveService,
		CastRepository:   castRepo,
		EventBus:         bus,
	}
}
