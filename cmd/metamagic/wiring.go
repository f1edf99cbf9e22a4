package main

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/metamagic/internal/config"
	"github.com/KirkDiggler/metamagic/internal/discord"
	"github.com/KirkDiggler/metamagic/internal/domain/events"
	mmrules "github.com/KirkDiggler/metamagic/internal/domain/rulebook/pf1/metamagic"
	"github.com/KirkDiggler/metamagic/internal/errors"
	"github.com/KirkDiggler/metamagic/internal/i18n"
	"github.com/KirkDiggler/metamagic/internal/repositories/casts"
	"github.com/KirkDiggler/metamagic/internal/services/metamagic"
)

func newLocalizer(c *config.Config) (*i18n.Localizer, error) {
	loc, err := i18n.New(c.Metamagic.BaseLocale)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load locale catalogs")
	}
	return loc, nil
}

func newRegistry(loc *i18n.Localizer) (*mmrules.Registry, error) {
	registry := mmrules.NewRegistry()
	if err := registry.RegisterAliases(loc.EffectAliases()); err != nil {
		return nil, errors.Wrap(err, "failed to register localized effect names")
	}
	return registry, nil
}

// connectRedis returns nil when Redis is unreachable so callers can fall back to memory
func connectRedis(ctx context.Context, c *config.Config) *redis.Client {
	opts, err := redis.ParseURL(c.Redis.URL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		return nil
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		_ = client.Close()
		return nil
	}
	return client
}

// castRepository prefers Redis and falls back to memory, returning a cleanup func
func castRepository(ctx context.Context, c *config.Config) (casts.Repository, func()) {
	client := connectRedis(ctx, c)
	if client == nil {
		log.Println("Using in-memory cast records")
		return casts.NewInMemoryRepository(), func() {}
	}
	return casts.NewRedis(client, c.Redis.RecordTTL), func() {
		if err := client.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}
}

// discordPrompter opens a Discord session and routes component interactions to the prompter
func discordPrompter(c *config.Config) (metamagic.ExclusionPrompter, func(), error) {
	session, err := discordgo.New("Bot " + c.Discord.Token)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create Discord session")
	}

	prompter := discord.NewPrompter(&discord.PrompterConfig{
		Session:   session,
		ChannelID: c.Discord.ChannelID,
		Timeout:   c.Metamagic.PromptTimeout,
	})
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if _, err := prompter.HandleInteraction(s, i); err != nil {
			log.Printf("Error handling interaction: %v", err)
		}
	})

	if err := session.Open(); err != nil {
		return nil, nil, errors.Wrap(err, "failed to open Discord connection")
	}
	return prompter, func() {
		if err := session.Close(); err != nil {
			log.Printf("Error closing Discord connection: %v", err)
		}
	}, nil
}

// castIDListener captures the record ID the Recorder stamps on the applied event
type castIDListener struct {
	castID string
}

func (l *castIDListener) HandleEvent(event *events.GameEvent) error {
	if id, ok := event.GetStringContext(events.ContextCastID); ok {
		l.castID = id
	}
	return nil
}

func (l *castIDListener) Priority() int {
	return 200
}
