package config

import (
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/metamagic/internal/errors"
)

// CastingTimeRules are the accepted values of METAMAGIC_CASTING_TIME_RULE
var CastingTimeRules = []string{"standard", "strict", "none"}

// Config holds all configuration for the application
type Config struct {
	Metamagic MetamagicConfig
	Redis     RedisConfig
	Discord   DiscordConfig
}

// MetamagicConfig controls how selections are applied
type MetamagicConfig struct {
	CastingTimeRule string        `env:"METAMAGIC_CASTING_TIME_RULE" envDefault:"standard"`
	BaseLocale      string        `env:"METAMAGIC_BASE_LOCALE"       envDefault:"en-US"`
	Locale          string        `env:"METAMAGIC_LOCALE"            envDefault:"en-US"`
	PromptTimeout   time.Duration `env:"METAMAGIC_PROMPT_TIMEOUT"    envDefault:"2m"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL       string        `env:"REDIS_URL"       envDefault:"redis://localhost:6379/0"`
	RecordTTL time.Duration `env:"CAST_RECORD_TTL" envDefault:"24h"`
}

// DiscordConfig holds Discord-specific configuration. Both fields are
// optional; without them the exclusion prompt falls back to the terminal.
type DiscordConfig struct {
	Token     string `env:"DISCORD_TOKEN"`
	ChannelID string `env:"DISCORD_CHANNEL_ID"`
}

// Enabled reports whether enough is configured to prompt over Discord
func (d DiscordConfig) Enabled() bool {
	return d.Token != "" && d.ChannelID != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom loads configuration from the given variables instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return load(env.Options{Environment: vars})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeValidation, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enum and locale values
func (c *Config) Validate() error {
	m := c.Metamagic
	if !slices.Contains(CastingTimeRules, m.CastingTimeRule) {
		return errors.Validationf("METAMAGIC_CASTING_TIME_RULE must be one of %v, got %q", CastingTimeRules, m.CastingTimeRule)
	}
	if _, err := language.Parse(m.BaseLocale); err != nil {
		return errors.WrapWithCode(err, errors.CodeValidation, "METAMAGIC_BASE_LOCALE")
	}
	if _, err := language.Parse(m.Locale); err != nil {
		return errors.WrapWithCode(err, errors.CodeValidation, "METAMAGIC_LOCALE")
	}
	if m.PromptTimeout <= 0 {
		return errors.Validationf("METAMAGIC_PROMPT_TIMEOUT must be positive, got %s", m.PromptTimeout)
	}
	if c.Redis.RecordTTL <= 0 {
		return errors.Validationf("CAST_RECORD_TTL must be positive, got %s", c.Redis.RecordTTL)
	}
	return nil
}
