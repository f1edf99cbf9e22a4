package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/metamagic/internal/i18n"
	"github.com/KirkDiggler/metamagic/internal/services/metamagic"
)

// Common colors for embeds
const (
	ColorSuccess = 0x00ff00
	ColorWarning = 0xffff00
	ColorDanger  = 0xff0000
	ColorArcane  = 0x9b59b6
)

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

// Title sets the embed title
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the embed description
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

// Color sets the embed color
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Field adds a field. Empty values are skipped.
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	if value == "" {
		return b
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// Footer sets the embed footer
func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return b
}

// Build returns the built embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// CastSummaryEmbed renders the outcome of ApplySelections for the channel
func CastSummaryEmbed(loc metamagic.Localizer, locale, spell string, result *metamagic.ApplyResult) *discordgo.MessageEmbed {
	b := NewEmbed().
		Title(loc.Sprintf(locale, i18n.KeySummaryTitle, spell)).
		Color(ColorArcane)

	if result == nil {
		return b.Build()
	}
	if result.Reject {
		return b.Color(ColorDanger).Description(result.Warning).Build()
	}

	b.Field(loc.Sprintf(locale, i18n.KeySummaryApplied), strings.Join(result.Applied, ", "), false)
	if result.SlotIncrease > 0 {
		b.Field(loc.Sprintf(locale, i18n.KeySummaryIncrease), fmt.Sprintf("+%d", result.SlotIncrease), true)
	}
	if result.ActivationExtraFullRound {
		b.Description(loc.Sprintf(locale, i18n.KeySummaryFullRound))
	}
	if result.Warning != "" {
		b.Color(ColorWarning).Footer(result.Warning)
	}
	return b.Build()
}
