package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	// maxRowComponents is how many buttons fit in one action row
	maxRowComponents = 5
	// maxSelectOptions is Discord's limit on select menu options
	maxSelectOptions = 25
)

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	rows       []discordgo.MessageComponent
	currentRow []discordgo.MessageComponent
}

// NewComponentBuilder creates a new component builder
func NewComponentBuilder() *ComponentBuilder {
	return &ComponentBuilder{
		currentRow: make([]discordgo.MessageComponent, 0, maxRowComponents),
	}
}

// Button adds a button to the current row
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, customID string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: customID,
	})
	return b
}

// SelectOption represents an option in a select menu
type SelectOption struct {
	Label       string
	Value       string
	Description string
}

// SelectMenu adds a select menu on its own row. Options past Discord's limit are dropped.
func (b *ComponentBuilder) SelectMenu(placeholder, customID string, options []SelectOption, minValues, maxValues int) *ComponentBuilder {
	if len(options) > maxSelectOptions {
		options = options[:maxSelectOptions]
	}

	discordOptions := make([]discordgo.SelectMenuOption, len(options))
	for i, opt := range options {
		discordOptions[i] = discordgo.SelectMenuOption{
			Label:       opt.Label,
			Value:       opt.Value,
			Description: opt.Description,
		}
	}

	minVal := max(0, minValues)
	b.NewRow()
	b.addComponent(discordgo.SelectMenu{
		CustomID:    customID,
		Placeholder: placeholder,
		MinValues:   &minVal,
		MaxValues:   min(max(1, maxValues), len(discordOptions)),
		Options:     discordOptions,
	})
	b.NewRow()
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{Components: b.currentRow})
		b.currentRow = make([]discordgo.MessageComponent, 0, maxRowComponents)
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}

func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= maxRowComponents {
		b.NewRow()
	}
	b.currentRow = append(b.currentRow, component)
}
