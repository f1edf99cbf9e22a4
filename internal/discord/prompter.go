// Package discord renders metamagic prompts and cast summaries as Discord components.
package discord

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/metamagic/internal/errors"
	"github.com/KirkDiggler/metamagic/internal/services/metamagic"
	"github.com/KirkDiggler/metamagic/internal/uuid"
)

const (
	// Domain prefixes every custom ID this package issues
	Domain = "metamagic"

	ActionExclude = "exclude"
	ActionCancel  = "cancel"

	// DefaultPromptTimeout is how long a caster has to answer before the cast is dropped
	DefaultPromptTimeout = 2 * time.Minute
)

// Session is the part of *discordgo.Session the prompter needs
type Session interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

type promptReply struct {
	excluded  []string
	cancelled bool
}

type pendingPrompt struct {
	actorID string
	reply   chan promptReply
}

// Prompter asks for Selective Spell exclusions with a select menu and a cancel button
type Prompter struct {
	session   Session
	channelID string
	timeout   time.Duration
	ids       uuid.Generator

	mu      sync.Mutex
	pending map[string]*pendingPrompt
}

// PrompterConfig holds configuration for the Discord prompter
type PrompterConfig struct {
	Session   Session
	ChannelID string
	Timeout   time.Duration
	// IDs names each prompt; defaults to random UUIDs
	IDs uuid.Generator
}

// NewPrompter creates a new Discord exclusion prompter
func NewPrompter(cfg *PrompterConfig) *Prompter {
	if cfg.Session == nil {
		panic("discord session is required")
	}
	if cfg.ChannelID == "" {
		panic("channel ID is required")
	}

	p := &Prompter{
		session:   cfg.Session,
		channelID: cfg.ChannelID,
		timeout:   cfg.Timeout,
		ids:       cfg.IDs,
		pending:   make(map[string]*pendingPrompt),
	}
	if p.timeout <= 0 {
		p.timeout = DefaultPromptTimeout
	}
	if p.ids == nil {
		p.ids = uuid.NewGoogleUUIDGenerator()
	}
	return p
}

// PromptExclusions posts the prompt and blocks until the caster answers,
// the prompt times out, or ctx is done. Anything but a selection is a cancel.
func (p *Prompter) PromptExclusions(ctx context.Context, req *metamagic.ExclusionRequest) ([]string, bool, error) {
	if req == nil || len(req.Candidates) == 0 {
		return nil, false, errors.InvalidArgument("exclusion request needs candidates")
	}

	promptID := p.ids.New()
	selectID, err := NewCustomID(Domain, ActionExclude).WithTarget(promptID).Encode()
	if err != nil {
		return nil, false, err
	}
	cancelID, err := NewCustomID(Domain, ActionCancel).WithTarget(promptID).Encode()
	if err != nil {
		return nil, false, err
	}

	options := make([]SelectOption, 0, len(req.Candidates))
	for _, c := range req.Candidates {
		options = append(options, SelectOption{Label: c.Label, Value: c.ID})
	}

	cancelLabel := req.CancelLabel
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}

	components := NewComponentBuilder().
		SelectMenu(req.Prompt, selectID, options, 0, req.Max).
		Button(cancelLabel, discordgo.DangerButton, cancelID).
		Build()

	pending := &pendingPrompt{actorID: req.ActorID, reply: make(chan promptReply, 1)}
	p.mu.Lock()
	p.pending[promptID] = pending
	p.mu.Unlock()
	defer p.forget(promptID)

	_, err = p.session.ChannelMessageSendComplex(p.channelID, &discordgo.MessageSend{
		Content:    req.Prompt,
		Components: components,
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to send exclusion prompt")
	}

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case reply := <-pending.reply:
		return reply.excluded, reply.cancelled, nil
	case <-timer.C:
		log.Printf("Exclusion prompt %s for %s timed out", promptID, req.SpellName)
		return nil, true, nil
	case <-ctx.Done():
		return nil, true, ctx.Err()
	}
}

// HandleInteraction routes a component interaction to its waiting prompt.
// It reports false for interactions that belong to someone else.
func (p *Prompter) HandleInteraction(s Session, i *discordgo.InteractionCreate) (bool, error) {
	if i == nil || i.Interaction == nil || i.Type != discordgo.InteractionMessageComponent {
		return false, nil
	}

	data := i.MessageComponentData()
	customID, err := ParseCustomID(data.CustomID)
	if err != nil || customID.Domain != Domain {
		return false, nil
	}

	p.mu.Lock()
	pending, ok := p.pending[customID.Target]
	p.mu.Unlock()
	if !ok {
		return true, respondEphemeral(s, i.Interaction, "This prompt has expired.")
	}

	if pending.actorID != "" && interactionUserID(i.Interaction) != pending.actorID {
		return true, respondEphemeral(s, i.Interaction, "Only the caster can answer this prompt.")
	}

	var reply promptReply
	switch customID.Action {
	case ActionExclude:
		reply.excluded = append([]string(nil), data.Values...)
	case ActionCancel:
		reply.cancelled = true
	default:
		return true, errors.InvalidArgumentf("unknown metamagic action %q", customID.Action)
	}

	select {
	case pending.reply <- reply:
	default:
		return true, respondEphemeral(s, i.Interaction, "This prompt was already answered.")
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		return true, errors.Wrap(err, "failed to acknowledge exclusion prompt")
	}
	return true, nil
}

// Pending reports how many prompts are waiting for an answer
func (p *Prompter) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

func (p *Prompter) forget(promptID string) {
	p.mu.Lock()
	delete(p.pending, promptID)
	p.mu.Unlock()
}

func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respondEphemeral(s Session, i *discordgo.Interaction, content string) error {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to respond to interaction")
	}
	return nil
}
