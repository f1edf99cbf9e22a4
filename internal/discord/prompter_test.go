package discord

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/metamagic/internal/services/metamagic"
	"github.com/KirkDiggler/metamagic/internal/uuid"
)

type fakeSession struct {
	sent      chan *discordgo.MessageSend
	responses []*discordgo.InteractionResponse
	sendErr   error
}

func newFakeSession() *fakeSession {
	return &fakeSession{sent: make(chan *discordgo.MessageSend, 4)}
}

func (f *fakeSession) ChannelMessageSendComplex(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent <- data
	return &discordgo.Message{ID: "msg-1"}, nil
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func exclusionRequest() *metamagic.ExclusionRequest {
	return &metamagic.ExclusionRequest{
		ActorID:     "seoni",
		SpellName:   "Fireball",
		Prompt:      "Choose up to 2 targets to exclude from Fireball.",
		CancelLabel: "Cancel",
		Max:         2,
		Candidates: []metamagic.Candidate{
			{ID: "valeros", Name: "Valeros", Ally: true, Label: "Valeros (Ally)"},
			{ID: "goblin", Name: "Goblin", Label: "Goblin (Foe)"},
		},
	}
}

func componentInteraction(userID, customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:   discordgo.InteractionMessageComponent,
		Member: &discordgo.Member{User: &discordgo.User{ID: userID}},
		Data:   discordgo.MessageComponentInteractionData{CustomID: customID, Values: values},
	}}
}

type promptResult struct {
	excluded  []string
	cancelled bool
	err       error
}

func startPrompt(ctx context.Context, p *Prompter, req *metamagic.ExclusionRequest) <-chan promptResult {
	done := make(chan promptResult, 1)
	go func() {
		excluded, cancelled, err := p.PromptExclusions(ctx, req)
		done <- promptResult{excluded, cancelled, err}
	}()
	return done
}

func TestPrompter_Selection(t *testing.T) {
	session := newFakeSession()
	p := NewPrompter(&PrompterConfig{
		Session:   session,
		ChannelID: "table",
		IDs:       uuid.NewSequenceGenerator("prompt"),
	})

	done := startPrompt(context.Background(), p, exclusionRequest())

	msg := <-session.sent
	assert.Equal(t, "Choose up to 2 targets to exclude from Fireball.", msg.Content)
	require.Len(t, msg.Components, 2)
	menu := msg.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, "metamagic:exclude:prompt-1", menu.CustomID)
	assert.Equal(t, 2, menu.MaxValues)
	assert.Equal(t, "Valeros (Ally)", menu.Options[0].Label)
	assert.Equal(t, "goblin", menu.Options[1].Value)

	handled, err := p.HandleInteraction(session, componentInteraction("seoni", "metamagic:exclude:prompt-1", "valeros"))
	require.NoError(t, err)
	assert.True(t, handled)

	result := <-done
	require.NoError(t, result.err)
	assert.False(t, result.cancelled)
	assert.Equal(t, []string{"valeros"}, result.excluded)
	assert.Equal(t, 0, p.Pending())

	require.Len(t, session.responses, 1)
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, session.responses[0].Type)
}

func TestPrompter_CancelButton(t *testing.T) {
	session := newFakeSession()
	p := NewPrompter(&PrompterConfig{Session: session, ChannelID: "table", IDs: uuid.NewSequenceGenerator("prompt")})

	done := startPrompt(context.Background(), p, exclusionRequest())
	<-session.sent

	handled, err := p.HandleInteraction(session, componentInteraction("seoni", "metamagic:cancel:prompt-1"))
	require.NoError(t, err)
	assert.True(t, handled)

	result := <-done
	require.NoError(t, result.err)
	assert.True(t, result.cancelled)
	assert.Empty(t, result.excluded)
}

func TestPrompter_OnlyCasterAnswers(t *testing.T) {
	session := newFakeSession()
	p := NewPrompter(&PrompterConfig{Session: session, ChannelID: "table", IDs: uuid.NewSequenceGenerator("prompt")})

	done := startPrompt(context.Background(), p, exclusionRequest())
	<-session.sent

	handled, err := p.HandleInteraction(session, componentInteraction("valeros", "metamagic:exclude:prompt-1", "goblin"))
	require.NoError(t, err)
	assert.True(t, handled)
	require.Len(t, session.responses, 1)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, session.responses[0].Data.Flags)
	assert.Equal(t, 1, p.Pending())

	_, err = p.HandleInteraction(session, componentInteraction("seoni", "metamagic:cancel:prompt-1"))
	require.NoError(t, err)
	assert.True(t, (<-done).cancelled)
}

func TestPrompter_Timeout(t *testing.T) {
	session := newFakeSession()
	p := NewPrompter(&PrompterConfig{Session: session, ChannelID: "table", Timeout: 10 * time.Millisecond})

	excluded, cancelled, err := p.PromptExclusions(context.Background(), exclusionRequest())
	require.NoError(t, err)
	assert.True(t, cancelled)
	assert.Nil(t, excluded)
	assert.Equal(t, 0, p.Pending())
}

func TestPrompter_ContextCancelled(t *testing.T) {
	session := newFakeSession()
	p := NewPrompter(&PrompterConfig{Session: session, ChannelID: "table"})

	ctx, cancel := context.WithCancel(context.Background())
	done := startPrompt(ctx, p, exclusionRequest())
	<-session.sent
	cancel()

	result := <-done
	assert.True(t, result.cancelled)
	assert.ErrorIs(t, result.err, context.Canceled)
}

func TestPrompter_IgnoresForeignInteractions(t *testing.T) {
	session := newFakeSession()
	p := NewPrompter(&PrompterConfig{Session: session, ChannelID: "table"})

	handled, err := p.HandleInteraction(session, componentInteraction("seoni", "character:show:1"))
	require.NoError(t, err)
	assert.False(t, handled)

	handled, err = p.HandleInteraction(session, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{Type: discordgo.InteractionApplicationCommand}})
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestPrompter_ExpiredPrompt(t *testing.T) {
	session := newFakeSession()
	p := NewPrompter(&PrompterConfig{Session: session, ChannelID: "table"})

	handled, err := p.HandleInteraction(session, componentInteraction("seoni", "metamagic:exclude:gone", "goblin"))
	require.NoError(t, err)
	assert.True(t, handled)
	require.Len(t, session.responses, 1)
	assert.Equal(t, "This prompt has expired.", session.responses[0].Data.Content)
}

func TestNewPrompter_RequiresSession(t *testing.T) {
	assert.Panics(t, func() {
		NewPrompter(&PrompterConfig{ChannelID: "table"})
	})
}
