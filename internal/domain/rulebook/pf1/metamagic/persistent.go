package metamagic

import (
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

// DefaultPersistentNote is the footer used when no localized note is supplied
const DefaultPersistentNote = "Persistent Spell: targets that succeed on their save must save again and are affected if the second save fails."

type persistentSpell struct{}

// NewPersistentSpell forces a second save on a successful one
func NewPersistentSpell() Effect { return persistentSpell{} }

func (persistentSpell) Name() Name { return PersistentSpell }
func (persistentSpell) Cost() int  { return 2 }

func (e persistentSpell) Apply(c *spellcast.Context, args *Args) bool {
	if !c.Save.IsSet() {
		return false
	}

	note := args.PersistentNote
	if note == "" {
		note = DefaultPersistentNote
	}
	c.AddFooterNote(note)
	c.Metamagic.Persistent = true
	c.MarkApplied(string(e.Name()), e.Cost())
	return true
}
