package metamagic

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/KirkDiggler/metamagic/internal/errors"
)

const spellSuffix = " spell"

// rodPhrasings match "rod of X metamagic" and "X metamagic rod", with an optional rod size
var rodPhrasings = []*regexp.Regexp{
	regexp.MustCompile(`^(?:(?:lesser|normal|greater) )?rod of (.+) metamagic$`),
	regexp.MustCompile(`^(?:(?:lesser|normal|greater) )?(.+) metamagic rod$`),
}

var lowerCaser = cases.Lower(language.Und)

// Normalize folds a display name for lookup: diacritics removed, lowercased,
// anything outside [a-z0-9 ] dropped, whitespace collapsed.
func Normalize(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}
	folded = lowerCaser.String(folded)

	folded = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, folded)
	return strings.Join(strings.Fields(folded), " ")
}

// Registry maps display names onto the effect catalog
type Registry struct {
	mu       sync.RWMutex
	effects  map[Name]Effect
	names    map[string]Name
	prefixes map[string]Name
}

// NewRegistry builds a registry over effects, or over the full catalog when none are given
func NewRegistry(effects ...Effect) *Registry {
	if len(effects) == 0 {
		effects = All()
	}

	r := &Registry{
		effects:  make(map[Name]Effect, len(effects)),
		names:    make(map[string]Name, len(effects)),
		prefixes: make(map[string]Name, len(effects)),
	}
	for _, e := range effects {
		if err := r.Register(e); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds an effect under its canonical name and prefix
func (r *Registry) Register(effect Effect) error {
	if effect == nil {
		return errors.InvalidArgument("effect cannot be nil")
	}

	name := effect.Name()
	key := Normalize(string(name))
	if key == "" {
		return errors.InvalidArgument("effect name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.effects[name]; exists {
		return errors.AlreadyExistsf("effect %s already registered", name)
	}

	r.effects[name] = effect
	r.names[key] = name
	r.prefixes[strings.TrimSuffix(key, spellSuffix)] = name
	return nil
}

// RegisterAlias makes alias resolve to name, typically a localized display name
func (r *Registry) RegisterAlias(alias string, name Name) error {
	key := Normalize(alias)
	if key == "" {
		return errors.InvalidArgumentf("alias %q is empty after normalization", alias)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.effects[name]; !exists {
		return errors.NotFoundf("effect %s not registered", name)
	}
	if existing, taken := r.names[key]; taken && existing != name {
		return errors.AlreadyExistsf("alias %q already resolves to %s", alias, existing)
	}
	r.names[key] = name
	return nil
}

// RegisterAliases registers alias to canonical name pairs, in alias order
func (r *Registry) RegisterAliases(aliases map[string]string) error {
	keys := make([]string, 0, len(aliases))
	for alias := range aliases {
		keys = append(keys, alias)
	}
	sort.Strings(keys)

	for _, alias := range keys {
		if err := r.RegisterAlias(alias, Name(aliases[alias])); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the canonical effect name for a display name.
// It matches canonical names, prefixes, aliases, and the two rod phrasings, nothing looser.
func (r *Registry) Resolve(display string) (Name, bool) {
	key := Normalize(display)
	if key == "" {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if name, ok := r.names[key]; ok {
		return name, true
	}
	if name, ok := r.prefixes[key]; ok {
		return name, true
	}

	for _, p := range rodPhrasings {
		m := p.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		if name, ok := r.prefixes[Normalize(m[1])]; ok {
			return name, true
		}
	}
	return "", false
}

// ResolveAll resolves every display name, dropping unknown ones and duplicates
func (r *Registry) ResolveAll(displays []string) []Name {
	seen := make(map[Name]bool, len(displays))
	out := make([]Name, 0, len(displays))
	for _, d := range displays {
		name, ok := r.Resolve(d)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// Effect returns the registered effect for a canonical name
func (r *Registry) Effect(name Name) (Effect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.effects[name]
	return e, ok
}

// Effects returns the registered effects in application order
func (r *Registry) Effects() []Effect {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Effect, 0, len(r.effects))
	for _, name := range Order {
		if e, ok := r.effects[name]; ok {
			out = append(out, e)
		}
	}
	return out
}
