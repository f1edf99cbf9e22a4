// Package i18n loads the embedded locale catalogs and serves localized
// messages, metamagic effect aliases, and untranslated spell names.
package i18n

import (
	"context"
	"embed"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/metamagic/internal/errors"
)

// Message keys
const (
	KeyPersistentNote     = "metamagic.persistent.note"
	KeySlotsInsufficient  = "metamagic.slots.insufficient"
	KeySelectivePrompt    = "metamagic.selective.prompt"
	KeySelectiveCancelled = "metamagic.selective.cancelled"
	KeySelectiveAlly      = "metamagic.selective.ally"
	KeySelectiveFoe       = "metamagic.selective.foe"
	KeySelectiveCancel    = "metamagic.selective.cancel"
	KeySummaryTitle       = "metamagic.summary.title"
	KeySummaryApplied     = "metamagic.summary.applied"
	KeySummaryIncrease    = "metamagic.summary.increase"
	KeySummaryFullRound   = "metamagic.summary.fullround"
	KeySaveRerolled       = "metamagic.save.rerolled"
	KeySaveDazed          = "metamagic.save.dazed"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type localeFile struct {
	Locale   string              `yaml:"locale"`
	Messages map[string]string   `yaml:"messages"`
	Effects  map[string][]string `yaml:"effects"`
	Spells   map[string]string   `yaml:"spells"`
}

// Localizer serves messages for every loaded locale, falling back to the base locale
type Localizer struct {
	base     language.Tag
	tags     []language.Tag
	matcher  language.Matcher
	catalog  *catalog.Builder
	aliases  map[string]string
	spells   map[string]string
	messages map[language.Tag]map[string]string
}

// New loads the embedded catalogs with base as the fallback locale
func New(base string) (*Localizer, error) {
	return Load(embeddedLocales, base)
}

// Load reads every locales/*.yaml file in fsys
func Load(fsys fs.FS, base string) (*Localizer, error) {
	baseTag, err := language.Parse(base)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse base locale")
	}

	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "glob locale catalogs")
	}
	if len(paths) == 0 {
		return nil, errors.NotFound("no locale catalogs found")
	}
	sort.Strings(paths)

	l := &Localizer{
		base:     baseTag,
		catalog:  catalog.NewBuilder(catalog.Fallback(baseTag)),
		aliases:  map[string]string{},
		spells:   map[string]string{},
		messages: map[language.Tag]map[string]string{},
	}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "read catalog %s", path)
		}
		if err := l.add(path, data); err != nil {
			return nil, err
		}
	}

	baseMessages, ok := l.messages[baseTag]
	if !ok {
		return nil, errors.NotFoundf("base locale %s is not defined in catalogs", baseTag)
	}

	// fill untranslated keys with base text
	for tag, msgs := range l.messages {
		for key, msg := range baseMessages {
			if _, translated := msgs[key]; translated {
				continue
			}
			if err := l.catalog.SetString(tag, key, msg); err != nil {
				return nil, errors.Wrapf(err, "fallback %s for %s", key, tag)
			}
		}
	}

	// the base locale goes first so the matcher falls back to it
	sort.SliceStable(l.tags, func(i, j int) bool { return l.tags[i] == baseTag && l.tags[j] != baseTag })
	l.matcher = language.NewMatcher(l.tags)
	return l, nil
}

func (l *Localizer) add(path string, data []byte) error {
	var file localeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.Wrapf(err, "parse catalog %s", path)
	}

	tag, err := language.Parse(strings.TrimSpace(file.Locale))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeValidation, "catalog "+path+": locale")
	}
	if _, exists := l.messages[tag]; exists {
		return errors.AlreadyExistsf("catalog %s: locale %s already loaded", path, tag)
	}

	for key, msg := range file.Messages {
		if err := l.catalog.SetString(tag, key, msg); err != nil {
			return errors.Wrapf(err, "catalog %s: set %s", path, key)
		}
	}
	l.messages[tag] = file.Messages
	l.tags = append(l.tags, tag)

	for canonical, localized := range file.Effects {
		for _, alias := range localized {
			l.aliases[alias] = canonical
		}
	}
	for localized, canonical := range file.Spells {
		l.spells[strings.ToLower(localized)] = canonical
	}
	return nil
}

// Base returns the fallback locale
func (l *Localizer) Base() language.Tag {
	return l.base
}

// Match returns the closest loaded locale to locale, or the base locale
func (l *Localizer) Match(locale string) language.Tag {
	_, index, confidence := l.matcher.Match(language.Make(locale))
	if confidence == language.No {
		return l.base
	}
	return l.tags[index]
}

// Printer returns a printer for the closest loaded locale
func (l *Localizer) Printer(locale string) *message.Printer {
	return message.NewPrinter(l.Match(locale), message.Catalog(l.catalog))
}

// Sprintf formats the message stored under key for locale
func (l *Localizer) Sprintf(locale, key string, args ...any) string {
	return l.Printer(locale).Sprintf(key, args...)
}

// EffectAliases returns every localized effect name mapped to its canonical name
func (l *Localizer) EffectAliases() map[string]string {
	out := make(map[string]string, len(l.aliases))
	for alias, canonical := range l.aliases {
		out[alias] = canonical
	}
	return out
}

// CanonicalName returns the untranslated name of a spell, or name when it is not translated
func (l *Localizer) CanonicalName(_ context.Context, name string) (string, error) {
	if canonical, ok := l.spells[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical, nil
	}
	return name, nil
}

// SameLanguage reports whether two locales share a base language
func SameLanguage(a, b string) bool {
	baseA, _ := language.Make(a).Base()
	baseB, _ := language.Make(b).Base()
	return baseA == baseB
}
