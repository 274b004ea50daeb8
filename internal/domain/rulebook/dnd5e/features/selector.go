package features

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

// Option is one choice a selector offers. Every alias resolves to the same
// feature.
type Option struct {
	Aliases []string
	New     Factory
}

// Selector stands in for a feature the player picks from a fixed set of
// options, such as a Pact Boon.
type Selector struct {
	BaseFeature
	options map[string]Factory
	choice  string
}

func newSelector(key, name, source, description string, options ...Option) *Selector {
	s := &Selector{
		BaseFeature: BaseFeature{
			key:         key,
			name:        name,
			source:      source,
			description: description,
		},
		options: make(map[string]Factory),
	}
	for _, opt := range options {
		for _, alias := range opt.Aliases {
			s.options[normalizeChoice(alias)] = opt.New
		}
	}
	return s
}

// Options lists every accepted alias in sorted order
func (s *Selector) Options() []string {
	aliases := make([]string, 0, len(s.options))
	for alias := range s.options {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// Choice returns the key chosen for this selector
func (s *Selector) Choice() string {
	return s.choice
}

// Choose records the player's choice. A selector is chosen once.
func (s *Selector) Choose(choice string) error {
	if s.choice != "" {
		return dnderr.InvalidArgumentf("selector %s already chose %q", s.key, s.choice).
			WithMeta("feature", s.key)
	}
	if _, ok := s.options[normalizeChoice(choice)]; !ok {
		return s.unknownOption(choice)
	}
	s.choice = choice
	return nil
}

// ResolveChoice resolves the recorded choice
func (s *Selector) ResolveChoice() (Feature, error) {
	return s.Resolve(s.choice)
}

// Resolve builds a new instance of the feature chosen by key. When the
// selector is bound, the result is bound to the same owner.
func (s *Selector) Resolve(choice string) (Feature, error) {
	factory, ok := s.options[normalizeChoice(choice)]
	if !ok {
		return nil, s.unknownOption(choice)
	}

	resolved := factory()
	if s.spellSource != nil {
		if setter, ok := resolved.(spellSourceSetter); ok {
			setter.SetSpellSource(s.spellSource)
		}
	}

	if s.owner != nil {
		if err := resolved.Bind(s.owner); err != nil {
			return nil, dnderr.Wrapf(err, "failed to bind %s resolved from %s", resolved.Key(), s.key)
		}
	}

	log.Debug().
		Str("selector", s.key).
		Str("choice", choice).
		Str("feature", resolved.Key()).
		Msg("resolved feature selection")

	return resolved, nil
}

func (s *Selector) unknownOption(choice string) error {
	return dnderr.UnknownOptionf("%q is not an option for %s", choice, s.key).
		WithMeta("feature", s.key).
		WithMeta("choice", choice)
}

func normalizeChoice(choice string) string {
	return strings.ToLower(strings.TrimSpace(choice))
}
