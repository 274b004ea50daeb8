package rulebook

import (
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
)

// Spell represents a D&D 5e spell entry as granted to a character.
// Level and Components are mutable so features can rewrite how a
// granted copy is cast.
type Spell struct {
	Key           string                 `json:"key"`
	Name          string                 `json:"name"`
	Level         int                    `json:"level"` // 0 for cantrips
	School        string                 `json:"school"`
	CastingTime   string                 `json:"casting_time"`
	Range         string                 `json:"range"`
	Components    []shared.ComponentType `json:"components"`
	Duration      string                 `json:"duration"`
	Concentration bool                   `json:"concentration"`
	Ritual        bool                   `json:"ritual"`
	Description   string                 `json:"description,omitempty"`
	Classes       []string               `json:"classes,omitempty"`
}

// IsCantrip reports whether the spell is cast without a slot
func (s *Spell) IsCantrip() bool {
	return s.Level == 0
}

// HasComponent checks if the spell requires the given component
func (s *Spell) HasComponent(c shared.ComponentType) bool {
	for _, existing := range s.Components {
		if existing == c {
			return true
		}
	}
	return false
}

// RemoveComponent drops every occurrence of c and reports whether anything changed
func (s *Spell) RemoveComponent(c shared.ComponentType) bool {
	kept := make([]shared.ComponentType, 0, len(s.Components))
	for _, existing := range s.Components {
		if existing != c {
			kept = append(kept, existing)
		}
	}
	removed := len(kept) != len(s.Components)
	s.Components = kept
	return removed
}

// Clone returns a deep copy so the caller can mutate it freely
func (s *Spell) Clone() *Spell {
	if s == nil {
		return nil
	}

	c := *s
	if s.Components != nil {
		c.Components = append([]shared.ComponentType(nil), s.Components...)
	}
	if s.Classes != nil {
		c.Classes = append([]string(nil), s.Classes...)
	}
	return &c
}
