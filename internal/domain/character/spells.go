package character

import (
	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
)

// SpellList holds the spell instances granted by attached features. The
// same instance may sit in both lists.
type SpellList struct {
	Known    []*rulebook.Spell `json:"known"`
	Prepared []*rulebook.Spell `json:"prepared"`
}

func (l *SpellList) add(known, prepared []*rulebook.Spell) {
	l.Known = append(l.Known, known...)
	l.Prepared = append(l.Prepared, prepared...)
}

// remove drops exactly the given instances, leaving equal copies granted by
// other features in place
func (l *SpellList) remove(granted []*rulebook.Spell) {
	drop := make(map[*rulebook.Spell]bool, len(granted))
	for _, s := range granted {
		drop[s] = true
	}
	l.Known = without(l.Known, drop)
	l.Prepared = without(l.Prepared, drop)
}

func without(list []*rulebook.Spell, drop map[*rulebook.Spell]bool) []*rulebook.Spell {
	kept := list[:0:0]
	for _, s := range list {
		if !drop[s] {
			kept = append(kept, s)
		}
	}
	return kept
}
