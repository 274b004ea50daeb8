package spells

import (
	"time"

	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
)

// Data is the stored form of a cached spell
type Data struct {
	Key           string    `json:"key"`
	Name          string    `json:"name"`
	Level         int       `json:"level"`
	School        string    `json:"school,omitempty"`
	CastingTime   string    `json:"casting_time,omitempty"`
	Range         string    `json:"range,omitempty"`
	Components    []string  `json:"components,omitempty"`
	Duration      string    `json:"duration,omitempty"`
	Concentration bool      `json:"concentration,omitempty"`
	Ritual        bool      `json:"ritual,omitempty"`
	Description   string    `json:"description,omitempty"`
	Classes       []string  `json:"classes,omitempty"`
	FetchedAt     time.Time `json:"fetched_at"`
}

func toSpellData(spell *rulebook.Spell, fetchedAt time.Time) *Data {
	if spell == nil {
		return nil
	}

	data := &Data{
		Key:           spell.Key,
		Name:          spell.Name,
		Level:         spell.Level,
		School:        spell.School,
		CastingTime:   spell.CastingTime,
		Range:         spell.Range,
		Duration:      spell.Duration,
		Concentration: spell.Concentration,
		Ritual:        spell.Ritual,
		Description:   spell.Description,
		Classes:       append([]string(nil), spell.Classes...),
		FetchedAt:     fetchedAt,
	}
	for _, c := range spell.Components {
		data.Components = append(data.Components, string(c))
	}
	return data
}

func toSpell(data *Data) *rulebook.Spell {
	if data == nil {
		return nil
	}

	spell := &rulebook.Spell{
		Key:           data.Key,
		Name:          data.Name,
		Level:         data.Level,
		School:        data.School,
		CastingTime:   data.CastingTime,
		Range:         data.Range,
		Duration:      data.Duration,
		Concentration: data.Concentration,
		Ritual:        data.Ritual,
		Description:   data.Description,
		Classes:       append([]string(nil), data.Classes...),
	}
	for _, c := range data.Components {
		// unknown component codes are dropped rather than failing the read
		if component, ok := shared.ParseComponent(c); ok {
			spell.Components = append(spell.Components, component)
		}
	}
	return spell
}
