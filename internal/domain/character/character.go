package character

import (
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/dnd-features/internal/domain/equipment"
	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/features"
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
	"github.com/KirkDiggler/dnd-features/internal/uuid"
)

// AttachedFeature is a feature attached to a character under its own ID,
// so two instances of the same feature can be told apart
type AttachedFeature struct {
	ID      string
	Feature features.Feature
}

// Character is a character build. It is not safe for concurrent use;
// callers serialize access themselves.
type Character struct {
	ID         string
	Name       string
	Classes    map[string]int
	Attributes map[shared.Attribute]*AbilityScore

	// Spells tracks the spells granted by attached features
	Spells *SpellList `json:"spells,omitempty"`

	EquippedWeapon *equipment.Weapon `json:"equipped_weapon,omitempty"`

	features []*AttachedFeature

	// idGenerator names attachments (defaults to random UUIDs)
	idGenerator uuid.Generator
}

// NewCharacter creates a character with every ability at 10
func NewCharacter(name string) *Character {
	idGenerator := uuid.NewGoogleUUIDGenerator()
	c := &Character{
		ID:          idGenerator.New(),
		Name:        name,
		Classes:     make(map[string]int),
		Attributes:  make(map[shared.Attribute]*AbilityScore, len(shared.Attributes)),
		Spells:      &SpellList{},
		idGenerator: idGenerator,
	}
	for _, attr := range shared.Attributes {
		c.Attributes[attr] = NewAbilityScore(10)
	}
	return c
}

// WithIDGenerator sets the attachment ID generator (for testing)
func (c *Character) WithIDGenerator(gen uuid.Generator) *Character {
	c.idGenerator = gen
	return c
}

func (c *Character) getIDGenerator() uuid.Generator {
	if c.idGenerator == nil {
		c.idGenerator = uuid.NewGoogleUUIDGenerator()
	}
	return c.idGenerator
}

// Level returns the total character level across classes
func (c *Character) Level() int {
	total := 0
	for _, lvl := range c.Classes {
		total += lvl
	}
	return total
}

// ClassLevel returns the level in one class, 0 when absent
func (c *Character) ClassLevel(classKey string) int {
	return c.Classes[classKey]
}

// SetClassLevel sets the level in a class. Level 0 removes the class.
func (c *Character) SetClassLevel(classKey string, level int) error {
	if classKey == "" {
		return dnderr.InvalidArgument("class key cannot be empty")
	}
	if level < 0 || level > 20 {
		return dnderr.InvalidArgumentf("level %d for %s is out of range", level, classKey).
			WithMeta("class", classKey)
	}

	if c.Classes == nil {
		c.Classes = make(map[string]int)
	}
	if level == 0 {
		delete(c.Classes, classKey)
		return nil
	}
	c.Classes[classKey] = level
	return nil
}

// SetAbilityScore replaces a score and recomputes its modifier
func (c *Character) SetAbilityScore(attr shared.Attribute, score int) {
	if c.Attributes == nil {
		c.Attributes = make(map[shared.Attribute]*AbilityScore)
	}
	c.Attributes[attr] = NewAbilityScore(score)
}

// AbilityModifier returns the modifier for attr, 0 when the score is unset
func (c *Character) AbilityModifier(attr shared.Attribute) int {
	if score := c.Attributes[attr]; score != nil {
		return score.Bonus
	}
	return 0
}

// Attach binds a feature to the character and records the spells it
// grants. Selectors are replaced by the feature they resolve to. On error
// the character is left unchanged.
func (c *Character) Attach(feature features.Feature) (string, error) {
	if feature == nil {
		return "", dnderr.InvalidArgument("feature cannot be nil")
	}

	if resolver, ok := feature.(features.Resolver); ok {
		resolved, err := resolver.ResolveChoice()
		if err != nil {
			return "", dnderr.Wrapf(err, "failed to resolve %s", feature.Key())
		}
		feature = resolved
	}

	for _, attached := range c.features {
		if attached.Feature == feature {
			return "", dnderr.AlreadyExistsf("feature %s is already attached", feature.Key()).
				WithMeta("feature", feature.Key()).
				WithMeta("attachment_id", attached.ID)
		}
	}

	if err := feature.Bind(c); err != nil {
		return "", dnderr.Wrapf(err, "failed to attach %s", feature.Key())
	}

	attached := &AttachedFeature{
		ID:      c.getIDGenerator().New(),
		Feature: feature,
	}
	c.features = append(c.features, attached)
	if c.Spells == nil {
		c.Spells = &SpellList{}
	}
	c.Spells.add(feature.SpellsKnown(), feature.SpellsPrepared())

	log.Debug().
		Str("character_id", c.ID).
		Str("feature", feature.Key()).
		Str("attachment_id", attached.ID).
		Int("spells_granted", len(feature.Grants())).
		Msg("attached feature")

	return attached.ID, nil
}

// AttachAll attaches features in order. If any attach fails, the features
// attached by this call are detached again.
func (c *Character) AttachAll(feats ...features.Feature) ([]string, error) {
	ids := make([]string, 0, len(feats))
	for _, f := range feats {
		id, err := c.Attach(f)
		if err != nil {
			for i := len(ids) - 1; i >= 0; i-- {
				_ = c.Detach(ids[i])
			}
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Detach removes an attached feature along with the spell instances it
// granted. The feature stays bound to this character.
func (c *Character) Detach(id string) error {
	for i, attached := range c.features {
		if attached.ID != id {
			continue
		}

		c.features = append(c.features[:i:i], c.features[i+1:]...)
		if c.Spells != nil {
			c.Spells.remove(attached.Feature.Grants())
		}

		log.Debug().
			Str("character_id", c.ID).
			Str("feature", attached.Feature.Key()).
			Str("attachment_id", id).
			Msg("detached feature")
		return nil
	}

	return dnderr.NotFoundf("attachment %s not found", id).
		WithMeta("attachment_id", id)
}

// Attached returns the attachments in attachment order
func (c *Character) Attached() []*AttachedFeature {
	return append([]*AttachedFeature(nil), c.features...)
}

// Features returns the attached features in attachment order
func (c *Character) Features() []features.Feature {
	result := make([]features.Feature, 0, len(c.features))
	for _, attached := range c.features {
		result = append(result, attached.Feature)
	}
	return result
}

// FeatureNames returns the display name of every attached feature
func (c *Character) FeatureNames() ([]string, error) {
	names := make([]string, 0, len(c.features))
	for _, attached := range c.features {
		name, err := attached.Feature.Name()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// SpellsKnown returns the known spells in grant order
func (c *Character) SpellsKnown() []*rulebook.Spell {
	if c.Spells == nil {
		return nil
	}
	return append([]*rulebook.Spell(nil), c.Spells.Known...)
}

// SpellsPrepared returns the prepared spells in grant order
func (c *Character) SpellsPrepared() []*rulebook.Spell {
	if c.Spells == nil {
		return nil
	}
	return append([]*rulebook.Spell(nil), c.Spells.Prepared...)
}
