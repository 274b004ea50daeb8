package dnd5e

import (
	"net/http"

	apiDnd5e "github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/dnd-features/internal/domain/equipment"
	rulebook "github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

// api is the part of the dnd5eapi.co client this package uses
type api interface {
	GetSpell(key string) (*apiEntities.Spell, error)
	ListSpells(input *apiDnd5e.ListSpellsInput) ([]*apiEntities.ReferenceItem, error)
	GetEquipment(key string) (apiDnd5e.EquipmentInterface, error)
}

// TODO: add context to functions once the upstream client accepts one
type client struct {
	client api
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg cannot be nil")
	}

	dndClient, err := apiDnd5e.NewDND5eAPI(&apiDnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to create dnd5e api client")
	}

	return &client{
		client: dndClient,
	}, nil
}

// GetSpell retrieves a spell by key. The API does not report components,
// so the returned spell has none.
func (c *client) GetSpell(key string) (*rulebook.Spell, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("spell key cannot be empty")
	}

	apiSpell, err := c.client.GetSpell(key)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get spell "+key).
			WithMeta("spell", key)
	}
	if apiSpell == nil {
		return nil, dnderr.NotFoundf("spell %s not found", key).
			WithMeta("spell", key)
	}

	return apiSpellToSpell(apiSpell), nil
}

// ListSpellKeysByClass lists the keys of every spell on a class list
func (c *client) ListSpellKeysByClass(classKey string) ([]string, error) {
	refs, err := c.client.ListSpells(&apiDnd5e.ListSpellsInput{
		Class: classKey,
	})
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to list spells for class "+classKey).
			WithMeta("class", classKey)
	}

	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref != nil && ref.Key != "" {
			keys = append(keys, ref.Key)
		}
	}
	return keys, nil
}

// GetWeapon retrieves a weapon by key. Equipment that is not a weapon is
// reported as not found.
func (c *client) GetWeapon(key string) (*equipment.Weapon, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("weapon key cannot be empty")
	}

	response, err := c.client.GetEquipment(key)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get equipment "+key).
			WithMeta("weapon", key)
	}

	weapon, ok := response.(*apiEntities.Weapon)
	if !ok || weapon == nil {
		return nil, dnderr.NotFoundf("weapon %s not found", key).
			WithMeta("weapon", key)
	}

	return apiWeaponToWeapon(weapon), nil
}
