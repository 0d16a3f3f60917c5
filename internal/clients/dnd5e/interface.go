package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e -source=interface.go

import (
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
)

// Client is the part of the D&D 5e API the catalog source needs.
// dnd5e.Interface and the library's cached client both satisfy it.
type Client interface {
	ListMonstersWithFilter(input *dnd5e.ListMonstersInput) ([]*apiEntities.ReferenceItem, error)
	GetMonster(key string) (*apiEntities.Monster, error)
	GetSpell(key string) (*apiEntities.Spell, error)
}
