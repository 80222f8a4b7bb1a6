package domain

import (
	interfaces "pokeroster/internal/domain/interfaces"
	types "pokeroster/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SpeciesID    = types.SpeciesID
	SlotKind     = types.SlotKind
	SlotRef      = types.SlotRef
	PokemonEntry = types.PokemonEntry
	Roster       = types.Roster
	CatalogEntry = types.CatalogEntry
	Species      = types.Species
	Starter      = types.Starter
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Batch          = interfaces.Batch
	KeyValueStore  = interfaces.KeyValueStore
	CatalogClient  = interfaces.CatalogClient
	RosterService  = interfaces.RosterService
	StarterService = interfaces.StarterService
	PokedexService = interfaces.PokedexService
)

const (
	SlotStarter    = types.SlotStarter
	SlotAdditional = types.SlotAdditional
	MaxAdditional  = types.MaxAdditional
	MaxTeamSize    = types.MaxTeamSize
)

var (
	StarterSlot    = types.StarterSlot
	AdditionalSlot = types.AdditionalSlot
	ParseSlotRef   = types.ParseSlotRef
	NewSpecies     = types.NewSpecies
	Capitalize     = types.Capitalize
)
