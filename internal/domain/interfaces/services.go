package interfaces

import (
	"context"

	domaintypes "pokeroster/internal/domain/types"
)

// RosterService owns the persisted team and every mutation of it.
type RosterService interface {
	Roster() (domaintypes.Roster, error)
	SetStarter(entry domaintypes.PokemonEntry) error
	Capture(id domaintypes.SpeciesID, speciesName string) (domaintypes.PokemonEntry, error)
	Rename(slot domaintypes.SlotRef, nickname string) error
	Release(slot domaintypes.SlotRef) error
}

// StarterService lists the starter species and hands the chosen one to the roster.
type StarterService interface {
	Starters() []domaintypes.Starter
	ByType() map[string][]domaintypes.Starter
	FindStarter(name string) (domaintypes.Starter, error)
	ChooseStarter(name, nickname string) (domaintypes.PokemonEntry, error)
}

// PokedexService looks species up in the catalog and captures them.
type PokedexService interface {
	FindSpecies(ctx context.Context, name string) (domaintypes.Species, error)
	CaptureSpecies(ctx context.Context, name string) (domaintypes.PokemonEntry, error)
}
