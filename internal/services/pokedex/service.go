package pokedex

import (
	"context"

	"go.uber.org/zap"

	"pokeroster/internal/domain"
)

// Service is the "find Pokémon" flow: catalog lookups, and capturing what was found.
type Service struct {
	catalog domain.CatalogClient
	roster  domain.RosterService
	log     *zap.Logger
}

// New returns a pokedex service over catalog and roster.
func New(catalog domain.CatalogClient, roster domain.RosterService, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{catalog: catalog, roster: roster, log: log.Named("pokedex")}
}

// FindSpecies looks name up and converts its measurements for display.
func (s *Service) FindSpecies(ctx context.Context, name string) (domain.Species, error) {
	entry, err := s.catalog.Lookup(ctx, name)
	if err != nil {
		return domain.Species{}, err
	}
	return domain.NewSpecies(entry), nil
}

// CaptureSpecies looks name up and adds it to the team. A failed lookup leaves
// the roster untouched.
func (s *Service) CaptureSpecies(ctx context.Context, name string) (domain.PokemonEntry, error) {
	entry, err := s.catalog.Lookup(ctx, name)
	if err != nil {
		s.log.Debug("lookup before capture failed", zap.String("name", name), zap.Error(err))
		return domain.PokemonEntry{}, err
	}
	return s.roster.Capture(entry.ID, entry.Name)
}

// Compile-time assertion that Service implements domain.PokedexService.
var _ domain.PokedexService = (*Service)(nil)
