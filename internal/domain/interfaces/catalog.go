package interfaces

import (
	"context"

	domaintypes "pokeroster/internal/domain/types"
)

// CatalogClient resolves species names against the external Pokémon catalog.
type CatalogClient interface {
	Lookup(ctx context.Context, name string) (domaintypes.CatalogEntry, error)
}
