package catalog

import (
	"fmt"

	"pokeroster/internal/domain"
)

const (
	spriteBase = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
	cryBase    = "https://raw.githubusercontent.com/PokeAPI/cries/main/cries/pokemon/latest"
)

// SpriteURL returns the front sprite image for a species.
func SpriteURL(id domain.SpeciesID) string { return fmt.Sprintf("%s/%d.png", spriteBase, id) }

// CryURL returns the latest cry recording for a species.
func CryURL(id domain.SpeciesID) string { return fmt.Sprintf("%s/%d.ogg", cryBase, id) }
