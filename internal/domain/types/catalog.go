package types

import "math"

// CatalogEntry is what the catalog knows about a species.
type CatalogEntry struct {
	ID        SpeciesID `json:"id"`
	Name      string    `json:"name"`
	Types     []string  `json:"types"`
	Height    int       `json:"height"` // decimetres
	Weight    int       `json:"weight"` // hectograms
	SpriteURL string    `json:"sprite_url"`
}

// Species is a catalog entry with its measurements converted for display.
type Species struct {
	CatalogEntry
	Feet   int
	Inches int
	Pounds float64
}

// NewSpecies converts decimetres to feet/inches and hectograms to pounds.
func NewSpecies(e CatalogEntry) Species {
	totalInches := int(math.Round(float64(e.Height) * 3.937))
	return Species{
		CatalogEntry: e,
		Feet:         totalInches / 12,
		Inches:       totalInches % 12,
		Pounds:       float64(e.Weight) * 0.220462,
	}
}

// Starter is one of the species offered when a team is started.
type Starter struct {
	Name string    `json:"name"`
	ID   SpeciesID `json:"id"`
	Type string    `json:"type"`
}

// Entry converts the starter into a roster entry with the given nickname.
func (s Starter) Entry(nickname string) PokemonEntry {
	return PokemonEntry{
		ID:          s.ID,
		SpeciesName: s.Name,
		Nickname:    nickname,
		Kind:        SlotStarter,
		Type:        s.Type,
	}
}
