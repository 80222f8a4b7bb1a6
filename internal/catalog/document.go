package catalog

import "pokeroster/internal/domain"

// Document is the subset of the PokeAPI pokemon resource the catalog reads.
type Document struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Height  int        `json:"height"`
	Weight  int        `json:"weight"`
	Types   []TypeSlot `json:"types"`
	Sprites Sprites    `json:"sprites"`
}

// TypeSlot is one entry of the document's types array.
type TypeSlot struct {
	Slot int            `json:"slot"`
	Type NamedReference `json:"type"`
}

// NamedReference is PokeAPI's {name, url} pointer to another resource.
type NamedReference struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Sprites holds the image URLs of a species.
type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// Entry converts the wire document into a domain.CatalogEntry.
func (d Document) Entry() domain.CatalogEntry {
	types := make([]string, 0, len(d.Types))
	for _, t := range d.Types {
		types = append(types, t.Type.Name)
	}
	return domain.CatalogEntry{
		ID:        domain.SpeciesID(d.ID),
		Name:      d.Name,
		Types:     types,
		Height:    d.Height,
		Weight:    d.Weight,
		SpriteURL: d.Sprites.FrontDefault,
	}
}

// DocumentFromEntry builds the wire document for e, as a catalog server would serve it.
func DocumentFromEntry(e domain.CatalogEntry) Document {
	d := Document{
		ID:      int(e.ID),
		Name:    e.Name,
		Height:  e.Height,
		Weight:  e.Weight,
		Types:   make([]TypeSlot, 0, len(e.Types)),
		Sprites: Sprites{FrontDefault: e.SpriteURL},
	}
	for i, t := range e.Types {
		d.Types = append(d.Types, TypeSlot{Slot: i + 1, Type: NamedReference{Name: t}})
	}
	return d
}
