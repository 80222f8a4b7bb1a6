package display

import (
	"pokeroster/internal/catalog"
	"pokeroster/internal/domain"
)

// Card is one slot of the team view.
type Card struct {
	Slot      string           `json:"slot,omitempty"` // "starter" or the additional index
	ID        domain.SpeciesID `json:"id,omitempty"`
	Title     string           `json:"title"`
	Species   string           `json:"species,omitempty"`
	SpriteURL string           `json:"sprite_url,omitempty"`
	Empty     bool             `json:"empty,omitempty"`
}

const emptySlotTitle = "Empty Slot"

// TeamCards lays the roster out as exactly domain.MaxTeamSize cards: the
// starter, then the additional entries in order, then empty placeholders.
// Entries past the last slot are not shown.
func TeamCards(r domain.Roster) []Card {
	cards := make([]Card, 0, domain.MaxTeamSize)
	if r.Starter != nil {
		cards = append(cards, entryCard(domain.StarterSlot(), *r.Starter))
	}
	for i, e := range r.Additional {
		if len(cards) == domain.MaxTeamSize {
			break
		}
		cards = append(cards, entryCard(domain.AdditionalSlot(i), e))
	}
	for len(cards) < domain.MaxTeamSize {
		cards = append(cards, Card{Title: emptySlotTitle, Empty: true})
	}
	return cards
}

func entryCard(slot domain.SlotRef, e domain.PokemonEntry) Card {
	return Card{
		Slot:      slot.String(),
		ID:        e.ID,
		Title:     e.DisplayName(),
		Species:   domain.Capitalize(e.SpeciesName),
		SpriteURL: catalog.SpriteURL(e.ID),
	}
}
