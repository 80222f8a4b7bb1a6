package types

// PokemonEntry is one Pokémon held in a roster slot.
type PokemonEntry struct {
	ID          SpeciesID `json:"id"`
	SpeciesName string    `json:"name"`
	Nickname    string    `json:"nickname"`
	Kind        SlotKind  `json:"-"`
	// Type is the primary type; only starters carry it.
	Type string `json:"type,omitempty"`
}

// DisplayName returns the nickname, falling back to the species name.
func (e PokemonEntry) DisplayName() string {
	if e.Nickname != "" {
		return e.Nickname
	}
	return e.SpeciesName
}

// Roster is the user's team: an optional starter plus up to five additional entries.
type Roster struct {
	Starter    *PokemonEntry  `json:"starter,omitempty"`
	Additional []PokemonEntry `json:"additional"`
}

const (
	// MaxAdditional is the number of slots next to the starter.
	MaxAdditional = 5
	// MaxTeamSize is the total number of slots including the starter.
	MaxTeamSize = MaxAdditional + 1
)

// Size returns the number of occupied slots.
func (r Roster) Size() int {
	n := len(r.Additional)
	if r.Starter != nil {
		n++
	}
	return n
}

// Full reports whether no more additional entries fit.
func (r Roster) Full() bool { return len(r.Additional) >= MaxAdditional }

// Clone returns a deep copy so callers can mutate without touching the original.
func (r Roster) Clone() Roster {
	out := Roster{Additional: make([]PokemonEntry, len(r.Additional))}
	copy(out.Additional, r.Additional)
	if r.Starter != nil {
		s := *r.Starter
		out.Starter = &s
	}
	return out
}
