package roster

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"pokeroster/internal/domain"
)

// Persisted keys. These match the layout the browser version kept in localStorage.
const (
	starterKey    = "starterPokemon"
	additionalKey = "additionalPokemon"
)

type starterRecord struct {
	ID       domain.SpeciesID `json:"id"`
	Name     string           `json:"name"`
	Type     string           `json:"type"`
	Nickname string           `json:"nickname"`
}

// additionalRecord may lack a nickname when written by older versions.
type additionalRecord struct {
	ID       domain.SpeciesID `json:"id"`
	Name     string           `json:"name"`
	Nickname string           `json:"nickname,omitempty"`
}

// decodeRoster reads both keys from one snapshot of kv. An additional list
// longer than domain.MaxAdditional is cut to size; the dropped entries are
// logged and disappear with the next commit.
func decodeRoster(kv domain.KeyValueStore, log *zap.Logger) (domain.Roster, error) {
	r := domain.Roster{Additional: []domain.PokemonEntry{}}

	vals, err := kv.GetMany(starterKey, additionalKey)
	if err != nil {
		return domain.Roster{}, fmt.Errorf("read roster: %w", err)
	}

	if raw, ok := vals[starterKey]; ok && string(raw) != "null" {
		var rec starterRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return domain.Roster{}, fmt.Errorf("decode %s: %w", starterKey, err)
		}
		r.Starter = &domain.PokemonEntry{
			ID:          rec.ID,
			SpeciesName: rec.Name,
			Nickname:    defaultNickname(rec.Nickname, rec.Name),
			Kind:        domain.SlotStarter,
			Type:        rec.Type,
		}
	}

	if raw, ok := vals[additionalKey]; ok {
		var recs []additionalRecord
		if err := json.Unmarshal(raw, &recs); err != nil {
			return domain.Roster{}, fmt.Errorf("decode %s: %w", additionalKey, err)
		}
		if len(recs) > domain.MaxAdditional {
			for _, rec := range recs[domain.MaxAdditional:] {
				log.Warn("dropping entry beyond team capacity",
					zap.Int("id", int(rec.ID)),
					zap.String("species", rec.Name))
			}
			recs = recs[:domain.MaxAdditional]
		}
		for _, rec := range recs {
			r.Additional = append(r.Additional, domain.PokemonEntry{
				ID:          rec.ID,
				SpeciesName: rec.Name,
				Nickname:    defaultNickname(rec.Nickname, rec.Name),
				Kind:        domain.SlotAdditional,
			})
		}
	}
	return r, nil
}

// encodeRoster renders both keys into one batch; an absent starter deletes its key.
func encodeRoster(r domain.Roster) (domain.Batch, error) {
	b := domain.Batch{starterKey: nil}
	if s := r.Starter; s != nil {
		raw, err := json.Marshal(starterRecord{ID: s.ID, Name: s.SpeciesName, Type: s.Type, Nickname: s.Nickname})
		if err != nil {
			return nil, err
		}
		b[starterKey] = raw
	}

	recs := make([]additionalRecord, 0, len(r.Additional))
	for _, e := range r.Additional {
		recs = append(recs, additionalRecord{ID: e.ID, Name: e.SpeciesName, Nickname: e.Nickname})
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return nil, err
	}
	b[additionalKey] = raw
	return b, nil
}

func defaultNickname(nickname, name string) string {
	if nickname == "" {
		return name
	}
	return nickname
}
