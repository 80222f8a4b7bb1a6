package starter

import (
	"fmt"
	"strings"

	"pokeroster/internal/domain"
)

// Service offers the fixed starter list and records the user's pick.
type Service struct {
	roster domain.RosterService
}

// New returns a starter service that writes picks to roster.
func New(roster domain.RosterService) *Service { return &Service{roster: roster} }

// Starters returns every starter in presentation order.
func (s *Service) Starters() []domain.Starter {
	return append([]domain.Starter(nil), starters...)
}

// ByType groups the starters by type, keeping presentation order within each group.
func (s *Service) ByType() map[string][]domain.Starter {
	out := make(map[string][]domain.Starter, len(Types))
	for _, st := range starters {
		out[st.Type] = append(out[st.Type], st)
	}
	return out
}

// FindStarter looks a starter up by name, ignoring case.
func (s *Service) FindStarter(name string) (domain.Starter, error) {
	name = strings.TrimSpace(name)
	for _, st := range starters {
		if strings.EqualFold(st.Name, name) {
			return st, nil
		}
	}
	return domain.Starter{}, fmt.Errorf("starter %q: %w", name, domain.ErrNotFound)
}

// ChooseStarter stores the named starter with nickname, or with its species
// name when nickname is blank.
func (s *Service) ChooseStarter(name, nickname string) (domain.PokemonEntry, error) {
	st, err := s.FindStarter(name)
	if err != nil {
		return domain.PokemonEntry{}, err
	}
	entry := st.Entry(strings.TrimSpace(nickname))
	if entry.Nickname == "" {
		entry.Nickname = st.Name
	}
	if err := s.roster.SetStarter(entry); err != nil {
		return domain.PokemonEntry{}, err
	}
	return entry, nil
}

// Compile-time assertion that Service implements domain.StarterService.
var _ domain.StarterService = (*Service)(nil)
