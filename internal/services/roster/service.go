package roster

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"pokeroster/internal/domain"
)

// Service is the sole owner of the persisted team.
//
// Every mutation loads the roster, changes a private copy and commits both
// persisted keys in one batch. A failed commit leaves the last persisted roster
// in place, so callers can report the error and carry on.
type Service struct {
	kv  domain.KeyValueStore
	log *zap.Logger
	mu  sync.Mutex
}

// New returns a roster service persisting to kv.
func New(kv domain.KeyValueStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{kv: kv, log: log.Named("roster")}
}

// Roster returns the current team, or the empty team if nothing is stored yet.
func (s *Service) Roster() (domain.Roster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decodeRoster(s.kv, s.log)
}

// SetStarter stores entry as the starter. It fails with domain.ErrAlreadySet if
// a starter is already held; release it first to pick another.
func (s *Service) SetStarter(entry domain.PokemonEntry) error {
	if err := validate(entry.ID, entry.SpeciesName); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := decodeRoster(s.kv, s.log)
	if err != nil {
		return err
	}
	if r.Starter != nil {
		return fmt.Errorf("%w (current: %s)", domain.ErrAlreadySet, r.Starter.DisplayName())
	}

	entry.SpeciesName = strings.TrimSpace(entry.SpeciesName)
	entry.Nickname = defaultNickname(strings.TrimSpace(entry.Nickname), entry.SpeciesName)
	entry.Kind = domain.SlotStarter
	r.Starter = &entry
	if err := s.commit(r); err != nil {
		return err
	}

	s.log.Info("starter set",
		zap.Int("id", int(entry.ID)),
		zap.String("species", entry.SpeciesName),
		zap.String("nickname", entry.Nickname))
	return nil
}

// Capture appends a new additional entry nicknamed after its species.
func (s *Service) Capture(id domain.SpeciesID, speciesName string) (domain.PokemonEntry, error) {
	if err := validate(id, speciesName); err != nil {
		return domain.PokemonEntry{}, err
	}
	speciesName = strings.TrimSpace(speciesName)

	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := decodeRoster(s.kv, s.log)
	if err != nil {
		return domain.PokemonEntry{}, err
	}
	if r.Full() {
		s.log.Debug("capture rejected", zap.String("species", speciesName), zap.Int("additional", len(r.Additional)))
		return domain.PokemonEntry{}, domain.ErrRosterFull
	}

	entry := domain.PokemonEntry{
		ID:          id,
		SpeciesName: speciesName,
		Nickname:    speciesName,
		Kind:        domain.SlotAdditional,
	}
	r.Additional = append(r.Additional, entry)
	if err := s.commit(r); err != nil {
		return domain.PokemonEntry{}, err
	}

	s.log.Info("captured",
		zap.Int("id", int(id)),
		zap.String("species", speciesName),
		zap.Int("slot", len(r.Additional)-1))
	return entry, nil
}

// Rename sets the nickname in slot. Blank input keeps the current nickname.
func (s *Service) Rename(slot domain.SlotRef, nickname string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := decodeRoster(s.kv, s.log)
	if err != nil {
		return err
	}
	entry, err := resolve(&r, slot)
	if err != nil {
		return err
	}

	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil
	}
	old := entry.Nickname
	entry.Nickname = nickname
	if err := s.commit(r); err != nil {
		return err
	}

	s.log.Info("renamed", zap.Stringer("slot", slot), zap.String("from", old), zap.String("to", nickname))
	return nil
}

// Release empties slot. Releasing an additional entry shifts the ones after it
// down by one position.
func (s *Service) Release(slot domain.SlotRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := decodeRoster(s.kv, s.log)
	if err != nil {
		return err
	}
	entry, err := resolve(&r, slot)
	if err != nil {
		return err
	}
	released := *entry

	if slot.IsStarter() {
		r.Starter = nil
	} else {
		r.Additional = slices.Delete(r.Additional, slot.Index(), slot.Index()+1)
	}
	if err := s.commit(r); err != nil {
		return err
	}

	s.log.Info("released", zap.Stringer("slot", slot), zap.String("species", released.SpeciesName))
	return nil
}

func (s *Service) commit(r domain.Roster) error {
	b, err := encodeRoster(r)
	if err != nil {
		return err
	}
	if err := s.kv.Commit(b); err != nil {
		s.log.Error("persist roster", zap.Error(err))
		return fmt.Errorf("persist roster: %w", err)
	}
	return nil
}

// resolve returns a pointer into r for slot, or domain.ErrNotFound.
func resolve(r *domain.Roster, slot domain.SlotRef) (*domain.PokemonEntry, error) {
	if slot.IsStarter() {
		if r.Starter == nil {
			return nil, fmt.Errorf("slot %s: %w", slot, domain.ErrNotFound)
		}
		return r.Starter, nil
	}
	if slot.Kind() != domain.SlotAdditional || slot.Index() < 0 || slot.Index() >= len(r.Additional) {
		return nil, fmt.Errorf("slot %s: %w", slot, domain.ErrNotFound)
	}
	return &r.Additional[slot.Index()], nil
}

func validate(id domain.SpeciesID, name string) error {
	if !id.Valid() {
		return fmt.Errorf("%w: id %d is not positive", domain.ErrInvalidEntry, id)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: species name is blank", domain.ErrInvalidEntry)
	}
	return nil
}

// Compile-time assertion that Service implements domain.RosterService.
var _ domain.RosterService = (*Service)(nil)
