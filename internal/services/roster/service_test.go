package roster_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokeroster/internal/domain"
	"pokeroster/internal/services/roster"
	"pokeroster/internal/store"
)

func newService(t *testing.T) (*roster.Service, *store.MemoryStore) {
	t.Helper()
	kv := store.NewMemoryStore()
	return roster.New(kv, nil), kv
}

func mustRoster(t *testing.T, svc *roster.Service) domain.Roster {
	t.Helper()
	r, err := svc.Roster()
	require.NoError(t, err)
	return r
}

func speciesNames(r domain.Roster) []string {
	out := make([]string, 0, len(r.Additional))
	for _, e := range r.Additional {
		out = append(out, e.SpeciesName)
	}
	return out
}

func TestRoster_EmptyOnFirstUse(t *testing.T) {
	svc, _ := newService(t)

	r := mustRoster(t, svc)
	assert.Nil(t, r.Starter)
	assert.Empty(t, r.Additional)
	assert.Equal(t, 0, r.Size())
}

func TestSetStarter_DefaultsNickname(t *testing.T) {
	svc, _ := newService(t)

	require.NoError(t, svc.SetStarter(domain.PokemonEntry{ID: 4, SpeciesName: "Charmander"}))

	r := mustRoster(t, svc)
	require.NotNil(t, r.Starter)
	assert.Equal(t, "Charmander", r.Starter.Nickname)
	assert.Equal(t, domain.SlotStarter, r.Starter.Kind)
}

func TestSetStarter_AlreadySet(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.SetStarter(domain.PokemonEntry{ID: 4, SpeciesName: "Charmander", Nickname: "Char"}))

	err := svc.SetStarter(domain.PokemonEntry{ID: 7, SpeciesName: "Squirtle"})
	assert.ErrorIs(t, err, domain.ErrAlreadySet)

	r := mustRoster(t, svc)
	assert.Equal(t, domain.SpeciesID(4), r.Starter.ID)
	assert.Equal(t, "Char", r.Starter.Nickname)
}

func TestSetStarter_AfterReleaseIsAllowed(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.SetStarter(domain.PokemonEntry{ID: 4, SpeciesName: "Charmander"}))
	require.NoError(t, svc.Release(domain.StarterSlot()))

	require.NoError(t, svc.SetStarter(domain.PokemonEntry{ID: 7, SpeciesName: "Squirtle"}))
	assert.Equal(t, "Squirtle", mustRoster(t, svc).Starter.SpeciesName)
}

func TestInvalidEntries(t *testing.T) {
	svc, _ := newService(t)

	assert.ErrorIs(t, svc.SetStarter(domain.PokemonEntry{ID: 0, SpeciesName: "x"}), domain.ErrInvalidEntry)
	assert.ErrorIs(t, svc.SetStarter(domain.PokemonEntry{ID: 1, SpeciesName: "  "}), domain.ErrInvalidEntry)
	_, err := svc.Capture(-3, "Test")
	assert.ErrorIs(t, err, domain.ErrInvalidEntry)
	_, err = svc.Capture(3, "")
	assert.ErrorIs(t, err, domain.ErrInvalidEntry)

	assert.Equal(t, 0, mustRoster(t, svc).Size())
}

func TestCapture_NeverExceedsFive(t *testing.T) {
	svc, _ := newService(t)

	for i := 1; i <= 8; i++ {
		_, err := svc.Capture(domain.SpeciesID(i), "Mon")
		if i <= domain.MaxAdditional {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, domain.ErrRosterFull)
		}
		assert.LessOrEqual(t, len(mustRoster(t, svc).Additional), domain.MaxAdditional)
	}
}

func TestCapture_FullTeamLeavesRosterUnchanged(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.SetStarter(domain.PokemonEntry{ID: 4, SpeciesName: "Charmander"}))
	for i := 1; i <= 5; i++ {
		_, err := svc.Capture(domain.SpeciesID(10+i), "Mon")
		require.NoError(t, err)
	}
	before := mustRoster(t, svc)
	require.Equal(t, domain.MaxTeamSize, before.Size())

	_, err := svc.Capture(99, "Test")
	require.ErrorIs(t, err, domain.ErrRosterFull)

	after := mustRoster(t, svc)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("roster changed after rejected capture (-before +after):\n%s", diff)
	}
	assert.Len(t, after.Additional, 5)
}

func TestCapture_RenameRoundTrip(t *testing.T) {
	svc, _ := newService(t)

	entry, err := svc.Capture(1, "Bulbasaur")
	require.NoError(t, err)
	assert.Equal(t, "Bulbasaur", entry.Nickname)
	assert.Equal(t, domain.SlotAdditional, entry.Kind)
	assert.Equal(t, "Bulbasaur", mustRoster(t, svc).Additional[0].Nickname)

	require.NoError(t, svc.Rename(domain.AdditionalSlot(0), "Buddy"))
	assert.Equal(t, "Buddy", mustRoster(t, svc).Additional[0].Nickname)
}

func TestRename_BlankIsNoOp(t *testing.T) {
	svc, kv := newService(t)
	_, err := svc.Capture(1, "Bulbasaur")
	require.NoError(t, err)
	require.NoError(t, svc.Rename(domain.AdditionalSlot(0), "Buddy"))
	before, _, err := kv.Get("additionalPokemon")
	require.NoError(t, err)

	for _, blank := range []string{"", "   ", "\t\n"} {
		require.NoError(t, svc.Rename(domain.AdditionalSlot(0), blank))
	}

	after, _, err := kv.Get("additionalPokemon")
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Equal(t, "Buddy", mustRoster(t, svc).Additional[0].Nickname)
}

func TestRename_Starter(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.SetStarter(domain.PokemonEntry{ID: 7, SpeciesName: "Squirtle"}))

	require.NoError(t, svc.Rename(domain.StarterSlot(), "  Shelly  "))
	assert.Equal(t, "Shelly", mustRoster(t, svc).Starter.Nickname)
}

func TestRenameAndRelease_NotFound(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Capture(1, "Bulbasaur")
	require.NoError(t, err)

	cases := []domain.SlotRef{
		domain.StarterSlot(),
		domain.AdditionalSlot(1),
		domain.AdditionalSlot(-1),
		{},
	}
	for _, slot := range cases {
		assert.ErrorIs(t, svc.Rename(slot, "x"), domain.ErrNotFound, "rename %v", slot)
		assert.ErrorIs(t, svc.Release(slot), domain.ErrNotFound, "release %v", slot)
	}
	assert.Len(t, mustRoster(t, svc).Additional, 1)
}

func TestRelease_CompactsInOrder(t *testing.T) {
	svc, _ := newService(t)
	for i, name := range []string{"Pidgey", "Rattata", "Zubat"} {
		_, err := svc.Capture(domain.SpeciesID(i+16), name)
		require.NoError(t, err)
	}

	require.NoError(t, svc.Release(domain.AdditionalSlot(1)))

	r := mustRoster(t, svc)
	assert.Equal(t, []string{"Pidgey", "Zubat"}, speciesNames(r))

	// The old index 2 no longer resolves; callers must re-resolve.
	assert.ErrorIs(t, svc.Release(domain.AdditionalSlot(2)), domain.ErrNotFound)
}

func TestRelease_Starter(t *testing.T) {
	svc, kv := newService(t)
	require.NoError(t, svc.SetStarter(domain.PokemonEntry{ID: 1, SpeciesName: "Bulbasaur"}))
	_, err := svc.Capture(25, "Pikachu")
	require.NoError(t, err)

	require.NoError(t, svc.Release(domain.StarterSlot()))

	r := mustRoster(t, svc)
	assert.Nil(t, r.Starter)
	assert.Equal(t, []string{"Pikachu"}, speciesNames(r))
	_, ok, err := kv.Get("starterPokemon")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRelease_NoGapsAfterMixedOperations(t *testing.T) {
	svc, _ := newService(t)
	for i := 1; i <= 5; i++ {
		_, err := svc.Capture(domain.SpeciesID(i), "Mon")
		require.NoError(t, err)
	}
	for _, idx := range []int{4, 0, 1} {
		require.NoError(t, svc.Release(domain.AdditionalSlot(idx)))
	}
	_, err := svc.Capture(42, "Late")
	require.NoError(t, err)

	r := mustRoster(t, svc)
	require.Len(t, r.Additional, 3)
	for i, e := range r.Additional {
		assert.NotZero(t, e.ID, "position %d", i)
	}
	assert.Equal(t, domain.SpeciesID(42), r.Additional[2].ID)
}

func TestRoster_ReadsLegacyLayout(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Commit(domain.Batch{
		"starterPokemon":    []byte(`{"id":4,"name":"Charmander","type":"fire","nickname":"Blaze"}`),
		"additionalPokemon": []byte(`[{"id":25,"name":"pikachu"}]`),
	}))
	svc := roster.New(kv, nil)

	r := mustRoster(t, svc)
	want := domain.Roster{
		Starter: &domain.PokemonEntry{ID: 4, SpeciesName: "Charmander", Nickname: "Blaze", Kind: domain.SlotStarter, Type: "fire"},
		Additional: []domain.PokemonEntry{
			{ID: 25, SpeciesName: "pikachu", Nickname: "pikachu", Kind: domain.SlotAdditional},
		},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("legacy roster mismatch (-want +got):\n%s", diff)
	}
}

func TestRoster_CorruptValue(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Commit(domain.Batch{"additionalPokemon": []byte(`{not json`)}))

	_, err := roster.New(kv, nil).Roster()
	assert.Error(t, err)
}

// failingStore rejects every commit after the first n.
type failingStore struct {
	*store.MemoryStore
	remaining int
}

var errDiskFull = errors.New("disk full")

func (f *failingStore) Commit(b domain.Batch) error {
	if f.remaining == 0 {
		return errDiskFull
	}
	f.remaining--
	return f.MemoryStore.Commit(b)
}

func TestFailedCommit_KeepsLastPersistedRoster(t *testing.T) {
	kv := &failingStore{MemoryStore: store.NewMemoryStore(), remaining: 2}
	svc := roster.New(kv, nil)
	require.NoError(t, svc.SetStarter(domain.PokemonEntry{ID: 4, SpeciesName: "Charmander"}))
	_, err := svc.Capture(1, "Bulbasaur")
	require.NoError(t, err)
	before := mustRoster(t, svc)

	_, err = svc.Capture(7, "Squirtle")
	assert.ErrorIs(t, err, errDiskFull)
	assert.ErrorIs(t, svc.Rename(domain.AdditionalSlot(0), "Bulby"), errDiskFull)
	assert.ErrorIs(t, svc.Release(domain.StarterSlot()), errDiskFull)

	if diff := cmp.Diff(before, mustRoster(t, svc)); diff != "" {
		t.Fatalf("roster changed after failed commits (-before +after):\n%s", diff)
	}
}

func TestRoster_PersistsAcrossServices(t *testing.T) {
	kv := store.NewFileStore(t.TempDir())
	first := roster.New(kv, nil)
	require.NoError(t, first.SetStarter(domain.PokemonEntry{ID: 155, SpeciesName: "Cyndaquil", Type: "fire"}))
	_, err := first.Capture(25, "pikachu")
	require.NoError(t, err)

	r := mustRoster(t, roster.New(kv, nil))
	require.NotNil(t, r.Starter)
	assert.Equal(t, "fire", r.Starter.Type)
	assert.Equal(t, []string{"pikachu"}, speciesNames(r))
}
