package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokeroster/internal/catalog"
	"pokeroster/internal/display"
	"pokeroster/internal/domain"
)

type cli struct {
	t       *testing.T
	home    string
	catalog string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	docs := map[string]domain.CatalogEntry{
		"pikachu": {ID: 25, Name: "pikachu", Types: []string{"electric"}, Height: 4, Weight: 60},
		"eevee":   {ID: 133, Name: "eevee", Types: []string{"normal"}, Height: 3, Weight: 65},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/api/v2/pokemon/")
		if name == "porygon" {
			http.Error(w, "upstream down", http.StatusBadGateway)
			return
		}
		e, ok := docs[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(catalog.DocumentFromEntry(e))
	}))
	t.Cleanup(srv.Close)
	return &cli{t: t, home: t.TempDir(), catalog: srv.URL}
}

// exec runs one CLI invocation against the shared home directory.
func (c *cli) exec(stdin string, args ...string) (string, string, error) {
	c.t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--home", c.home, "--catalog-url", c.catalog, "--no-color"}, args...)
	err := run(context.Background(), full, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

func (c *cli) team() []display.Card {
	c.t.Helper()
	out, _, err := c.exec("", "team", "--json")
	require.NoError(c.t, err)
	var cards []display.Card
	require.NoError(c.t, json.Unmarshal([]byte(out), &cards))
	return cards
}

func TestStarters_ListsEveryType(t *testing.T) {
	c := newCLI(t)
	out, _, err := c.exec("", "starters")
	require.NoError(t, err)
	for _, want := range []string{"Fire", "Grass", "Water", "Charmander (#4)", "Sprigatito (#906)", "Quaxly (#912)"} {
		assert.Contains(t, out, want)
	}
}

func TestChoose_ThenTeam(t *testing.T) {
	c := newCLI(t)

	out, _, err := c.exec("", "choose", "charmander", "--nickname", "Blaze")
	require.NoError(t, err)
	assert.Contains(t, out, `You selected Charmander with the nickname "Blaze".`)

	cards := c.team()
	require.Len(t, cards, domain.MaxTeamSize)
	assert.Equal(t, "starter", cards[0].Slot)
	assert.Equal(t, "Blaze", cards[0].Title)
	for _, card := range cards[1:] {
		assert.True(t, card.Empty)
	}

	_, errOut, err := c.exec("", "choose", "squirtle")
	require.ErrorIs(t, err, domain.ErrAlreadySet)
	assert.Contains(t, errOut, "Error:")
}

func TestChoose_UnknownStarter(t *testing.T) {
	c := newCLI(t)
	_, _, err := c.exec("", "choose", "pikachu")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindAndCapture(t *testing.T) {
	c := newCLI(t)

	out, _, err := c.exec("", "find", "Pikachu")
	require.NoError(t, err)
	assert.Contains(t, out, "Pikachu")
	assert.Contains(t, out, "Electric")
	assert.Contains(t, out, `Height: 1'4"`)
	assert.Contains(t, out, "Weight: 13.2 lbs")

	out, _, err = c.exec("", "capture", "pikachu")
	require.NoError(t, err)
	assert.Contains(t, out, "Pikachu has been added to your team!")

	_, _, err = c.exec("", "capture", "missingno")
	require.ErrorIs(t, err, domain.ErrSpeciesNotFound)

	cards := c.team()
	assert.Equal(t, "0", cards[0].Slot)
	assert.Equal(t, domain.SpeciesID(25), cards[0].ID)
	assert.Equal(t, "pikachu", cards[0].Title)
	assert.True(t, cards[1].Empty)
}

func TestCatalogErrorsAreReadable(t *testing.T) {
	c := newCLI(t)

	_, errOut, err := c.exec("", "find", "MissingNo")
	require.ErrorIs(t, err, domain.ErrSpeciesNotFound)
	assert.Contains(t, errOut, `no Pokémon named "missingno" was found`)
	assert.NotContains(t, errOut, "/api/v2/pokemon")

	_, errOut, err = c.exec("", "capture", "porygon")
	require.ErrorIs(t, err, domain.ErrDataSource)
	assert.Contains(t, errOut, "the Pokémon catalog is unavailable (HTTP 502)")

	c.catalog = "http://127.0.0.1:1"
	_, errOut, err = c.exec("", "find", "pikachu")
	require.ErrorIs(t, err, domain.ErrDataSource)
	assert.Contains(t, errOut, "could not reach the Pokémon catalog")
}

func TestCapture_FullTeam(t *testing.T) {
	c := newCLI(t)
	for i := 0; i < domain.MaxAdditional; i++ {
		_, _, err := c.exec("", "capture", "eevee")
		require.NoError(t, err)
	}
	_, errOut, err := c.exec("", "capture", "pikachu")
	require.ErrorIs(t, err, domain.ErrRosterFull)
	assert.Contains(t, errOut, "your team is full")
}

func TestRename(t *testing.T) {
	c := newCLI(t)
	_, _, err := c.exec("", "capture", "eevee")
	require.NoError(t, err)

	_, _, err = c.exec("", "rename", "0", "  Sparky  ")
	require.NoError(t, err)
	assert.Equal(t, "Sparky", c.team()[0].Title)

	_, _, err = c.exec("", "rename", "3", "Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = c.exec("", "rename", "first", "Ghost")
	assert.Error(t, err)
}

func TestRelease_Confirmation(t *testing.T) {
	c := newCLI(t)
	for _, name := range []string{"pikachu", "eevee"} {
		_, _, err := c.exec("", "capture", name)
		require.NoError(t, err)
	}

	out, _, err := c.exec("n\n", "release", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Are you sure you want to release pikachu?")
	assert.Contains(t, out, "Cancelled.")
	assert.Equal(t, "pikachu", c.team()[0].Title)

	out, _, err = c.exec("y\n", "release", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "pikachu was released.")

	cards := c.team()
	assert.Equal(t, "0", cards[0].Slot)
	assert.Equal(t, "eevee", cards[0].Title)
	assert.True(t, cards[1].Empty)

	_, _, err = c.exec("", "release", "starter", "--yes")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBadBackendFailsBeforeRunning(t *testing.T) {
	c := newCLI(t)
	_, errOut, err := c.exec("", "--backend", "redis", "team")
	require.Error(t, err)
	assert.Contains(t, errOut, "Error:")
}
