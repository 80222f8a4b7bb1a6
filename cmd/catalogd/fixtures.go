package main

import (
	"pokeroster/internal/catalog"
	"pokeroster/internal/domain"
)

func fixture(id domain.SpeciesID, name string, height, weight int, types ...string) domain.CatalogEntry {
	return domain.CatalogEntry{
		ID:        id,
		Name:      name,
		Types:     types,
		Height:    height,
		Weight:    weight,
		SpriteURL: catalog.SpriteURL(id),
	}
}

// fixtures holds PokeAPI's height (dm) and weight (hg) for each species.
var fixtures = []domain.CatalogEntry{
	fixture(4, "charmander", 6, 85, "fire"),
	fixture(155, "cyndaquil", 5, 79, "fire"),
	fixture(255, "torchic", 4, 25, "fire"),
	fixture(390, "chimchar", 5, 62, "fire"),
	fixture(498, "tepig", 5, 99, "fire"),
	fixture(653, "fennekin", 4, 94, "fire"),
	fixture(725, "litten", 4, 43, "fire"),
	fixture(813, "scorbunny", 3, 45, "fire"),
	fixture(909, "fuecoco", 4, 98, "fire"),

	fixture(1, "bulbasaur", 7, 69, "grass", "poison"),
	fixture(152, "chikorita", 9, 64, "grass"),
	fixture(252, "treecko", 5, 50, "grass"),
	fixture(387, "turtwig", 4, 102, "grass"),
	fixture(495, "snivy", 6, 81, "grass"),
	fixture(650, "chespin", 4, 90, "grass"),
	fixture(722, "rowlet", 3, 15, "grass", "flying"),
	fixture(810, "grookey", 3, 50, "grass"),
	fixture(906, "sprigatito", 4, 41, "grass"),

	fixture(7, "squirtle", 5, 90, "water"),
	fixture(158, "totodile", 6, 95, "water"),
	fixture(258, "mudkip", 4, 76, "water"),
	fixture(393, "piplup", 4, 52, "water"),
	fixture(501, "oshawott", 5, 59, "water"),
	fixture(656, "froakie", 3, 70, "water"),
	fixture(728, "popplio", 4, 75, "water"),
	fixture(816, "sobble", 3, 40, "water"),
	fixture(912, "quaxly", 5, 61, "water"),

	fixture(25, "pikachu", 4, 60, "electric"),
	fixture(133, "eevee", 3, 65, "normal"),
	fixture(143, "snorlax", 21, 4600, "normal"),
	fixture(94, "gengar", 15, 405, "ghost", "poison"),
}
