// Package pokedex resolves species through the catalog and captures them into
// the roster.
//
// Heights arrive in decimetres and weights in hectograms; FindSpecies converts
// them to feet/inches and pounds.
package pokedex
