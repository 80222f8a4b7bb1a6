// Package app wires application dependencies for the CLI.
//
// Config is read with viper from defaults, <home>/config.yaml, POKEROSTER_*
// environment variables and command-line flags (later sources win). NewWire
// builds the chosen key-value store, the catalog client and the roster,
// starter and pokedex services from it.
package app
