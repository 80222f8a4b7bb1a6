// Package commands defines the pokeroster CLI and wires dependencies for subcommands.
//
// Commands
//
//   - starters   List the 27 starter Pokémon grouped by type
//   - choose     Pick your starter (optionally --nickname)
//   - find       Look a Pokémon up in the catalog
//   - capture    Look a Pokémon up and add it to your team
//   - team       Show the six team slots
//   - rename     Nickname the Pokémon in a slot
//   - release    Release the Pokémon in a slot
//
// Slots are addressed as "starter" or by the zero-based index `team` shows.
// Indexes shift down after a release.
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph (store,
// catalog client, services) before any subcommand runs, and closes it after.
package commands
