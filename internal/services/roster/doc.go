// Package roster owns the user's team: one optional starter plus up to five
// additional Pokémon, persisted through a domain.KeyValueStore.
//
// Slots are addressed with domain.SlotRef. Additional-slot references are
// positional and go stale after any release, which compacts the list.
package roster
