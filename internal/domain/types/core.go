package types

import "strings"

// SpeciesID is the catalog's stable identifier for a species (national dex number).
type SpeciesID int

// Valid reports whether the id can identify a species.
func (id SpeciesID) Valid() bool { return id > 0 }

// SlotKind tags which part of the roster an entry occupies.
type SlotKind string

const (
	SlotStarter    SlotKind = "starter"
	SlotAdditional SlotKind = "additional"
)

// String returns the string form of the slot kind.
func (k SlotKind) String() string { return string(k) }

// Capitalize upper-cases the first letter of a species or type name.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
