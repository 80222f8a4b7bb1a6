// Package display renders the team, catalog lookups and starter lists for the
// terminal using lipgloss.
//
// The team view always shows six cards, padding unused slots with an
// "Empty Slot" placeholder. Display never owns state: it receives a
// domain.Roster and returns strings.
package display
