// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (roster, catalog, starters), contracts (interfaces)
// and the errors every layer agrees on.
package domain
