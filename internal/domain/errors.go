package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRosterFull is returned when a capture is attempted with every additional slot taken.
	ErrRosterFull = fmt.Errorf(
		"your team is full: you can only have %d Pokémon including your starter",
		MaxTeamSize,
	)
	// ErrNotFound is returned when a slot reference or starter name does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrAlreadySet is returned when a starter is chosen while one is already held.
	ErrAlreadySet = errors.New("starter already chosen; release it first")
	// ErrInvalidEntry is returned for a non-positive species id or a blank name.
	ErrInvalidEntry = errors.New("invalid pokemon entry")
	// ErrSpeciesNotFound is returned when the catalog has no species by that name.
	ErrSpeciesNotFound = errors.New("species not found")
	// ErrDataSource matches every *DataSourceError via errors.Is.
	ErrDataSource = errors.New("catalog unavailable")
)

// DataSourceError reports a failed catalog request. Status is zero when the
// request never produced a response.
type DataSourceError struct {
	Method string
	URL    string
	Status int
	Err    error
}

func (e *DataSourceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("catalog %s %s: HTTP error! status: %d", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("catalog %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDataSource) match any DataSourceError.
func (e *DataSourceError) Is(target error) bool { return target == ErrDataSource }
