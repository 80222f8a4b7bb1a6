// Package catalog provides an HTTP implementation of the domain.CatalogClient
// interface backed by PokeAPI (https://pokeapi.co).
//
// The catalog is a read-only data source: given a species name it returns the
// species id, types, height, weight and sprite URL. Names are trimmed and
// lower-cased before the request is built.
//
// All requests accept a context for cancellation and deadlines. Failures are
// returned as *domain.DataSourceError carrying the HTTP method, full URL and
// status; a 404 also matches domain.ErrSpeciesNotFound. Nothing is retried.
package catalog
