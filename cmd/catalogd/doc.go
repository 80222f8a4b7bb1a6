// Package main runs an in-memory, PokeAPI-compatible catalog for offline
// development and tests. It serves the pokemon documents pokeroster reads and
// accepts new ones at runtime.
//
// HTTP API
//
//	GET /api/v2/pokemon/{name}
//	    Return the pokemon document for {name} (case-insensitive) or numeric id.
//
//	POST /api/v2/pokemon
//	    Store a pokemon document, replacing any with the same name.
//
// Behaviour
//
//   - State starts from a built-in fixture set (the starters plus a few
//     others) and is lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - An access log records method, path, remote, status, bytes and duration
//     for each request.
//   - The default listen address is :8080. Point pokeroster at it with
//     --catalog-url http://localhost:8080.
package main
