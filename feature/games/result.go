package games

import (
	"encoding/json"
	"errors"

	"game-catalog/feature/games/models"
)

// ErrorKind classifies a failed catalog read.
type ErrorKind string

const (
	// KindStorageUnavailable means the store could not be opened at all.
	KindStorageUnavailable ErrorKind = "storage_unavailable"
	// KindQueryFailed means the store was reached but the listing query failed.
	KindQueryFailed ErrorKind = "query_failed"
)

// Result is the outcome of a catalog read: either the full list of games or
// an error, never both.
type Result struct {
	Games []models.DisplayRecord
	Error string
	Kind  ErrorKind
}

// Failure builds an error result.
func Failure(kind ErrorKind, message string) Result {
	return Result{Error: message, Kind: kind}
}

// Failed reports whether the result carries an error.
func (r Result) Failed() bool {
	return r.Kind != "" || r.Error != ""
}

// Err returns the result's error, or nil for a successful read.
func (r Result) Err() error {
	if !r.Failed() {
		return nil
	}
	return errors.New(string(r.Kind) + ": " + r.Error)
}

// MarshalJSON renders {"games": [...]} or {"error": "...", "kind": "..."}.
// An empty catalog is an empty array, not null.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(struct {
			Error string    `json:"error"`
			Kind  ErrorKind `json:"kind"`
		}{r.Error, r.Kind})
	}

	games := r.Games
	if games == nil {
		games = []models.DisplayRecord{}
	}
	return json.Marshal(struct {
		Games []models.DisplayRecord `json:"games"`
	}{games})
}
