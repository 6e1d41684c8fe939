package reconcile

import "game-catalog/core/digest"

// Entry is the stored state of one record, as seen by the reconciler.
type Entry struct {
	// ID is the record identity. Updates are keyed by it, never by filename.
	ID uint

	// Digest is the stored content digest; nil when none has been computed yet.
	Digest *string
}

// FileInfo describes one hashed file from the archive directory.
type FileInfo struct {
	// Name is the file's base name; it is the key records are matched on.
	Name string

	// Path is the full path the file was read from.
	Path string

	// Size is the number of bytes hashed.
	Size int64

	// Digest is the lower-case hex content digest.
	Digest string
}

// DigestFunc hashes the file at path.
type DigestFunc func(path string, chunkSize int) (digest.Sum, error)

// Spec defines the configuration for a reconciliation run.
type Spec struct {
	// Adapter provides model-specific store access.
	Adapter Adapter

	// Dir is the archive directory to scan (non-recursive).
	Dir string

	// Accept filters candidate filenames. Nil accepts every regular file.
	Accept func(name string) bool

	// ChunkSize is the read size used while hashing.
	ChunkSize int

	// Digest overrides the hash function. Nil uses digest.File.
	Digest DigestFunc
}

func (s *Spec) digestFunc() DigestFunc {
	if s.Digest != nil {
		return s.Digest
	}
	return digest.File
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionInsert registers a file that has no record yet.
	ActionInsert ActionType = "insert"
	// ActionUpdate rewrites the digest and size of an existing record.
	ActionUpdate ActionType = "update"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the filename the action concerns.
	Key string `json:"key"`

	// ID is the record identity for updates; zero for inserts.
	ID uint `json:"id,omitempty"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// File carries the hashed file state to persist.
	File FileInfo `json:"-"`
}

// SkippedFile is a file that could not be hashed during the scan.
type SkippedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ReconcilePlan contains the planned actions of one scan.
type ReconcilePlan struct {
	// Actions contains planned mutation operations in scan order.
	Actions []Action `json:"actions"`

	// Skipped lists files that were left untouched because hashing failed.
	Skipped []SkippedFile `json:"skipped"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// Scanned counts regular files considered.
	Scanned int `json:"scanned"`

	// Inserts counts files with no record.
	Inserts int `json:"inserts"`

	// Updates counts records whose digest is missing or stale.
	Updates int `json:"updates"`

	// Unchanged counts records already up to date.
	Unchanged int `json:"unchanged"`

	// Skipped counts files that could not be hashed.
	Skipped int `json:"skipped"`
}

// Writes returns the number of mutations the plan would perform.
func (s PlanSummary) Writes() int {
	return s.Inserts + s.Updates
}

// ReconcileOptions controls whether a plan is applied.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool
}
