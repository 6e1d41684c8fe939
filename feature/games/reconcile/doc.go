// Package reconcile wires the core reconcile engine to the games table.
//
// GamesAdapter indexes games by filename, inserts unregistered files with a
// title derived from the filename, and updates digest and size by record id.
// Reconciler owns the connection for one run.
package reconcile
