// Package integrity provides read-only health checks for the catalog.
//
// # Checks Provided
//
//   - Schema: Validates that the games table has the columns (and soft-checked types) declared on models.Game.
//   - Archive: Verifies that the archive directory exists and counts the files the reconciler would hash.
//
// Nothing is ever repaired; schema changes are made outside this service.
//
// # HTTP Endpoints
//
// Mounted only when server.integrity is enabled:
//
//   - GET /integrity : Runs all checks (503 when something is wrong).
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/archive : Runs the archive check.
package integrity
