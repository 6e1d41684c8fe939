// Package games implements the game catalog.
//
// # Components
//
//   - Service: the catalog reader. Lists games ordered by title, optionally
//     filtered by a case-insensitive substring of title or filename, with
//     download and cover-art links rebuilt from the configured base URLs on
//     every read. It opens a read-only store connection per call.
//   - Adapter: maps (path, query string) to (status, headers, body). Only
//     /games.json is recognised; the `q` parameter is the search text.
//   - Handler: serves the Adapter over Fiber.
//   - Publisher: uploads the full catalog to object storage as games.json.
//   - Loader: registers the feature with the application.
//
// The reconciler that keeps digests in sync lives in the reconcile
// subpackage.
//
// # Error contract
//
// A failed read is a Result with an error message and a kind
// (storage_unavailable or query_failed). Over HTTP it is still served with
// status 200; clients detect failure by the "error" key in the body.
//
// # HTTP Endpoints
//
//   - GET /games.json?q=mario : list (optionally filtered) games.
package games
