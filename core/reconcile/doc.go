// Package reconcile keeps stored content digests in sync with the files in
// an archive directory.
//
// # Architecture
//
//  1. Engine: lists the regular files of the archive directory, hashes each
//     one with a streaming digest and compares it with an index of stored
//     records loaded in a single query.
//
//  2. Adapter: model-specific store access (index loading, inserts, digest
//     updates). feature/games/reconcile provides the adapter for the games
//     table.
//
//  3. Plan / Apply: planning never writes. ApplyPlan runs every planned write
//     in one transaction that commits at the end, so a run either lands as a
//     whole or not at all.
//
// # Outcomes per file
//
//   - no record: insert
//   - record with a missing or different digest: update digest and size,
//     keyed by the record's identity
//   - record with the same digest: nothing
//   - hashing failed: logged, skipped, the scan continues
//
// Records whose file has disappeared are left alone. There is no delete path.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Adapter:   gamesreconcile.NewAdapter(cfg.Archive),
//	    Dir:       cfg.Archive.Dir,
//	    Accept:    cfg.Archive.Accepts,
//	    ChunkSize: cfg.Archive.ChunkSize,
//	}
//	plan, executed, err := reconcile.ReconcileAndApply(ctx, spec, db, log, reconcile.ReconcileOptions{})
package reconcile
