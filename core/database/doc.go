// Package database handles store connections and schema inspection.
//
// It wraps GORM so the rest of the application never builds DSNs itself. The
// default driver is sqlite (a single games.db file next to the archive);
// mysql is supported for deployments that keep the catalog in a server.
//
// # Connections
//
// Every catalog read and every reconciliation opens its own connection through
// an Opener and releases it with Close when done, success or failure. Readers
// ask for ReadOnly connections. A missing sqlite file is never created on
// demand: Connect fails with an error wrapping ErrUnavailable, which callers
// map to a storage-unavailable outcome.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns (PRAGMA table_info on sqlite,
// SHOW COLUMNS on mysql). The integrity check uses it to compare the live
// games table with the model.
//
// # Usage
//
//	db, err := database.Connect(ctx, cfg.Database, database.ReadOnly)
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
package database
