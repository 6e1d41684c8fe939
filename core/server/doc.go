// Package server holds the HTTP server configuration.
//
// The start command owns the server lifecycle; this package only defines the
// settings it reads: the listen port and whether the Swagger UI is mounted.
// With Swagger disabled (the default) the only route served is the catalog
// listing.
package server
