// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its name, an
// enable switch and route registration:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps registration order, which matters for catch-all
// handlers such as the catalog route: anything registered after it is never
// reached.
package loader
