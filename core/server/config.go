package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Swagger exposes the API documentation under /swagger/* when true.
	Swagger bool `mapstructure:"swagger" default:"false"`
	// Integrity exposes the read-only /integrity endpoints when true.
	Integrity bool `mapstructure:"integrity" default:"false"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}
