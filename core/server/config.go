package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret required to call the shelf API. Empty disables
	// authentication, which is fine for a private network.
	ApiKey string `mapstructure:"api_key" default:""`
}
