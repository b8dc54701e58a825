package logging

// These constants identify the services that log through sub-loggers of the GlobalLogger. Each is used as the value of
// the "module" key.
const (
	// CLI_SERVICE identifies the cmd package
	CLI_SERVICE = "cli"
	// GENERATOR_SERVICE identifies the generator package
	GENERATOR_SERVICE = "generator"
)
