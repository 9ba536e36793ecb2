package ir

// Version constants for the configuration schema and the generator.
const (
	// ConfigVersion is the configuration schema version.
	ConfigVersion = "1"

	// GeneratorVersion is the floatgen generator version.
	GeneratorVersion = "0.1.0"
)
