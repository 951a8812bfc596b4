package config

import "github.com/sirupsen/logrus"

// Config holds the solver's runtime configuration.
type Config struct {
	// Logger receives the solver's structured trace output.
	Logger logrus.FieldLogger
	// Models is the number of models to enumerate before stopping.
	Models uint
	// CheckModel re-checks every input clause against the model after a
	// satisfiable answer. A failed check is an engine bug and panics.
	CheckModel bool
	// Verbose enables debug-level tracing of propagation, branching and
	// proof rewriting.
	Verbose bool
}

// New returns a config with a default logger and a single-model search.
func New() *Config {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &Config{
		Logger: logger,
		Models: 1,
	}
}
