// Package cli implements the shrinkcat command-line surface: flag parsing,
// default heuristics, and the test fixture harness that spec.md §1 treats
// as an external collaborator to the core planner/realizer/executor.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logEnvVar is this tool's equivalent of the original's RUST_LOG.
const logEnvVar = "SHRINKCAT_LOG"

// NewLogger builds a logrus.Logger whose level comes from SHRINKCAT_LOG,
// defaulting to info when unset or unparseable.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level := logrus.InfoLevel
	if raw := os.Getenv(logEnvVar); raw != "" {
		if parsed, err := logrus.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	logger.SetLevel(level)

	return logger
}
