// Package logging builds the process-wide zap logger. The interactive
// UI owns stdout and stderr for the whole session, so logs are written
// to a file next to the catalog instead of the terminal.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultPath is where session logs land when no other destination is
// chosen.
const DefaultPath = "bookshelf.log"

// New returns a production-configured logger appending JSON entries
// to the file at path. The caller is responsible for Sync on
// shutdown.
func New(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logger, nil
}
