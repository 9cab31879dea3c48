package kv

import (
	"fmt"
	"log/slog"
	"path/filepath"
)

// Open creates a Store based on the backend name.
//
// Supported backends:
//
//	"file"   - one JSON file per key under dataDir (default)
//	"bolt"   - bbolt database at dataDir/curator.db
//	"sqlite" - SQLite database at dataDir/curator.sqlite
//	"memory" - in-memory (ephemeral, for testing)
func Open(backend, dataDir string, logger *slog.Logger) (Store, error) {
	switch backend {
	case "file", "":
		return NewFileStore(dataDir, logger)
	case "bolt":
		return NewBoltStore(filepath.Join(dataDir, "curator.db"))
	case "sqlite":
		return NewSQLiteStore(filepath.Join(dataDir, "curator.sqlite"))
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown substrate backend: %q (supported: file, bolt, sqlite, memory)", backend)
	}
}
