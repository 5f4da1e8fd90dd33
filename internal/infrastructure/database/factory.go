package database

import (
	"fmt"
	"strings"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/config"
)

// Open returns the adapter for the requested database kind. Only DuckDB is
// implemented; the factory is the seam for adding server-backed engines.
func Open(kind string, cfg *config.Config) (Database, error) {
	switch strings.ToLower(kind) {
	case "duckdb":
		return NewDuckDB(cfg.DBPath, cfg.MemoryLimit, cfg.Threads), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}

// OpenDefault returns the project's default database.
func OpenDefault(cfg *config.Config) (Database, error) {
	return Open("duckdb", cfg)
}
