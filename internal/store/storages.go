package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-proton-tweaks/internal/config"
	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
)

// Storages groups the local repositories and owns their connection.
type Storages struct {
	// CatalogRepository is the SQLite-backed catalog index.
	CatalogRepository CatalogRepository

	db *DB
}

// NewStorages initialises the local storage layer:
//  1. opens an SQLite connection to cfg.DB.DSN, creating the file and its
//     directory if they do not exist yet;
//  2. runs pending schema migrations via [DB.Migrate];
//  3. wires a fresh [CatalogRepository].
//
// The caller must Close the returned value.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		CatalogRepository: NewCatalogRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
