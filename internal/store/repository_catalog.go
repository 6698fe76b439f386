package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/models"
)

type catalogRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCatalogRepository returns a [CatalogRepository] backed by db.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

func (c *catalogRepository) LastSnapshot(ctx context.Context) (models.CatalogSnapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLastSnapshotQuery()
	if err != nil {
		return models.CatalogSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var snapshot models.CatalogSnapshot
	err = c.db.QueryRowContext(ctx, query, args...).Scan(
		&snapshot.ID,
		&snapshot.SHA,
		&snapshot.ShortSHA,
		&snapshot.AppCount,
		&snapshot.FetchedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CatalogSnapshot{}, ErrNoSnapshot
	}
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.LastSnapshot").
			Msg("failed to query last snapshot")
		return models.CatalogSnapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return snapshot, nil
}

// ReplaceIndex deletes every indexed app, inserts apps in chunks and records
// snapshot inside one transaction. Nothing is changed if any step fails.
func (c *catalogRepository) ReplaceIndex(ctx context.Context, snapshot models.CatalogSnapshot, apps []models.MicroApp) error {
	log := logger.FromContext(ctx)

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ReplaceIndex").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteAppsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ReplaceIndex").
			Msg("failed to clear catalog index")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for idx, chunk := range chunkApps(apps, insertChunkSize) {
		query, args, err = buildInsertAppsQuery(chunk)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "catalogRepository.ReplaceIndex").
				Int("chunk", idx+1).
				Int("chunk_size", len(chunk)).
				Msg("failed to insert catalog apps")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	query, args, err = buildInsertSnapshotQuery(snapshot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ReplaceIndex").
			Str("snapshot_id", snapshot.ID).
			Msg("failed to record snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ReplaceIndex").
			Int("count", len(apps)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "catalogRepository.ReplaceIndex").
		Str("snapshot_id", snapshot.ID).
		Str("sha", snapshot.SHA).
		Int("count", len(apps)).
		Msg("catalog index replaced")

	return nil
}

func (c *catalogRepository) SearchApps(ctx context.Context, term string, limit uint64) ([]models.MicroApp, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchAppsQuery(term, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.SearchApps").
			Str("term", term).
			Msg("failed to execute search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.MicroApp, 0, 16)
	for rows.Next() {
		var app models.MicroApp
		if err = rows.Scan(&app.ID, &app.Name); err != nil {
			log.Err(err).
				Str("func", "catalogRepository.SearchApps").
				Msg("failed to scan catalog app row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		results = append(results, app)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.SearchApps").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}
