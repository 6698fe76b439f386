package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-proton-tweaks/models"
)

const (
	catalogAppsTable      = "catalog_apps"
	catalogSnapshotsTable = "catalog_snapshots"

	// insertChunkSize bounds the number of rows per multi-row INSERT so that
	// the statement stays under SQLite's host parameter limit.
	insertChunkSize = 400
)

var snapshotColumns = []string{"id", "sha", "short_sha", "app_count", "fetched_at"}

// buildLastSnapshotQuery selects the most recently fetched snapshot.
func buildLastSnapshotQuery() (string, []any, error) {
	return sq.Select(snapshotColumns...).
		From(catalogSnapshotsTable).
		OrderBy("fetched_at DESC").
		Limit(1).
		ToSql()
}

func buildInsertSnapshotQuery(snapshot models.CatalogSnapshot) (string, []any, error) {
	return sq.Insert(catalogSnapshotsTable).
		Columns(snapshotColumns...).
		Values(snapshot.ID, snapshot.SHA, snapshot.ShortSHA, snapshot.AppCount, snapshot.FetchedAt).
		ToSql()
}

func buildDeleteAppsQuery() (string, []any, error) {
	return sq.Delete(catalogAppsTable).ToSql()
}

// buildInsertAppsQuery builds one multi-row INSERT for apps. apps must not
// be empty.
func buildInsertAppsQuery(apps []models.MicroApp) (string, []any, error) {
	builder := sq.Insert(catalogAppsTable).
		Columns("id", "name").
		Options("OR REPLACE")

	for _, app := range apps {
		builder = builder.Values(app.ID, app.Name)
	}

	return builder.ToSql()
}

// likeEscaper escapes LIKE wildcards so they match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// buildSearchAppsQuery matches term against the app id exactly and against
// the name as a case-insensitive substring.
func buildSearchAppsQuery(term string, limit uint64) (string, []any, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"

	builder := sq.Select("id", "name").
		From(catalogAppsTable).
		Where(sq.Or{
			sq.Eq{"id": term},
			sq.Expr(`LOWER(name) LIKE ? ESCAPE '\'`, pattern),
		}).
		OrderBy("name", "id")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return builder.ToSql()
}

// chunkApps splits apps into consecutive slices of at most size elements.
func chunkApps(apps []models.MicroApp, size int) [][]models.MicroApp {
	chunks := make([][]models.MicroApp, 0, len(apps)/size+1)
	for start := 0; start < len(apps); start += size {
		end := min(start+size, len(apps))
		chunks = append(chunks, apps[start:end])
	}
	return chunks
}
