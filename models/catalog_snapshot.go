package models

import "time"

// CatalogSnapshot records one synchronisation of the catalog index into the
// local store.
type CatalogSnapshot struct {
	// ID is the locally generated identifier of the snapshot (UUIDv7).
	ID string `json:"id"`
	// SHA is the catalog revision reported by apps.json.
	SHA string `json:"sha"`
	// ShortSHA is the abbreviated catalog revision.
	ShortSHA string `json:"short_sha"`
	// AppCount is the number of apps in the index at FetchedAt.
	AppCount int `json:"app_count"`
	// FetchedAt is when the index was downloaded.
	FetchedAt time.Time `json:"fetched_at"`
}
