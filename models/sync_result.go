package models

// CatalogSyncResult reports the outcome of one catalog index synchronisation.
type CatalogSyncResult struct {
	// Snapshot is the snapshot that is current after the sync.
	Snapshot CatalogSnapshot `json:"snapshot"`
	// Changed is true when the catalog revision differed from the previous
	// snapshot (or there was none) and the local index was replaced.
	Changed bool `json:"changed"`
	// Previous is the snapshot that was current before the sync, if any.
	Previous *CatalogSnapshot `json:"previous,omitempty"`
}
