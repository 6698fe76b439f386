package models

// Issue describes a known problem with an application and, when one is
// known, how to work around it.
type Issue struct {
	Description string  `json:"description"`
	Solution    *string `json:"solution"`
}

// App is a single catalog entry. It is read-only source data for tweak
// resolution; its identity is ID (the Steam app id).
type App struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Tweaks AppTweaks `json:"tweaks"`
	Issues []Issue   `json:"issues"`
}

// MicroApp is the minimal app reference listed in the catalog index.
type MicroApp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AppsList is the catalog index (apps.json). SHA identifies the catalog
// revision and changes whenever any entry changes.
type AppsList struct {
	SHA      string     `json:"sha"`
	ShortSHA string     `json:"short_sha"`
	Apps     []MicroApp `json:"apps"`
}

// IDs returns the ids of all listed apps in catalog order.
func (l AppsList) IDs() []string {
	ids := make([]string, 0, len(l.Apps))
	for _, app := range l.Apps {
		ids = append(ids, app.ID)
	}
	return ids
}
