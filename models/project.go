package models

// Project is a remote project entity, fetched read-only for selection menus.
type Project struct {
	Key  string `json:"key"`
	Name string `json:"name"`

	// Environments is populated only on the project detail endpoint.
	Environments []Environment `json:"environments,omitempty"`
}

// Environment is a deployment environment within a project (e.g. production).
type Environment struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}
