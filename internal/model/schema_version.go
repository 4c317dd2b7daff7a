package model

import "time"

// SchemaVersion is one row of flyway_schema_history. It is never written here.
type SchemaVersion struct {
	InstalledRank int64     `json:"installedRank"`
	Version       string    `json:"version"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	Script        string    `json:"script"`
	Checksum      int64     `json:"checksum"`
	InstalledBy   string    `json:"installedBy"`
	InstalledOn   time.Time `json:"installedOn"`
}
