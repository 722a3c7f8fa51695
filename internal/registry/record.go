package registry

import "strings"

// keyPrefix tags every registry key so dynamics entries are recognizable
// inside merged Quiqr content.
const keyPrefix = "dynbx"

// Record is one dynamics registry entry. The field names on disk are fixed
// by the Quiqr content merger: `_mergePartial` names the partial the entry
// binds to, `content_type` tags the content it produces.
type Record struct {
	Key          string `yaml:"key" toml:"key" json:"key"`
	MergePartial string `yaml:"_mergePartial" toml:"_mergePartial" json:"_mergePartial"`
	ContentType  string `yaml:"content_type" toml:"content_type" json:"content_type"`
}

// KeyFor derives the registry key for a block identifier: the identifier
// with underscores stripped, behind the dynamics prefix.
func KeyFor(identifier string) string {
	return keyPrefix + strings.ReplaceAll(identifier, "_", "")
}

// NewRecord builds the registry entry for a block identifier.
func NewRecord(identifier string) Record {
	return Record{
		Key:          KeyFor(identifier),
		MergePartial: identifier,
		ContentType:  identifier,
	}
}
