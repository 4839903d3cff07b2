// Package store persists the application's records as whole JSON files.
// Every mutation rewrites the backing file in full; writes go through a
// temp-file-then-rename so readers never observe a truncated file.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// readRecords decodes a JSON array of records from path. It fails open:
// a missing or unparseable file yields an empty slice, and individual
// records that fail validation are skipped.
func readRecords[T interface{ Validate() error }](path string) []T {
	b, err := os.ReadFile(path)
	if err != nil {
		return []T{}
	}
	var raw []T
	if err := json.Unmarshal(b, &raw); err != nil {
		return []T{}
	}
	records := make([]T, 0, len(raw))
	for _, r := range raw {
		if r.Validate() != nil {
			continue
		}
		records = append(records, r)
	}
	return records
}

// writeRecords replaces the file at path with the JSON encoding of
// records. The write is all-or-nothing: the new content lands in a temp
// file first and is renamed over the old one.
func writeRecords[T any](path string, records []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
