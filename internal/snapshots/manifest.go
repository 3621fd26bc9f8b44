package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Retention   Retention   `json:"retention"`
	Results     ResultsMeta `json:"results"`
}

type Retention struct {
	ResultsDays int `json:"resultsDays"`
}

type ResultsMeta struct {
	Sessions      []SessionEntry `json:"sessions"`
	LastRefreshed time.Time      `json:"lastRefreshed"`
}

// SessionEntry lists one stored results file.
type SessionEntry struct {
	SessionID   string    `json:"sessionId"`
	FinalizedAt time.Time `json:"finalizedAt"`
}

func defaultManifest(retentionDays int) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Retention:   Retention{ResultsDays: retentionDays},
		Results:     ResultsMeta{Sessions: []SessionEntry{}},
	}
}

func readManifest(path string, retentionDays int) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(retentionDays), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(retentionDays), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest, now time.Time) error {
	m.GeneratedAt = now
	sort.Slice(m.Results.Sessions, func(i, j int) bool {
		return m.Results.Sessions[i].SessionID < m.Results.Sessions[j].SessionID
	})
	path := filepath.Join(basePath, manifestFile)
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadManifest loads the manifest under basePath, or an empty one when absent.
func ReadManifest(basePath string) (Manifest, error) {
	m, err := readManifest(filepath.Join(basePath, manifestFile), 0)
	if os.IsNotExist(err) {
		return m, nil
	}
	return m, err
}
