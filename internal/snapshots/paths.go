package snapshots

import (
	"fmt"
	"path/filepath"
)

const (
	resultsDir   = "results"
	manifestFile = "manifest.json"
)

// ResultsPath builds the path to a finalized session's results snapshot.
func ResultsPath(basePath, sessionID string) string {
	return filepath.Join(basePath, resultsDir, fmt.Sprintf("%s.json", sessionID))
}
