package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const manifestFile = "manifest.json"

// Manifest tracks which report dates are archived.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Retention   Retention   `json:"retention"`
	Reports     ReportsMeta `json:"reports"`
}

type Retention struct {
	Days int `json:"days"`
}

type ReportsMeta struct {
	Dates       []string  `json:"dates"`
	LastCycleID string    `json:"lastCycleId,omitempty"`
	LastWritten time.Time `json:"lastWritten"`
}

func defaultManifest(retentionDays int, now time.Time) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: now,
		Retention:   Retention{Days: retentionDays},
		Reports:     ReportsMeta{Dates: []string{}},
	}
}

func readManifest(basePath string) (Manifest, error) {
	var m Manifest
	f, err := os.Open(filepath.Join(basePath, manifestFile))
	if err != nil {
		return m, err
	}
	defer f.Close()
	err = json.NewDecoder(f).Decode(&m)
	return m, err
}

func writeManifest(basePath string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(basePath, manifestFile), data)
}

// writeAtomic replaces path through a temp file so readers never see a
// partial document.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
