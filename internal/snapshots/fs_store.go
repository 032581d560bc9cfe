package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/preston-bernstein/wager-tracker/internal/timeutil"
	"github.com/preston-bernstein/wager-tracker/internal/tracker"
)

// ErrNotArchived is returned when no report exists for a date.
var ErrNotArchived = errors.New("report not archived")

// Store defines how archived reports are loaded.
type Store interface {
	LoadReport(date string) (tracker.Report, error)
	Dates() ([]string, error)
}

// FSStore loads archived reports from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadReport reads the archived report for date (YYYY-MM-DD).
func (s *FSStore) LoadReport(date string) (tracker.Report, error) {
	var r tracker.Report
	if s == nil {
		return r, errors.New("snapshot store not configured")
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		return r, err
	}
	f, err := os.Open(ReportPath(s.basePath, date))
	if err != nil {
		if os.IsNotExist(err) {
			return r, ErrNotArchived
		}
		return r, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&r); err != nil {
		return tracker.Report{}, err
	}
	return r, nil
}

// Dates lists archived dates from the manifest, oldest first.
func (s *FSStore) Dates() ([]string, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	m, err := readManifest(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	return m.Reports.Dates, nil
}
