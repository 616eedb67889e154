package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"cryptoprobe/internal/domain"
)

const reportFileMode = 0o600

// ReportFileStore keeps reports as <dir>/<name>.json.
type ReportFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewReportFileStore returns a store rooted at dir.
func NewReportFileStore(dir string) *ReportFileStore { return &ReportFileStore{dir: dir} }

// Path returns the file a report called name is stored in.
func (s *ReportFileStore) Path(name string) string {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return filepath.Join(s.dir, name)
}

func (s *ReportFileStore) SaveReport(name string, report domain.Report) error {
	if err := validName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.Path(name), report, reportFileMode)
}

func (s *ReportFileStore) LoadReport(name string) (domain.Report, bool, error) {
	if err := validName(name); err != nil {
		return domain.Report{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var r domain.Report
	ok, err := readJSON(s.Path(name), &r)
	if err != nil || !ok {
		return domain.Report{}, false, err
	}
	return r, true, nil
}

func validName(name string) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("invalid report name %q", name)
	}
	return nil
}

var _ domain.ReportStore = (*ReportFileStore)(nil)
