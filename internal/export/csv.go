package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// CSVExporter writes leads as a flat CSV table.
//
// Design decision: We use standard encoding/csv rather than a third-party
// CSV library because:
//  1. The output is a plain rectangular table with no typed columns
//  2. encoding/csv handles quoting and escaping correctly
//  3. No example of richer CSV needs exists in this codebase
type CSVExporter struct {
	baseExporter
}

// NewCSVExporter creates a CSVExporter writing under dir with the given
// filename stem. Pass nil for now to use wall-clock time.
func NewCSVExporter(dir, name string, now func() time.Time) *CSVExporter {
	return &CSVExporter{baseExporter: newBaseExporter(dir, name, now)}
}

// Format returns "csv".
func (e *CSVExporter) Format() string { return "csv" }

// Export writes the leads and returns the created file's path.
func (e *CSVExporter) Export(leads []*model.Lead) (string, error) {
	path, err := e.path("csv")
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	platforms := socialColumns(leads)

	w := csv.NewWriter(f)
	if err := w.Write(tabularHeader(platforms)); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, lead := range leads {
		if err := w.Write(flatten(lead, platforms)); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}

	return path, nil
}
