package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// JSONExporter writes leads as a pretty-printed JSON array.
//
// JSON is the lossless format: nothing is truncated or flattened, so a
// JSON export can reconstruct every field the session collected.
type JSONExporter struct {
	baseExporter
}

// NewJSONExporter creates a JSONExporter writing under dir with the given
// filename stem. Pass nil for now to use wall-clock time.
func NewJSONExporter(dir, name string, now func() time.Time) *JSONExporter {
	return &JSONExporter{baseExporter: newBaseExporter(dir, name, now)}
}

// Format returns "json".
func (e *JSONExporter) Format() string { return "json" }

// Export writes the leads and returns the created file's path.
func (e *JSONExporter) Export(leads []*model.Lead) (string, error) {
	path, err := e.path("json")
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create json file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(leads); err != nil {
		return "", fmt.Errorf("encode leads: %w", err)
	}

	return path, nil
}
