package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// aboutMaxLen is the truncation length for the about column in tabular
// formats. JSON keeps the full text.
const aboutMaxLen = 200

// Exporter writes a lead collection to a file and returns its path.
//
// Design decision: Exporters return the written path rather than taking
// an io.Writer because:
//  1. The timestamped filename is part of the format contract
//  2. Excel files cannot be streamed and must be saved whole
//  3. Callers want the path for the final log line anyway
type Exporter interface {
	// Export writes the leads and returns the created file's path.
	Export(leads []*model.Lead) (string, error)

	// Format returns the format name for logging.
	Format() string
}

// baseExporter carries the path construction shared by all formats.
type baseExporter struct {
	// dir is the output directory, created on demand.
	dir string

	// name is the filename stem before the timestamp.
	name string

	// now supplies the timestamp. Injectable so tests get stable paths.
	now func() time.Time
}

func newBaseExporter(dir, name string, now func() time.Time) baseExporter {
	if now == nil {
		now = time.Now
	}
	return baseExporter{dir: dir, name: name, now: now}
}

// path builds the timestamped output path and ensures the directory
// exists.
func (b baseExporter) path(ext string) (string, error) {
	if err := os.MkdirAll(b.dir, 0o750); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.%s", b.name, b.now().Format("20060102_150405"), ext)
	return filepath.Join(b.dir, filename), nil
}

// New creates the Exporter for the given format name. The format must be
// one of csv, json, excel or markdown; config validation guarantees that
// before this point.
func New(format, dir, name string, now func() time.Time) (Exporter, error) {
	switch format {
	case "csv":
		return NewCSVExporter(dir, name, now), nil
	case "json":
		return NewJSONExporter(dir, name, now), nil
	case "excel":
		return NewExcelExporter(dir, name, now), nil
	case "markdown":
		return NewMarkdownExporter(dir, name, now), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// truncate shortens s to max runes, appending an ellipsis marker when
// anything was cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// socialColumns returns the platform names seen across the collection,
// sorted for deterministic column order. Tabular formats use these as
// extra columns so runs that never saw a platform do not emit an empty
// column for it.
func socialColumns(leads []*model.Lead) []string {
	var platforms []string
	seen := make(map[string]bool)

	for _, lead := range leads {
		for platform := range lead.SocialLinks {
			if !seen[platform] {
				seen[platform] = true
				platforms = append(platforms, platform)
			}
		}
	}

	sort.Strings(platforms)
	return platforms
}

// flatten converts one lead to the shared tabular row: fixed columns
// first, then one column per platform in the given order.
func flatten(lead *model.Lead, platforms []string) []string {
	row := []string{
		lead.Name,
		lead.Title,
		lead.Company,
		lead.Location,
		lead.LinkedInURL,
		strings.Join(lead.Emails, "; "),
		truncate(lead.About, aboutMaxLen),
		lead.SearchQuery,
	}

	for _, platform := range platforms {
		row = append(row, lead.SocialLinks[platform])
	}

	return row
}

// tabularHeader returns the shared column header for CSV and Excel.
func tabularHeader(platforms []string) []string {
	header := []string{"Name", "Title", "Company", "Location", "LinkedIn URL", "Emails", "About", "Search Query"}
	for _, platform := range platforms {
		header = append(header, strings.ToUpper(platform[:1])+platform[1:])
	}
	return header
}
