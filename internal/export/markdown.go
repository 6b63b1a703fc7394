package export

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// MarkdownExporter writes leads as a Markdown document: a summary table
// followed by the lead table. The format is meant for sharing and review,
// not for re-import.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides:
//  1. Type-safe markdown generation
//  2. Proper table escaping without hand-rolled pipes
//  3. Consistent output across runs
type MarkdownExporter struct {
	baseExporter
}

// NewMarkdownExporter creates a MarkdownExporter writing under dir with
// the given filename stem. Pass nil for now to use wall-clock time.
func NewMarkdownExporter(dir, name string, now func() time.Time) *MarkdownExporter {
	return &MarkdownExporter{baseExporter: newBaseExporter(dir, name, now)}
}

// Format returns "markdown".
func (e *MarkdownExporter) Format() string { return "markdown" }

// Export writes the leads and returns the created file's path.
func (e *MarkdownExporter) Export(leads []*model.Lead) (string, error) {
	path, err := e.path("md")
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create markdown file: %w", err)
	}
	defer f.Close()

	summary := Summarize(leads)

	md := markdown.NewMarkdown(f)
	md.H1("Lead Report")
	md.PlainText("")
	md.PlainText("Generated " + e.now().Format("2006-01-02 15:04:05"))
	md.PlainText("")

	md.H2("Summary")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total leads", strconv.Itoa(summary.Total)},
			{"Leads with emails", strconv.Itoa(summary.WithEmails)},
			{"Leads with profile URL", strconv.Itoa(summary.WithProfileURL)},
			{"Unique companies", strconv.Itoa(summary.UniqueCompanies)},
			{"Total email addresses", strconv.Itoa(summary.TotalEmails)},
		},
	})
	md.PlainText("")

	md.H2("Leads")
	platforms := socialColumns(leads)

	rows := make([][]string, 0, len(leads))
	for _, lead := range leads {
		rows = append(rows, flatten(lead, platforms))
	}

	md.Table(markdown.TableSet{
		Header: tabularHeader(platforms),
		Rows:   rows,
	})

	if err := md.Build(); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}

	return path, nil
}
