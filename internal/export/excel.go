package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// Excel layout constants.
const (
	// sheetName is the single worksheet holding the lead table.
	sheetName = "Leads"

	// columnPadding is added to the widest cell when sizing a column.
	columnPadding = 2

	// maxColumnWidth caps column width; about text would otherwise
	// stretch its column across the whole screen.
	maxColumnWidth = 50
)

// ExcelExporter writes leads as an xlsx workbook with auto-sized columns.
type ExcelExporter struct {
	baseExporter
}

// NewExcelExporter creates an ExcelExporter writing under dir with the
// given filename stem. Pass nil for now to use wall-clock time.
func NewExcelExporter(dir, name string, now func() time.Time) *ExcelExporter {
	return &ExcelExporter{baseExporter: newBaseExporter(dir, name, now)}
}

// Format returns "excel".
func (e *ExcelExporter) Format() string { return "excel" }

// Export writes the leads and returns the created file's path.
func (e *ExcelExporter) Export(leads []*model.Lead) (string, error) {
	path, err := e.path("xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(sheet)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("drop default sheet: %w", err)
	}

	platforms := socialColumns(leads)
	header := tabularHeader(platforms)

	rows := make([][]string, 0, len(leads)+1)
	rows = append(rows, header)
	for _, lead := range leads {
		rows = append(rows, flatten(lead, platforms))
	}

	widths := make([]int, len(header))
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return "", fmt.Errorf("build cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", fmt.Errorf("set cell %s: %w", cell, err)
			}
			if len(value) > widths[colIdx] {
				widths[colIdx] = len(value)
			}
		}
	}

	for colIdx, width := range widths {
		col, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return "", fmt.Errorf("build column name: %w", err)
		}
		width += columnPadding
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		if err := f.SetColWidth(sheetName, col, col, float64(width)); err != nil {
			return "", fmt.Errorf("set column width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	return path, nil
}
