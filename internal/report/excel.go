// Package report exports the reference catalog to shareable documents.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mdelacruz/gobraze/internal/catalog"
)

// WriteWorkbook writes every table to its own sheet of an XLSX workbook.
func WriteWorkbook(tables []catalog.Table, path string) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, tbl := range tables {
		name := sheetName(tbl.Title)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}

		header := tbl.Columns
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return err
		}
		for r, row := range tbl.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// sheetName squeezes a table title into Excel's sheet-name rules: at most
// 31 characters, none of : \ / ? * [ ].
func sheetName(title string) string {
	replacer := strings.NewReplacer(":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "")
	name := replacer.Replace(title)
	if len(name) > 31 {
		name = strings.TrimSpace(name[:31])
	}
	return name
}
