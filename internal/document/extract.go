package document

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extraction holds table rows and footnotes recovered from a PDF. Tables are
// pre-formatted rows ("cell | cell | ..."), one slice per detected table.
type Extraction struct {
	Tables    [][]string
	Footnotes []string
}

// minTableRows is the smallest run of aligned rows treated as a table.
const minTableRows = 2

// ExtractTables pulls candidate table rows and trailing footnotes from a
// local PDF copy. Extraction is heuristic: a text row with three or more
// fragments counts as a table row, and consecutive table rows form a table.
// Errors are returned, not swallowed; the caller decides how to degrade.
func ExtractTables(path string) (Extraction, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return Extraction{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var ex Extraction
	var current []string

	flush := func() {
		if len(current) >= minTableRows {
			ex.Tables = append(ex.Tables, current)
		}
		current = nil
	}

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return Extraction{}, fmt.Errorf("reading page %d of %s: %w", i, path, err)
		}

		for _, row := range rows {
			cells := make([]string, 0, len(row.Content))
			for _, frag := range row.Content {
				if s := strings.TrimSpace(frag.S); s != "" {
					cells = append(cells, s)
				}
			}
			if len(cells) == 0 {
				flush()
				continue
			}

			line := strings.Join(cells, " ")
			if strings.HasPrefix(line, "*") || strings.HasPrefix(line, "Note") || strings.HasPrefix(line, "NOTE") {
				ex.Footnotes = append(ex.Footnotes, line)
			}

			if len(cells) >= 3 {
				current = append(current, strings.Join(cells, " | "))
			} else {
				flush()
			}
		}
		flush()
	}

	ex.Footnotes = dedupe(ex.Footnotes)
	return ex, nil
}

// dedupe removes repeated footnotes while preserving first-seen order;
// page headers repeat notes across a document.
func dedupe(notes []string) []string {
	seen := make(map[string]bool, len(notes))
	out := notes[:0]
	for _, n := range notes {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
