package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdelacruz/gobraze/internal/catalog"
)

func TestTableContainsHeadersAndCells(t *testing.T) {
	tbl := catalog.Table{
		Title:   "Sample",
		Columns: []string{"Process", "Notes"},
		Rows: [][]string{
			{"GTAW", "thin sheet"},
			{"Brazing", "lap joints"},
		},
	}
	out := Table(tbl)
	require.Contains(t, out, "Sample")
	require.Contains(t, out, "Process")
	require.Contains(t, out, "GTAW")
	require.Contains(t, out, "lap joints")
}

func TestHeading(t *testing.T) {
	out := Heading("BRAZING REQUIREMENTS")
	require.Contains(t, out, "BRAZING REQUIREMENTS")
	require.Contains(t, out, "═")
}
