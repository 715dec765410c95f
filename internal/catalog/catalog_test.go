package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTablesWellFormed(t *testing.T) {
	tables := Tables()
	require.Len(t, tables, 11)

	seen := make(map[string]bool)
	for _, tbl := range tables {
		require.NotEmpty(t, tbl.Title)
		require.False(t, seen[tbl.Title], "duplicate table title %q", tbl.Title)
		seen[tbl.Title] = true

		require.NotEmpty(t, tbl.Columns, "table %q has no columns", tbl.Title)
		require.NotEmpty(t, tbl.Rows, "table %q has no rows", tbl.Title)
		for _, row := range tbl.Rows {
			require.Len(t, row, len(tbl.Columns), "table %q row width", tbl.Title)
		}
	}
}

func TestEquationsCatalog(t *testing.T) {
	eqs := Equations()
	require.Len(t, eqs, 3)
	require.Equal(t, "Shear flow between bonded plates", eqs[0].Name)
	require.Equal(t, "Punching force", eqs[1].Name)
	require.Equal(t, "Air bending force (approximate)", eqs[2].Name)
}

func TestEquationsReturnsCopy(t *testing.T) {
	first := Equations()
	first[0] = first[1]
	require.Equal(t, "Shear flow between bonded plates", Equations()[0].Name)
}

func TestEquationByName(t *testing.T) {
	eq, ok := EquationByName("Punching force")
	require.True(t, ok)
	require.Equal(t, "F - (t * L * S_s)", eq.Expression)

	_, ok = EquationByName("nope")
	require.False(t, ok)
}
