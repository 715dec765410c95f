// Package catalog holds the static reference data of gobraze: quick-reference
// tables distilled from MIL-SD-248D and MIL-S-23284A, and the built-in
// engineering equation catalog. Everything here is read-only configuration
// defined at compile time.
package catalog

// Table is a generic projection of a reference table for rendering and
// export. Rows are pre-formatted strings in column order.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Tables returns every reference table in display order.
func Tables() []Table {
	return []Table{
		BaseFillerMaterialsTable(),
		GDTCalloutsTable(),
		InspectionChecklistTable(),
		WeldingLimitationsTable(),
		ThicknessLimitsTable(),
		FillerCombinationsTable(),
		QualificationLimitsTable(),
		PerformanceEvaluationsTable(),
		AssemblyTestsTable(),
		BrazingRequirementsTable(),
		BrazingQualificationTable(),
	}
}
