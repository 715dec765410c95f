package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/gobraze/internal/catalog"
	"github.com/mdelacruz/gobraze/internal/render"
)

var qualificationCmd = &cobra.Command{
	Use:   "qualification",
	Short: "Procedure and performance qualification tables",
	Long: `Plan qualification coupons and acceptance reviews: filler metal and
process combinations, qualification test limitations, performance
evaluation criteria, and assembly test requirements.

Align selections with the governing MIL standards and drawing notes.`,
	Run: runQualification,
}

func init() {
	rootCmd.AddCommand(qualificationCmd)
}

func runQualification(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println(render.Heading("PROCEDURE & PERFORMANCE QUALIFICATION"))
	fmt.Println()
	fmt.Println(render.Table(catalog.FillerCombinationsTable()))
	fmt.Println()
	fmt.Println(render.Table(catalog.QualificationLimitsTable()))
	fmt.Println()
	fmt.Println(render.Table(catalog.PerformanceEvaluationsTable()))
	fmt.Println()
	fmt.Println(render.Table(catalog.AssemblyTestsTable()))
	fmt.Println()
}
