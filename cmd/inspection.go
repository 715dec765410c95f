package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/gobraze/internal/catalog"
	"github.com/mdelacruz/gobraze/internal/render"
)

var inspectionCmd = &cobra.Command{
	Use:   "inspection",
	Short: "Inspection checklist and welding procedure limits",
	Long: `Review the pre-weld and in-process inspection checklist, welding
procedure limitations per process, and the material thickness ranges
each process typically qualifies.`,
	Run: runInspection,
}

func init() {
	rootCmd.AddCommand(inspectionCmd)
}

func runInspection(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println(render.Heading("INSPECTION & PROCEDURE LIMITS"))
	fmt.Println()
	fmt.Println(render.Table(catalog.InspectionChecklistTable()))
	fmt.Println()
	fmt.Println(render.Table(catalog.WeldingLimitationsTable()))
	fmt.Println()
	fmt.Println(render.Table(catalog.ThicknessLimitsTable()))
	fmt.Println()
}
