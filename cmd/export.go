package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/gobraze/internal/catalog"
	"github.com/mdelacruz/gobraze/internal/report"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the reference tables to a file",
	Long: `Export every reference table to a single file for offline use or
inclusion in work packages.

Formats:
  xlsx  - one worksheet per table (default)
  pdf   - one page per table`,
	Run: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "output format: xlsx or pdf")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "output file (default gobraze-tables.<format>)")
}

func runExport(cmd *cobra.Command, args []string) {
	tables := catalog.Tables()

	path := exportOutput
	if path == "" {
		path = "gobraze-tables." + exportFormat
	}

	var err error
	switch exportFormat {
	case "xlsx":
		err = report.WriteWorkbook(tables, path)
	case "pdf":
		err = report.WritePDF(tables, "Sheet Metal Brazing & Welding Reference", path)
	default:
		fmt.Printf("Error: unknown format %q (use xlsx or pdf)\n", exportFormat)
		return
	}
	if err != nil {
		fmt.Printf("Error: writing %s: %v\n", path, err)
		return
	}
	fmt.Printf("Exported %d tables to %s\n", len(tables), path)
}
