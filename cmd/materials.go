package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/gobraze/internal/catalog"
	"github.com/mdelacruz/gobraze/internal/document"
	"github.com/mdelacruz/gobraze/internal/render"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Base/filler material pairings and drawing callouts",
	Long: `Browse common base and filler materials paired with welding or
brazing processes, plus GD&T drawing callouts worth watching on formed
and brazed sheet-metal parts.

When a local copy of MIL-SD-248D.pdf is present in the files directory,
tables and footnotes extracted from the PDF are appended to the listing.

Examples:
  gobraze materials
  gobraze materials --files /path/to/pdfs`,
	Run: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println(render.Heading("MATERIALS, FILLERS, AND DRAWINGS"))
	fmt.Println()
	fmt.Println(render.Table(catalog.BaseFillerMaterialsTable()))
	fmt.Println()
	fmt.Println(render.Table(catalog.GDTCalloutsTable()))
	fmt.Println()

	printExtractedTables()
}

func printExtractedTables() {
	doc, ok := document.Find("MIL-SD-248D")
	if !ok {
		return
	}
	path := document.LocalPath(cfg.FilesDir, doc)

	extraction, err := document.ExtractTables(path)
	if err != nil {
		fmt.Printf("No extracted tables: add a local copy of %s under %s/ to\n", doc.LocalName, cfg.FilesDir)
		fmt.Println("automatically extract tables and footnotes for the material listings.")
		fmt.Printf("(%v)\n", err)
		return
	}

	fmt.Println("MIL-SD-248D extracted tables and footnotes")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if len(extraction.Tables) == 0 {
		fmt.Println("  No tables were detected in the local copy.")
	}
	for i, table := range extraction.Tables {
		fmt.Printf("  Table %d\n", i+1)
		for _, row := range table {
			fmt.Printf("    %s\n", row)
		}
	}
	if len(extraction.Footnotes) > 0 {
		fmt.Println("  Table notes / footnotes:")
		for _, note := range extraction.Footnotes {
			fmt.Printf("    %s\n", note)
		}
	}
	fmt.Println()
}
