package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/gobraze/internal/catalog"
	"github.com/mdelacruz/gobraze/internal/render"
)

var brazingCmd = &cobra.Command{
	Use:   "brazing",
	Short: "Brazing alloy, flux, and qualification requirements",
	Long: `Consolidated brazing criteria reflecting the MIL brazing guidance.
Tailor the notes to your exact joint design, fixture strategy, and
alloy family.`,
	Run: runBrazing,
}

func init() {
	rootCmd.AddCommand(brazingCmd)
}

func runBrazing(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println(render.Heading("BRAZING REQUIREMENTS"))
	fmt.Println()
	fmt.Println(render.Table(catalog.BrazingRequirementsTable()))
	fmt.Println()
	fmt.Println(render.Table(catalog.BrazingQualificationTable()))
	fmt.Println()
}
