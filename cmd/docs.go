package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/gobraze/internal/document"
	"github.com/mdelacruz/gobraze/internal/render"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Reference document library",
	Long: `Manage local copies of the reference specifications.

Subcommands:
  list   - Show documents, external links, and local availability
  fetch  - Download missing PDFs into the files directory

Because the external hosts may be unavailable, you can also download
the specifications manually and place them in the files directory
using the exact file names shown by 'docs list'.`,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show documents and local availability",
	Run:   runDocsList,
}

var docsFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download missing reference PDFs",
	Run:   runDocsFetch,
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsFetchCmd)
}

func runDocsList(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println(render.Heading("REFERENCE DOCUMENTS"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Document\tLocal Copy\tExists\tSize (bytes)")
	fmt.Fprintln(w, "  ────────\t──────────\t──────\t────────────")
	for _, status := range document.Resolve(cfg.FilesDir) {
		exists := "No"
		if status.Exists {
			exists = "Yes"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d\n", status.Title, status.Path, exists, status.Size)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("  External links:")
	for _, doc := range document.Library {
		fmt.Printf("    %s — %s\n", doc.Title, doc.ExternalURL)
	}
	fmt.Println()
}

func runDocsFetch(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.FetchTimeout)
	defer cancel()

	fmt.Println()
	fmt.Printf("Fetching missing reference PDFs into %s/ ...\n", cfg.FilesDir)
	fmt.Println()

	results := document.FetchMissing(ctx, http.DefaultClient, cfg.FilesDir)
	for _, res := range results {
		mark := "✓"
		if !res.OK {
			mark = "⚠"
		}
		fmt.Printf("  %s %s: %s\n", mark, res.Title, res.Message)
	}
	fmt.Println()
}
