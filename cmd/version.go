package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/gobraze/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobraze",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobraze v%s\n", version.Version)
		fmt.Println("Sheet Metal Brazing & Welding Companion")
		fmt.Println("Inspired by MIL-SD-248D and MIL-S-23284A")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
