package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mdelacruz/gobraze/internal/config"
	"github.com/mdelacruz/gobraze/internal/version"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gobraze",
	Short: "Sheet Metal Brazing & Welding Companion",
	Long: `gobraze - Sheet Metal Brazing & Welding Companion

A CLI reference tool for sheet-metal welding and brazing practice,
organizing practical guidance inspired by MIL-SD-248D and MIL-S-23284A.

This tool helps fabrication engineers look up:
  - Base/filler material pairings and drawing callouts
  - Inspection checklists and welding procedure limits
  - Procedure and performance qualification tables
  - Brazing alloy and specimen requirements
  - Sheet-metal engineering equations with a built-in solver

Values are quick-reference prompts; confirm details in the source
specifications.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobraze v%-47s║\n", version.Version)
		fmt.Println("  ║   Sheet Metal Brazing & Welding Companion                 ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI reference for sheet-metal welding and brazing practice,")
		fmt.Println("  organized from MIL-SD-248D and MIL-S-23284A guidance.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Materials, fillers, and drawing callout tables")
		fmt.Println("    • Inspection checklists and procedure limitations")
		fmt.Println("    • Qualification and brazing requirement tables")
		fmt.Println("    • Reference document library with local PDF cache")
		fmt.Println("    • Engineering equation solver and sweep plots")
		fmt.Println()
		fmt.Println("  Use 'gobraze --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: .gobraze.yaml or ~/.config/gobraze/config.yaml)")
	rootCmd.PersistentFlags().String("files", "",
		"directory holding local copies of the reference PDFs")
	_ = viper.BindPFlag("files_dir", rootCmd.PersistentFlags().Lookup("files"))

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("files_dir", defaults.FilesDir)
	viper.SetDefault("fetch_timeout", defaults.FetchTimeout)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .gobraze.yaml (current directory)
		// 2. ~/.config/gobraze/config.yaml (user config)
		if _, err := os.Stat(".gobraze.yaml"); err == nil {
			viper.SetConfigFile(".gobraze.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "gobraze"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("GOBRAZE")
	viper.AutomaticEnv()

	// Missing config files are fine; defaults apply.
	_ = viper.ReadInConfig()
	_ = viper.Unmarshal(&cfg)
}
