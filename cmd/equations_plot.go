package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/gobraze/internal/catalog"
	"github.com/mdelacruz/gobraze/internal/plot"
	"github.com/mdelacruz/gobraze/internal/render"
)

var (
	plotFor    string
	plotAcross string
	plotFrom   float64
	plotTo     float64
	plotPoints int
	plotSet    []string
	plotOutput string
)

var equationsPlotCmd = &cobra.Command{
	Use:   "plot <equation>",
	Short: "Sweep one variable and chart the solved unknown",
	Long: `Sweep one variable of an equation across a range, solve for the unknown
at every sample, and chart the resulting curve in the terminal.

Fix all remaining variables with --set symbol=value. Samples where the
equation has no real solution, or where evaluation hits a singularity,
are skipped. With --output the chart is written as an image file
instead (.png, .svg, or .pdf by extension).

Example:
  gobraze equations plot "Air bending force (approximate)" --for F --across t \
    --from 0.02 --to 0.12 --set k=1.33 --set S_t=45000 \
    --set W=12 --set V_d=0.5`,
	Args: cobra.ExactArgs(1),
	Run:  runEquationsPlot,
}

func init() {
	equationsCmd.AddCommand(equationsPlotCmd)
	equationsPlotCmd.Flags().StringVar(&plotFor, "for", "", "variable to solve for (required)")
	equationsPlotCmd.Flags().StringVar(&plotAcross, "across", "", "variable to sweep (required)")
	equationsPlotCmd.Flags().Float64Var(&plotFrom, "from", 0, "sweep range start")
	equationsPlotCmd.Flags().Float64Var(&plotTo, "to", 0, "sweep range end")
	equationsPlotCmd.Flags().IntVar(&plotPoints, "points", 50, "number of samples")
	equationsPlotCmd.Flags().StringArrayVar(&plotSet, "set", nil, "fixed value as symbol=value (repeatable)")
	equationsPlotCmd.Flags().StringVar(&plotOutput, "output", "", "write an image file instead of a terminal chart")
	equationsPlotCmd.MarkFlagRequired("for")
	equationsPlotCmd.MarkFlagRequired("across")
}

func runEquationsPlot(cmd *cobra.Command, args []string) {
	eq, ok := catalog.EquationByName(args[0])
	if !ok {
		fmt.Printf("Error: unknown equation %q (see 'gobraze equations list')\n", args[0])
		return
	}

	fixed, err := parseAssignments(plotSet)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	sweep := plot.Sweep{
		Equation: eq,
		Unknown:  plotFor,
		Across:   plotAcross,
		From:     plotFrom,
		To:       plotTo,
		Points:   plotPoints,
		Fixed:    fixed,
	}
	series, err := sweep.Run()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if plotOutput != "" {
		if err := plot.ExportImage(series, eq.Name, plotAcross, plotFor, plotOutput); err != nil {
			fmt.Printf("Error: writing %s: %v\n", plotOutput, err)
			return
		}
		fmt.Printf("Chart written to %s\n", plotOutput)
		return
	}

	fmt.Println()
	fmt.Println(render.Heading(strings.ToUpper(eq.Name)))
	fmt.Println()
	caption := fmt.Sprintf("%s vs %s over [%g, %g]", plotFor, plotAcross, plotFrom, plotTo)
	fmt.Println(plot.Chart(series, caption))
	if len(series.X) < plotPoints {
		fmt.Printf("\n  Note: %d of %d samples had no real solution and were skipped.\n",
			plotPoints-len(series.X), plotPoints)
	}
	fmt.Println()
}
