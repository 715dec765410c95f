package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/gobraze/internal/catalog"
	"github.com/mdelacruz/gobraze/internal/equation"
	"github.com/mdelacruz/gobraze/internal/render"
)

var (
	solveFor string
	solveSet []string
)

var equationsSolveCmd = &cobra.Command{
	Use:   "solve <equation>",
	Short: "Solve an equation for one unknown",
	Long: `Solve one of the built-in equations for a chosen unknown.

Supply every other variable with --set symbol=value (repeatable). The
solver substitutes the known values and returns the real roots; complex
roots are filtered out, so an equation can legitimately have no real
solution for a given set of inputs.

Example:
  gobraze equations solve "Air bending force (approximate)" --for F \
    --set k=1.33 --set S_t=45000 --set t=0.06 --set W=12 --set V_d=0.5`,
	Args: cobra.ExactArgs(1),
	Run:  runEquationsSolve,
}

func init() {
	equationsCmd.AddCommand(equationsSolveCmd)
	equationsSolveCmd.Flags().StringVar(&solveFor, "for", "", "variable to solve for (required)")
	equationsSolveCmd.Flags().StringArrayVar(&solveSet, "set", nil, "known value as symbol=value (repeatable)")
	equationsSolveCmd.MarkFlagRequired("for")
}

func runEquationsSolve(cmd *cobra.Command, args []string) {
	eq, ok := catalog.EquationByName(args[0])
	if !ok {
		fmt.Printf("Error: unknown equation %q (see 'gobraze equations list')\n", args[0])
		return
	}

	knowns, err := parseAssignments(solveSet)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	solutions, err := equation.Solve(eq, solveFor, knowns)
	if err != nil {
		var miss *equation.MissingInputError
		if errors.As(err, &miss) {
			fmt.Printf("Error: %v\n", err)
			fmt.Println("Use --set symbol=value for each listed variable.")
			return
		}
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println(render.Heading(strings.ToUpper(eq.Name)))
	fmt.Println()
	fmt.Printf("  %s = 0, solved for %s\n", eq.Expression, solveFor)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Given\tValue")
	fmt.Fprintln(w, "  ─────\t─────")
	for _, v := range eq.Variables {
		if v.Symbol == solveFor {
			continue
		}
		fmt.Fprintf(w, "  %s\t%g\n", v.Symbol, knowns[v.Symbol])
	}
	w.Flush()
	fmt.Println()

	if len(solutions) == 0 {
		fmt.Println("  No real solutions found with the provided values.")
		fmt.Println()
		return
	}

	for i, root := range solutions {
		check := make(map[string]float64, len(knowns)+1)
		for k, v := range knowns {
			check[k] = v
		}
		check[solveFor] = root
		residual, evalErr := eq.Eval(check)

		if len(solutions) == 1 {
			fmt.Printf("  %s = %g\n", solveFor, root)
		} else {
			fmt.Printf("  %s = %g  (root %d of %d)\n", solveFor, root, i+1, len(solutions))
		}
		if evalErr == nil {
			fmt.Printf("      residual: %.3e\n", residual)
		}
	}
	fmt.Println()
}
