package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mdelacruz/gobraze/internal/catalog"
	"github.com/mdelacruz/gobraze/internal/equation"
	"github.com/mdelacruz/gobraze/internal/render"
)

var equationsCmd = &cobra.Command{
	Use:     "equations",
	Aliases: []string{"eq"},
	Short:   "Sheet-metal engineering equations and solver",
	Long: `Look up and solve the built-in sheet-metal engineering equations.

Each equation is an algebraic relation "expression = 0" over named
variables. Pick the variable to solve for, supply values for the rest,
and the solver returns the physically meaningful (real) roots.

Equations are provided as reminders; validate against detailed design
references and safety factors.

Subcommands:
  list   - Show the equation catalog
  show   - Show one equation's expression and variables
  solve  - Solve an equation for one unknown
  plot   - Sweep one variable and chart the solved unknown`,
}

var equationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the equation catalog",
	Run:   runEquationsList,
}

var equationsShowCmd = &cobra.Command{
	Use:   "show <equation>",
	Short: "Show one equation's expression and variables",
	Args:  cobra.ExactArgs(1),
	Run:   runEquationsShow,
}

func init() {
	rootCmd.AddCommand(equationsCmd)
	equationsCmd.AddCommand(equationsListCmd)
	equationsCmd.AddCommand(equationsShowCmd)
}

func runEquationsList(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println(render.Heading("SHEET METAL ENGINEERING EQUATIONS"))
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Equation\tExpression = 0\tVariables")
	fmt.Fprintln(w, "  ────────\t──────────────\t─────────")
	for _, eq := range catalog.Equations() {
		symbols := make([]string, len(eq.Variables))
		for i, v := range eq.Variables {
			symbols[i] = v.Symbol
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", eq.Name, eq.Expression, strings.Join(symbols, ", "))
	}
	w.Flush()
	fmt.Println()
}

func runEquationsShow(cmd *cobra.Command, args []string) {
	eq, ok := catalog.EquationByName(args[0])
	if !ok {
		fmt.Printf("Error: unknown equation %q (see 'gobraze equations list')\n", args[0])
		return
	}
	printEquation(eq)
}

func printEquation(eq equation.Equation) {
	fmt.Println()
	fmt.Println(render.Heading(strings.ToUpper(eq.Name)))
	fmt.Println()
	fmt.Printf("  %s = 0\n", eq.Expression)
	fmt.Println()
	fmt.Println("  Variables:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, v := range eq.Variables {
		fmt.Fprintf(w, "    %s\t%s\n", v.Symbol, v.Meaning)
	}
	w.Flush()
	fmt.Println()
}

// parseAssignments turns repeated "symbol=value" flags into known values.
func parseAssignments(assignments []string) (map[string]float64, error) {
	knowns := make(map[string]float64, len(assignments))
	for _, a := range assignments {
		name, value, found := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("invalid assignment %q (expected symbol=value)", a)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value in %q: %w", a, err)
		}
		if _, dup := knowns[name]; dup {
			return nil, fmt.Errorf("duplicate assignment for %q", name)
		}
		knowns[name] = v
	}
	return knowns, nil
}
