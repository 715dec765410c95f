package catalog

import "github.com/mdelacruz/gobraze/internal/equation"

// equations is the fixed solver catalog. Declaration order is the canonical
// display order; definitions are validated once at startup by MustNew.
var equations = []equation.Equation{
	equation.MustNew(
		"Shear flow between bonded plates",
		"tau - V*Q/(I*b)",
		[]equation.Variable{
			{Symbol: "tau", Meaning: "Shear stress (psi)"},
			{Symbol: "V", Meaning: "Shear force (lbf)"},
			{Symbol: "Q", Meaning: "First moment of area about the neutral axis (in^3)"},
			{Symbol: "I", Meaning: "Moment of inertia of the section (in^4)"},
			{Symbol: "b", Meaning: "Width of the bond line (in)"},
		},
	),
	equation.MustNew(
		"Punching force",
		"F - (t * L * S_s)",
		[]equation.Variable{
			{Symbol: "F", Meaning: "Punching force (lbf)"},
			{Symbol: "t", Meaning: "Sheet thickness (in)"},
			{Symbol: "L", Meaning: "Total length of cut/perimeter (in)"},
			{Symbol: "S_s", Meaning: "Shear strength of material (psi)"},
		},
	),
	equation.MustNew(
		"Air bending force (approximate)",
		"F - (k * S_t * t**2 * W / (8 * V_d))",
		[]equation.Variable{
			{Symbol: "F", Meaning: "Force per unit length (lbf/in)"},
			{Symbol: "k", Meaning: "Die/geometry factor (≈1.33 for V-die air bend)"},
			{Symbol: "S_t", Meaning: "Tensile strength (psi)"},
			{Symbol: "t", Meaning: "Sheet thickness (in)"},
			{Symbol: "W", Meaning: "Part width engaged (in)"},
			{Symbol: "V_d", Meaning: "V-die opening (in)"},
		},
	),
}

// Equations returns the solver catalog in declaration order.
func Equations() []equation.Equation {
	out := make([]equation.Equation, len(equations))
	copy(out, equations)
	return out
}

// EquationByName looks an equation up by its display name.
func EquationByName(name string) (equation.Equation, bool) {
	for _, eq := range equations {
		if eq.Name == name {
			return eq, true
		}
	}
	return equation.Equation{}, false
}
