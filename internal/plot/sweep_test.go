package plot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdelacruz/gobraze/internal/catalog"
	"github.com/mdelacruz/gobraze/internal/equation"
)

func TestSweepLinearForce(t *testing.T) {
	eq, ok := catalog.EquationByName("Punching force")
	require.True(t, ok)

	s := Sweep{
		Equation: eq,
		Unknown:  "F",
		Across:   "t",
		From:     0.01,
		To:       0.10,
		Points:   10,
		Fixed:    map[string]float64{"L": 10, "S_s": 40000},
	}
	series, err := s.Run()
	require.NoError(t, err)
	require.Len(t, series.Y, 10)

	// F = 400000*t along the sweep.
	require.InDelta(t, 4000, series.Y[0], 1e-6)
	require.InDelta(t, 40000, series.Y[9], 1e-6)
	for i := range series.X {
		require.InDelta(t, 400000*series.X[i], series.Y[i], 1e-6)
	}
}

func TestSweepSkipsSingularSamples(t *testing.T) {
	eq, ok := catalog.EquationByName("Shear flow between bonded plates")
	require.True(t, ok)

	// I sweeps through zero; tau is undefined there.
	s := Sweep{
		Equation: eq,
		Unknown:  "tau",
		Across:   "I",
		From:     -1,
		To:       1,
		Points:   3,
		Fixed:    map[string]float64{"V": 50, "Q": 10, "b": 2},
	}
	series, err := s.Run()
	require.NoError(t, err)
	require.Len(t, series.Y, 2, "the I=0 sample is skipped")
}

func TestSweepMissingFixedValue(t *testing.T) {
	eq, ok := catalog.EquationByName("Punching force")
	require.True(t, ok)

	s := Sweep{
		Equation: eq,
		Unknown:  "F",
		Across:   "t",
		From:     0.01,
		To:       0.10,
		Points:   5,
		Fixed:    map[string]float64{"L": 10}, // S_s missing
	}
	_, err := s.Run()
	var miss *equation.MissingInputError
	require.ErrorAs(t, err, &miss)
	require.Equal(t, []string{"S_s"}, miss.Missing)
}

func TestSweepValidation(t *testing.T) {
	eq, ok := catalog.EquationByName("Punching force")
	require.True(t, ok)

	_, err := Sweep{Equation: eq, Unknown: "F", Across: "F", From: 0, To: 1, Points: 5}.Run()
	require.Error(t, err)

	_, err = Sweep{Equation: eq, Unknown: "F", Across: "t", From: 0, To: 1, Points: 1}.Run()
	require.Error(t, err)

	_, err = Sweep{Equation: eq, Unknown: "F", Across: "bogus", From: 0, To: 1, Points: 5}.Run()
	require.Error(t, err)
}

func TestChart(t *testing.T) {
	series := Series{
		X: []float64{1, 2, 3, 4},
		Y: []float64{10, 20, 15, 30},
	}
	out := Chart(series, "F vs t")
	require.Contains(t, out, "F vs t")
	require.NotEmpty(t, out)
}

func TestExportImage(t *testing.T) {
	series := Series{
		X: []float64{0.01, 0.05, 0.10},
		Y: []float64{4000, 20000, 40000},
	}
	path := filepath.Join(t.TempDir(), "sweep.png")
	require.NoError(t, ExportImage(series, "Punching force", "t (in)", "F (lbf)", path))
	require.FileExists(t, path)
}
