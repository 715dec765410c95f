package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	knowns, err := parseAssignments([]string{"t=0.06", "S_ut=45000", "V = 0.5"})
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"t": 0.06, "S_ut": 45000, "V": 0.5}, knowns)
}

func TestParseAssignmentsEmpty(t *testing.T) {
	knowns, err := parseAssignments(nil)
	require.NoError(t, err)
	require.Empty(t, knowns)
}

func TestParseAssignmentsErrors(t *testing.T) {
	cases := []struct {
		name string
		in   []string
	}{
		{"no equals", []string{"t0.06"}},
		{"empty symbol", []string{"=0.06"}},
		{"bad value", []string{"t=abc"}},
		{"empty value", []string{"t="}},
		{"duplicate", []string{"t=1", "t=2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseAssignments(tc.in)
			require.Error(t, err)
		})
	}
}
