package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"autopoiesis/internal/logx"
	"autopoiesis/internal/sims/autopoiesis"
)

func TestParseLists(t *testing.T) {
	fs, err := parseFloats("0.01, 0.02,,0.5")
	require.NoError(t, err)
	require.Equal(t, []float64{0.01, 0.02, 0.5}, fs)

	is, err := parseInts("1,2 , 4")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4}, is)

	_, err = parseInts("1,two")
	require.Error(t, err)
}

func TestBuildSetsCoversGrid(t *testing.T) {
	sets := buildSets([]float64{0.01, 0.02}, []int{1, 2, 3}, 2)
	require.Len(t, sets, 12)
	require.Equal(t, paramSet{decayRate: 0.01, catalysts: 1, seed: 1}, sets[0])
}

func TestSweepIsDeterministicAcrossWorkerCounts(t *testing.T) {
	base := autopoiesis.DefaultConfig()
	base.Width, base.Height = 12, 12
	sets := buildSets([]float64{0.005, 0.05}, []int{1, 2}, 2)

	one := sweep(base, sets, 3000, 500, 1, logx.NewNoOp())
	many := sweep(base, sets, 3000, 500, 4, logx.NewNoOp())

	require.Len(t, one, len(sets))
	require.Equal(t, len(one), len(many))
	for i := range one {
		require.NoError(t, one[i].err)
		require.Equal(t, one[i].params, many[i].params)
		require.Equal(t, one[i].final, many[i].final)
	}
}

func TestSweepReportsInvalidScenarios(t *testing.T) {
	base := autopoiesis.DefaultConfig()
	base.Width, base.Height = 2, 2
	sets := []paramSet{{decayRate: 0.01, catalysts: 9, seed: 1}, {decayRate: 0.01, catalysts: 1, seed: 1}}

	all := sweep(base, sets, 100, 50, 2, logx.NewNoOp())

	require.NoError(t, all[0].err, "valid scenarios rank first")
	require.ErrorIs(t, all[1].err, autopoiesis.ErrTooManyCatalysts)
}
