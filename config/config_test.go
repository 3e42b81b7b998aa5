package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rpanet/config"
	"github.com/katalvlaran/rpanet/reciprocity"
	"github.com/katalvlaran/rpanet/rpanet"
)

func TestLoad_File(t *testing.T) {
	cfg, err := config.LoadWithEnv("testdata/run.yaml", "")
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.RNGSeed)
	assert.Equal(t, 3, cfg.ReplicateCount())
	assert.Equal(t, []int{3, 3, 3, 3, 3}, cfg.StepCounts())
	assert.Equal(t, "global", cfg.Uniqueness)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, [][]float64{{0.9, 0.1}, {0.1, 0.9}}, cfg.Reciprocity.Matrix)

	seed, err := cfg.BuildSeed()
	require.NoError(t, err)
	assert.Equal(t, 4, seed.Len())
	assert.Equal(t, []float64{1, 1, 1, 1}, seed.OutWeight)
	assert.Equal(t, []float64{1, 1, 1, 1}, seed.InWeight)
	assert.Len(t, seed.Edges, 4)

	fn, ok := cfg.WeightFn()
	require.True(t, ok)
	assert.NotNil(t, fn)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RPANET_RNG_SEED", "7")
	t.Setenv("RPANET_SCENARIO_ALPHA", "0.1")
	t.Setenv("RPANET_STEPS_EDGES_PER_STEP", "2")
	t.Setenv("RPANET_LOG_LEVEL", "warn")
	t.Setenv("RPANET_UNIQUENESS", "none")

	cfg, err := config.LoadWithEnv("testdata/run.yaml", "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.RNGSeed)
	assert.Equal(t, 0.1, cfg.Scenario.Alpha)
	assert.Equal(t, 0.5, cfg.Scenario.Beta) // untouched
	assert.Equal(t, []int{2, 2, 2, 2, 2}, cfg.StepCounts())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "none", cfg.Uniqueness)
}

func TestLoad_SplitWordKeys(t *testing.T) {
	t.Setenv("RPANET_SCENARIO_BETA_LOOP", "true")
	t.Setenv("RPANET_SCENARIO_TARGET_FIRST", "true")
	t.Setenv("RPANET_RECIPROCITY_SELF_LOOP", "true")
	t.Setenv("RPANET_WEIGHTS_STDDEV", "0.5")

	cfg, err := config.LoadWithEnv("testdata/run.yaml", "")
	require.NoError(t, err)
	assert.True(t, cfg.Scenario.BetaLoop)
	assert.True(t, cfg.Scenario.TargetFirst)
	assert.True(t, cfg.Reciprocity.SelfLoop)
	assert.Equal(t, 0.5, cfg.Weights.StdDev)
}

func TestLoad_IgnoresUnprefixedEnv(t *testing.T) {
	for key, value := range map[string]string{
		"ALPHA":          "0.9",
		"COUNT":          "99",
		"EDGES_PER_STEP": "7",
		"NODES":          "50",
		"P":              "0.5",
		"RNG_SEED":       "1",
		"REPLICATES":     "8",
		"UNIQUENESS":     "none",
		"BETA_LOOP":      "true",
		"LEVEL":          "error",
		"FORMAT":         "console",
		"MIN":            "5",
	} {
		t.Setenv(key, value)
	}

	cfg, err := config.LoadWithEnv("testdata/run.yaml", "")
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.Scenario.Alpha)
	assert.False(t, cfg.Scenario.BetaLoop)
	assert.Equal(t, []int{3, 3, 3, 3, 3}, cfg.StepCounts())
	assert.Equal(t, 4, cfg.Seed.Nodes)
	assert.Zero(t, cfg.Seed.P)
	assert.Equal(t, int64(42), cfg.RNGSeed)
	assert.Equal(t, 3, cfg.Replicates)
	assert.Equal(t, "global", cfg.Uniqueness)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 1.0, cfg.Weights.Min)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(env, []byte("RPANET_REPLICATES=9\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("RPANET_REPLICATES") })

	cfg, err := config.LoadWithEnv("testdata/run.yaml", env)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Replicates)

	// a missing .env file is not an error
	_, err = config.LoadWithEnv("testdata/run.yaml", filepath.Join(dir, "absent.env"))
	require.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.LoadWithEnv("testdata/does-not-exist.yaml", "")
	assert.Error(t, err)

	t.Setenv("RPANET_REPLICATES", "many")
	_, err = config.LoadWithEnv("testdata/run.yaml", "")
	assert.Error(t, err)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"no seed", "steps: {count: 1, edgesPerStep: 1}", config.ErrNoSeed},
		{"unknown key", "seed: {nodes: 1}\nbogus: 1", nil},
		{"scenario sum", "seed: {nodes: 1}\nscenario: {alpha: 0.5, beta: 0.4, gamma: 0.2}", config.ErrInvalid},
		{"negative alpha", "seed: {nodes: 1}\nscenario: {alpha: -0.1}", config.ErrInvalid},
		{"bad uniqueness", "seed: {nodes: 1}\nuniqueness: sometimes", config.ErrInvalid},
		{"bad sampler", "seed: {nodes: 1}\nsampler: heap", config.ErrInvalid},
		{"topology too small", "seed: {topology: cycle, nodes: 2}", config.ErrInvalid},
		{"bad topology", "seed: {topology: torus, nodes: 5}", config.ErrInvalid},
		{"random p", "seed: {topology: random, nodes: 5, p: 1.5}", config.ErrInvalid},
		{"weight lengths", "seed: {outWeight: [1, 2], inWeight: [1]}", config.ErrInvalid},
		{"negative weight", "seed: {outWeight: [-1], inWeight: [1]}", config.ErrInvalid},
		{"edge out of range", "seed: {nodes: 2, edges: [{source: 0, target: 2, weight: 1}]}", config.ErrInvalid},
		{"group length", "seed: {nodes: 2, group: [0]}", config.ErrInvalid},
		{"matrix shape", "seed: {nodes: 1}\nreciprocity: {groupProb: [0.5, 0.5], matrix: [[1, 1]]}", config.ErrInvalid},
		{"group sum", "seed: {nodes: 1}\nreciprocity: {groupProb: [0.5, 0.2], matrix: [[1, 1], [1, 1]]}", config.ErrInvalid},
		{"matrix alone", "seed: {nodes: 1}\nreciprocity: {matrix: [[1]]}", config.ErrInvalid},
		{"matrix entry", "seed: {nodes: 1}\nreciprocity: {groupProb: [1], matrix: [[2]]}", config.ErrInvalid},
		{"preference arity", "seed: {nodes: 1}\npreference: {source: [1, 1]}", config.ErrInvalid},
		{"steps exclusive", "seed: {nodes: 1}\nsteps: {counts: [1], count: 2}", config.ErrInvalid},
		{"negative count", "seed: {nodes: 1}\nsteps: {counts: [1, -1]}", config.ErrInvalid},
		{"weights exclusive", "seed: {nodes: 1}\nweights: {list: [1], distribution: constant, value: 1}", config.ErrInvalid},
		{"exponential rate", "seed: {nodes: 1}\nweights: {distribution: exponential}", config.ErrInvalid},
		{"pareto", "seed: {nodes: 1}\nweights: {distribution: pareto, scale: 1}", config.ErrInvalid},
		{"uniform", "seed: {nodes: 1}\nweights: {distribution: uniform, min: 2, max: 1}", config.ErrInvalid},
		{"log format", "seed: {nodes: 1}\nlog: {format: xml}", config.ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestBuildSeed_Sources(t *testing.T) {
	t.Run("explicit strengths", func(t *testing.T) {
		cfg, err := config.Parse([]byte("seed: {outWeight: [2, 0], inWeight: [0, 2], group: [1, 0], edges: [{source: 0, target: 1, weight: 2}]}"))
		require.NoError(t, err)
		seed, err := cfg.BuildSeed()
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 0}, seed.OutWeight)
		assert.Equal(t, []int{1, 0}, seed.Group)
		assert.Equal(t, []rpanet.Edge{{Source: 0, Target: 1, Weight: 2}}, seed.Edges)
	})
	t.Run("edge list", func(t *testing.T) {
		cfg, err := config.Parse([]byte("seed: {nodes: 3, edges: [{source: 0, target: 1, weight: 1.5}, {source: 2, target: 1, weight: 1}]}"))
		require.NoError(t, err)
		seed, err := cfg.BuildSeed()
		require.NoError(t, err)
		assert.Equal(t, []float64{1.5, 0, 1}, seed.OutWeight)
		assert.Equal(t, []float64{0, 2.5, 0}, seed.InWeight)
		assert.Nil(t, seed.Group)
	})
	t.Run("isolated nodes", func(t *testing.T) {
		cfg, err := config.Parse([]byte("seed: {nodes: 2}"))
		require.NoError(t, err)
		seed, err := cfg.BuildSeed()
		require.NoError(t, err)
		assert.Equal(t, 2, seed.Len())
		assert.Empty(t, seed.Edges)
	})
	t.Run("star", func(t *testing.T) {
		cfg, err := config.Parse([]byte("seed: {topology: star, nodes: 4}"))
		require.NoError(t, err)
		seed, err := cfg.BuildSeed()
		require.NoError(t, err)
		assert.Equal(t, 4, seed.Len())
		assert.Len(t, seed.Edges, 6)
	})
	t.Run("random is reproducible", func(t *testing.T) {
		cfg, err := config.Parse([]byte("rngSeed: 3\nseed: {topology: random, nodes: 20, p: 0.2}"))
		require.NoError(t, err)
		a, err := cfg.BuildSeed()
		require.NoError(t, err)
		b, err := cfg.BuildSeed()
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
	t.Run("topology group mismatch", func(t *testing.T) {
		cfg, err := config.Parse([]byte("seed: {topology: path, nodes: 3, group: [0, 1]}"))
		require.NoError(t, err)
		_, err = cfg.BuildSeed()
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
}

func TestEngineOptions_Run(t *testing.T) {
	cfg, err := config.LoadWithEnv("testdata/run.yaml", "")
	require.NoError(t, err)
	seed, err := cfg.BuildSeed()
	require.NoError(t, err)

	run := func() *rpanet.Result {
		eng, err := rpanet.New(seed, cfg.EngineOptions(cfg.RNGSeed)...)
		require.NoError(t, err)
		res, err := eng.Run(cfg.StepCounts())
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	assert.Equal(t, a.Edges, b.Edges)
	for _, e := range a.Edges[a.SeedEdges:] {
		assert.True(t, e.Weight >= 1 && e.Weight < 3, "weight %v", e.Weight)
	}
	for _, g := range a.Group {
		assert.NotEqual(t, reciprocity.NoGroup, g)
	}
	for step := range a.Requested {
		assert.LessOrEqual(t, a.Realized[step], a.Requested[step])
	}
}

func TestEngineOptions_WeightList(t *testing.T) {
	cfg, err := config.Parse([]byte("seed: {nodes: 1}\nsteps: {counts: [2]}\nweights: {list: [4, 5]}"))
	require.NoError(t, err)
	seed, err := cfg.BuildSeed()
	require.NoError(t, err)
	eng, err := rpanet.New(seed, cfg.EngineOptions(1)...)
	require.NoError(t, err)
	res, err := eng.Run(cfg.StepCounts())
	require.NoError(t, err)
	require.Len(t, res.Edges, 2)
	assert.Equal(t, 4.0, res.Edges[0].Weight)
	assert.Equal(t, 5.0, res.Edges[1].Weight)
}

func TestWeightFn_Distributions(t *testing.T) {
	for _, d := range []string{
		"{distribution: constant, value: 2}",
		"{distribution: uniform, min: 1, max: 2}",
		"{distribution: normal, mean: 3, stddev: 1}",
		"{distribution: exponential, rate: 1}",
		"{distribution: lognormal, mu: 0, sigma: 1}",
		"{distribution: pareto, scale: 1, shape: 2}",
	} {
		cfg, err := config.Parse([]byte("seed: {nodes: 1}\nweights: " + d))
		require.NoError(t, err, d)
		fn, ok := cfg.WeightFn()
		assert.True(t, ok, d)
		assert.NotNil(t, fn, d)
	}
	cfg, err := config.Parse([]byte("seed: {nodes: 1}"))
	require.NoError(t, err)
	_, ok := cfg.WeightFn()
	assert.False(t, ok)
}
