package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rpanet/bfs"
	"github.com/katalvlaran/rpanet/config"
	"github.com/katalvlaran/rpanet/metrics"
	"github.com/katalvlaran/rpanet/rpanet"
)

type generateOptions struct {
	seed        int64
	replicates  int
	parallel    int
	edgesDir    string
	metricsFile string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Grow one or more network replicates and print a YAML summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.RNGSeed = opts.seed
			}
			if flags.Changed("replicates") {
				cfg.Replicates = opts.replicates
			}
			if flags.Changed("parallel") {
				cfg.Parallel = opts.parallel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			reg := metrics.NewRegistry()
			logger, err := root.logger(cfg, cmd.ErrOrStderr(), reg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			report, err := generate(cmd.Context(), cfg, opts.edgesDir, logger, reg)
			if err != nil {
				return err
			}
			if opts.metricsFile != "" {
				if err := reg.WriteTextfile(opts.metricsFile); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			return writeReport(cmd.OutOrStdout(), report)
		},
	}
	f := cmd.Flags()
	f.Int64Var(&opts.seed, "seed", 0, "RNG seed of the first replicate; replicate i uses seed+i")
	f.IntVarP(&opts.replicates, "replicates", "n", 1, "number of independent replicates")
	f.IntVarP(&opts.parallel, "parallel", "p", 0, "maximum concurrent replicates (0 = GOMAXPROCS)")
	f.StringVar(&opts.edgesDir, "edges-dir", "", "write one tab-separated edge list per replicate into this directory")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
	return cmd
}

// Report is the YAML document printed by generate.
type Report struct {
	Steps      int       `yaml:"steps"`
	SeedNodes  int       `yaml:"seedNodes"`
	Replicates []Summary `yaml:"replicates"`
}

// Summary describes one replicate.
type Summary struct {
	RunID       string              `yaml:"runId"`
	Replicate   int                 `yaml:"replicate"`
	RNGSeed     int64               `yaml:"rngSeed"`
	Nodes       int                 `yaml:"nodes"`
	Edges       int                 `yaml:"edges"`
	Components  int                 `yaml:"components"`
	Requested   []int               `yaml:"requested,flow"`
	Realized    []int               `yaml:"realized,flow"`
	Reciprocal  []int               `yaml:"reciprocal,flow"`
	Exhaustions []ExhaustionSummary `yaml:"exhaustions,omitempty"`
	EdgeFile    string              `yaml:"edgeFile,omitempty"`
}

// ExhaustionSummary is the YAML form of rpanet.Exhaustion.
type ExhaustionSummary struct {
	Step      int    `yaml:"step"`
	Requested int    `yaml:"requested"`
	Placed    int    `yaml:"placed"`
	Scenario  int    `yaml:"scenario"`
	Role      string `yaml:"role"`
	Reason    string `yaml:"reason"`
}

// generate runs every replicate with at most cfg.Parallel in flight.
// Summaries keep replicate order regardless of completion order.
func generate(ctx context.Context, cfg config.Config, edgesDir string, logger *zap.Logger, reg *metrics.Registry) (*Report, error) {
	seed, err := cfg.BuildSeed()
	if err != nil {
		return nil, err
	}
	steps := cfg.StepCounts()
	if edgesDir != "" {
		if err := os.MkdirAll(edgesDir, 0o755); err != nil {
			return nil, fmt.Errorf("create edges dir: %w", err)
		}
	}

	n := cfg.ReplicateCount()
	limit := cfg.Parallel
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	logger.Info("generating",
		zap.Int("replicates", n),
		zap.Int("parallel", limit),
		zap.Int("steps", len(steps)),
		zap.Int("seed_nodes", seed.Len()))

	summaries := make([]Summary, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := replicate(cfg, seed, steps, i, edgesDir, logger, reg)
			if err != nil {
				return fmt.Errorf("replicate %d: %w", i, err)
			}
			summaries[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Report{Steps: len(steps), SeedNodes: seed.Len(), Replicates: summaries}, nil
}

func replicate(cfg config.Config, seed rpanet.Seed, steps []int, i int, edgesDir string, logger *zap.Logger, reg *metrics.Registry) (Summary, error) {
	runID := uuid.New().String()
	rngSeed := cfg.RNGSeed + int64(i)
	log := logger.With(zap.String("run_id", runID), zap.Int("replicate", i))

	start := time.Now()
	opts := append(cfg.EngineOptions(rngSeed), rpanet.WithLogger(log), rpanet.WithMetrics(reg))
	eng, err := rpanet.New(seed, opts...)
	if err != nil {
		return Summary{}, err
	}
	res, err := eng.Run(steps)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		RunID:      runID,
		Replicate:  i,
		RNGSeed:    rngSeed,
		Nodes:      res.NodeCount(),
		Edges:      res.EdgeCount(),
		Requested:  res.Requested,
		Realized:   res.Realized,
		Reciprocal: res.Reciprocal,
	}
	if s.Components, err = components(res); err != nil {
		return Summary{}, err
	}
	for _, x := range res.Exhaustions {
		s.Exhaustions = append(s.Exhaustions, ExhaustionSummary{
			Step:      x.Step,
			Requested: x.Requested,
			Placed:    x.Placed,
			Scenario:  int(x.Scenario),
			Role:      x.Role.String(),
			Reason:    x.Reason,
		})
	}
	if edgesDir != "" {
		s.EdgeFile = filepath.Join(edgesDir, fmt.Sprintf("edges-%03d.tsv", i))
		if err := writeEdgeFile(s.EdgeFile, res); err != nil {
			return Summary{}, err
		}
	}

	log.Info("replicate finished",
		zap.Int64("rng_seed", rngSeed),
		zap.Int("nodes", s.Nodes),
		zap.Int("edges", s.Edges),
		zap.Int("components", s.Components),
		zap.Int("exhaustions", len(s.Exhaustions)),
		zap.Duration("elapsed", time.Since(start)))
	return s, nil
}

// components counts the weakly connected components of the grown network.
func components(res *rpanet.Result) (int, error) {
	g, err := res.Graph()
	if err != nil {
		return 0, fmt.Errorf("export graph: %w", err)
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return 0, err
	}
	return len(comps), nil
}

func writeReport(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
