// Package config loads run configurations for the rpanet generator: a YAML
// file, RPANET_* environment overrides (optionally from a .env file) and
// validation, then converts them into a seed network, per-step edge counts
// and engine options.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")
	// ErrNoSeed indicates that none of the seed sources is configured.
	ErrNoSeed = errors.New("config: no seed network configured")
)

// validate is a singleton validator instance
var validate = validator.New()

// Seed topologies built through the builder package.
const (
	TopologyCycle    = "cycle"
	TopologyPath     = "path"
	TopologyStar     = "star"
	TopologyComplete = "complete"
	TopologyRandom   = "random"
)

// Weight distributions.
const (
	DistConstant    = "constant"
	DistUniform     = "uniform"
	DistNormal      = "normal"
	DistExponential = "exponential"
	DistLogNormal   = "lognormal"
	DistPareto      = "pareto"
)

// Config is a complete run configuration. Field tags drive YAML decoding,
// envconfig overrides and validation. Environment keys are always prefixed:
// RPANET_ plus the upper-cased field path, with split_words fields joined by
// underscores (RPANET_STEPS_EDGES_PER_STEP, RPANET_WEIGHTS_STDDEV).
type Config struct {
	// RNGSeed seeds the first replicate; replicate i uses RNGSeed+i.
	RNGSeed int64 `yaml:"rngSeed" split_words:"true"`
	// Replicates is the number of independent runs (0 means 1).
	Replicates int `yaml:"replicates" validate:"gte=0"`
	// Parallel bounds concurrently running replicates (0 means GOMAXPROCS).
	Parallel int `yaml:"parallel" validate:"gte=0"`

	Seed        SeedConfig        `yaml:"seed"`
	Steps       StepsConfig       `yaml:"steps"`
	Scenario    ScenarioConfig    `yaml:"scenario"`
	Reciprocity ReciprocityConfig `yaml:"reciprocity"`
	Preference  PreferenceConfig  `yaml:"preference" ignored:"true"`
	Weights     WeightConfig      `yaml:"weights"`
	Log         LogConfig         `yaml:"log"`

	// Uniqueness is one of none, global, source, target, both.
	Uniqueness string `yaml:"uniqueness" validate:"omitempty,oneof=none global source target both"`
	// Sampler is tree (default) or linear.
	Sampler string `yaml:"sampler" validate:"omitempty,oneof=tree linear"`
	// Presort orders the linear sampler's seed nodes by descending preference.
	Presort bool `yaml:"presort"`
}

// SeedConfig selects the seed network. Exactly one source is used, in this
// order: Topology, explicit OutWeight/InWeight, Edges.
type SeedConfig struct {
	Topology string `yaml:"topology" validate:"omitempty,oneof=cycle path star complete random"`
	// Nodes sizes a topology or an edge-list seed.
	Nodes int `yaml:"nodes" validate:"gte=0"`
	// P is the edge probability of the random topology.
	P float64 `yaml:"p" validate:"gte=0,lte=1"`

	OutWeight []float64    `yaml:"outWeight" ignored:"true" validate:"dive,gte=0"`
	InWeight  []float64    `yaml:"inWeight" ignored:"true" validate:"dive,gte=0"`
	Group     []int        `yaml:"group" ignored:"true" validate:"dive,gte=-1"`
	Edges     []EdgeConfig `yaml:"edges" ignored:"true" validate:"dive"`
}

// EdgeConfig is one seed edge.
type EdgeConfig struct {
	Source int     `yaml:"source" validate:"gte=0"`
	Target int     `yaml:"target" validate:"gte=0"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

// StepsConfig gives per-step primary edge counts: Counts verbatim, or Count
// steps of EdgesPerStep edges each.
type StepsConfig struct {
	Counts       []int `yaml:"counts" validate:"dive,gte=0"`
	Count        int   `yaml:"count" validate:"gte=0"`
	EdgesPerStep int   `yaml:"edgesPerStep" split_words:"true" validate:"gte=0"`
}

// ScenarioConfig holds the scenario probabilities and scenario-2 switches.
type ScenarioConfig struct {
	Alpha    float64 `yaml:"alpha" validate:"gte=0,lte=1"`
	Beta     float64 `yaml:"beta" validate:"gte=0,lte=1"`
	Gamma    float64 `yaml:"gamma" validate:"gte=0,lte=1"`
	Xi       float64 `yaml:"xi" validate:"gte=0,lte=1"`
	BetaLoop bool    `yaml:"betaLoop" split_words:"true"`
	// TargetFirst draws the target before the source in scenario 2.
	TargetFirst bool `yaml:"targetFirst" split_words:"true"`
}

// ReciprocityConfig enables reciprocal edges when GroupProb is non-empty.
type ReciprocityConfig struct {
	GroupProb []float64   `yaml:"groupProb" ignored:"true" validate:"dive,gte=0,lte=1"`
	Matrix    [][]float64 `yaml:"matrix" ignored:"true" validate:"dive,dive,gte=0,lte=1"`
	SelfLoop  bool        `yaml:"selfLoop" split_words:"true"`
}

// PreferenceConfig overrides the parametric preference of either role with
// the five coefficients of p0*out^p1 + p2*in^p3 + p4.
type PreferenceConfig struct {
	Source []float64 `yaml:"source" validate:"omitempty,len=5"`
	Target []float64 `yaml:"target" validate:"omitempty,len=5"`
}

// WeightConfig selects edge weights: an explicit List, or a Distribution.
// Without either every edge weighs 1.
type WeightConfig struct {
	List         []float64 `yaml:"list" ignored:"true" validate:"dive,gte=0"`
	Distribution string    `yaml:"distribution" validate:"omitempty,oneof=constant uniform normal exponential lognormal pareto"`

	Value  float64 `yaml:"value"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Rate   float64 `yaml:"rate"`
	Mu     float64 `yaml:"mu"`
	Sigma  float64 `yaml:"sigma"`
	Scale  float64 `yaml:"scale"`
	Shape  float64 `yaml:"shape"`
}

// LogConfig mirrors logging.Config; read from RPANET_LOG_LEVEL and
// RPANET_LOG_FORMAT.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=json console text"`
}

// Default returns an empty configuration: no seed, no steps, scenario 5 only.
func Default() Config {
	return Config{Replicates: 1}
}

// Validate runs struct-tag validation and the cross-field checks.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, formatValidationError(err))
	}

	s := c.Scenario
	if sum := s.Alpha + s.Beta + s.Gamma + s.Xi; sum > 1+1e-9 {
		return fmt.Errorf("%w: scenario: alpha+beta+gamma+xi = %g > 1", ErrInvalid, sum)
	}
	if err := c.Seed.check(); err != nil {
		return err
	}
	if err := c.Reciprocity.check(); err != nil {
		return err
	}
	if err := c.Weights.check(); err != nil {
		return err
	}
	if len(c.Steps.Counts) > 0 && c.Steps.Count > 0 {
		return fmt.Errorf("%w: steps: counts and count are exclusive", ErrInvalid)
	}
	return nil
}

func (s SeedConfig) check() error {
	switch {
	case s.Topology != "":
		minNodes := map[string]int{
			TopologyCycle: 3, TopologyPath: 2, TopologyStar: 2, TopologyComplete: 1, TopologyRandom: 1,
		}[s.Topology]
		if s.Nodes < minNodes {
			return fmt.Errorf("%w: seed: %s needs nodes ≥ %d, got %d", ErrInvalid, s.Topology, minNodes, s.Nodes)
		}
	case len(s.OutWeight) > 0 || len(s.InWeight) > 0:
		if len(s.OutWeight) != len(s.InWeight) {
			return fmt.Errorf("%w: seed: %d out-weights, %d in-weights", ErrInvalid, len(s.OutWeight), len(s.InWeight))
		}
		if len(s.Group) > 0 && len(s.Group) != len(s.OutWeight) {
			return fmt.Errorf("%w: seed: %d groups for %d nodes", ErrInvalid, len(s.Group), len(s.OutWeight))
		}
	case len(s.Edges) > 0 || s.Nodes > 0:
		if s.Nodes < 1 {
			return fmt.Errorf("%w: seed: edge list needs nodes ≥ 1", ErrInvalid)
		}
		for i, e := range s.Edges {
			if e.Source >= s.Nodes || e.Target >= s.Nodes {
				return fmt.Errorf("%w: seed: edge %d (%d→%d) outside [0,%d)", ErrInvalid, i, e.Source, e.Target, s.Nodes)
			}
		}
		if len(s.Group) > 0 && len(s.Group) != s.Nodes {
			return fmt.Errorf("%w: seed: %d groups for %d nodes", ErrInvalid, len(s.Group), s.Nodes)
		}
	default:
		return ErrNoSeed
	}
	return nil
}

func (r ReciprocityConfig) check() error {
	k := len(r.GroupProb)
	if k == 0 {
		if len(r.Matrix) > 0 {
			return fmt.Errorf("%w: reciprocity: matrix without groupProb", ErrInvalid)
		}
		return nil
	}
	var sum float64
	for _, p := range r.GroupProb {
		sum += p
	}
	if math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("%w: reciprocity: groupProb sums to %g", ErrInvalid, sum)
	}
	if len(r.Matrix) != k {
		return fmt.Errorf("%w: reciprocity: %d matrix rows for %d groups", ErrInvalid, len(r.Matrix), k)
	}
	for i, row := range r.Matrix {
		if len(row) != k {
			return fmt.Errorf("%w: reciprocity: row %d has %d columns, want %d", ErrInvalid, i, len(row), k)
		}
	}
	return nil
}

func (w WeightConfig) check() error {
	if len(w.List) > 0 && w.Distribution != "" {
		return fmt.Errorf("%w: weights: list and distribution are exclusive", ErrInvalid)
	}
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: weights: %s: %s", ErrInvalid, w.Distribution, fmt.Sprintf(format, args...))
	}
	switch w.Distribution {
	case DistConstant:
		if w.Value < 0 {
			return bad("value %g < 0", w.Value)
		}
	case DistUniform:
		if w.Min < 0 || w.Max < w.Min {
			return bad("need 0 ≤ min ≤ max, got [%g,%g]", w.Min, w.Max)
		}
	case DistNormal:
		if w.StdDev < 0 {
			return bad("stddev %g < 0", w.StdDev)
		}
	case DistExponential:
		if w.Rate <= 0 {
			return bad("rate %g ≤ 0", w.Rate)
		}
	case DistLogNormal:
		if w.Sigma < 0 {
			return bad("sigma %g < 0", w.Sigma)
		}
	case DistPareto:
		if w.Scale <= 0 || w.Shape <= 0 {
			return bad("need scale > 0 and shape > 0, got %g, %g", w.Scale, w.Shape)
		}
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	// Report the first failure only
	e := validationErrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "gte":
		return fmt.Errorf("%s: must be at least %s", field, e.Param())
	case "lte":
		return fmt.Errorf("%s: must not exceed %s", field, e.Param())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s], got %v", field, e.Param(), e.Value())
	case "len":
		return fmt.Errorf("%s: must have %s elements", field, e.Param())
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}
