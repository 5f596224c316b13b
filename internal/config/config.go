// Package config loads the GA's tunable parameters from the environment (with .env support),
// grounded in noah-isme's pkg/config viper+godotenv setup.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/luccasniccolas177/uctp-scheduler/internal/apperrors"
)

// GAConfig holds every tunable the scheduler reads at startup: GA parameters, constraint/repair
// toggles, and the soft-constraint shaping knobs (preferred hours, midday break, clustering).
type GAConfig struct {
	PopSize     int
	Generations int
	CxProb      float64
	MutIndiv    float64
	MutGene     float64
	Seed        int64

	MaxRepairIterations int

	// Parallelism selects the fitness-evaluation strategy: "sequential" or "worker_pool".
	Parallelism string
	Workers     int

	ConstraintToggles map[string]bool
	RepairToggles     map[string]bool

	PreferredStartHHMM string
	PreferredEndHHMM   string

	MiddayBreakStartHHMM string
	MiddayBreakEndHHMM   string

	CourseSplitTargetDays int

	ClusteringBlockMin      int
	ClusteringBlockMax      int
	IsolatedPenalty         float64
	OversizePenaltyPerQuant float64
}

// Load reads GAConfig from the environment, falling back to .env via godotenv and to the
// documented defaults for anything unset. Invalid values (probabilities outside [0,1], non-
// positive sizes) are rejected with apperrors.InvalidInput.
func Load() (*GAConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(apperrors.InvalidInput, "reading config file", err)
		}
	}

	cfg := &GAConfig{
		PopSize:             v.GetInt("GA_POP_SIZE"),
		Generations:         v.GetInt("GA_GENERATIONS"),
		CxProb:              v.GetFloat64("GA_CX_PROB"),
		MutIndiv:            v.GetFloat64("GA_MUT_INDIV"),
		MutGene:             v.GetFloat64("GA_MUT_GENE"),
		Seed:                v.GetInt64("GA_SEED"),
		MaxRepairIterations: v.GetInt("GA_MAX_REPAIR_ITERATIONS"),
		Parallelism:         v.GetString("GA_PARALLELISM"),
		Workers:             v.GetInt("GA_WORKERS"),

		ConstraintToggles: parseToggleMap(v.GetString("GA_CONSTRAINT_TOGGLES")),
		RepairToggles:     parseToggleMap(v.GetString("GA_REPAIR_TOGGLES")),

		PreferredStartHHMM: v.GetString("GA_PREFERRED_START"),
		PreferredEndHHMM:   v.GetString("GA_PREFERRED_END"),

		MiddayBreakStartHHMM: v.GetString("GA_MIDDAY_BREAK_START"),
		MiddayBreakEndHHMM:   v.GetString("GA_MIDDAY_BREAK_END"),

		CourseSplitTargetDays: v.GetInt("GA_COURSE_SPLIT_TARGET_DAYS"),

		ClusteringBlockMin:      v.GetInt("GA_CLUSTER_BLOCK_MIN"),
		ClusteringBlockMax:      v.GetInt("GA_CLUSTER_BLOCK_MAX"),
		IsolatedPenalty:         v.GetFloat64("GA_ISOLATED_PENALTY"),
		OversizePenaltyPerQuant: v.GetFloat64("GA_OVERSIZE_PENALTY"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *GAConfig) validate() error {
	if c.PopSize <= 0 {
		return apperrors.Invalid("GA_POP_SIZE must be positive, got %d", c.PopSize)
	}
	if c.Generations <= 0 {
		return apperrors.Invalid("GA_GENERATIONS must be positive, got %d", c.Generations)
	}
	for name, p := range map[string]float64{"GA_CX_PROB": c.CxProb, "GA_MUT_INDIV": c.MutIndiv, "GA_MUT_GENE": c.MutGene} {
		if p < 0 || p > 1 {
			return apperrors.Invalid("%s must be in [0,1], got %v", name, p)
		}
	}
	if c.ClusteringBlockMin <= 0 || c.ClusteringBlockMax < c.ClusteringBlockMin {
		return apperrors.Invalid("GA_CLUSTER_BLOCK_MIN/MAX misconfigured: min=%d max=%d", c.ClusteringBlockMin, c.ClusteringBlockMax)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GA_POP_SIZE", 80)
	v.SetDefault("GA_GENERATIONS", 200)
	v.SetDefault("GA_CX_PROB", 0.8)
	v.SetDefault("GA_MUT_INDIV", 0.3)
	v.SetDefault("GA_MUT_GENE", 0.15)
	v.SetDefault("GA_SEED", 42)
	v.SetDefault("GA_MAX_REPAIR_ITERATIONS", 5)
	v.SetDefault("GA_PARALLELISM", "worker_pool")
	v.SetDefault("GA_WORKERS", 4)
	v.SetDefault("GA_CONSTRAINT_TOGGLES", "")
	v.SetDefault("GA_REPAIR_TOGGLES", "")
	v.SetDefault("GA_PREFERRED_START", "08:00")
	v.SetDefault("GA_PREFERRED_END", "18:00")
	v.SetDefault("GA_MIDDAY_BREAK_START", "13:00")
	v.SetDefault("GA_MIDDAY_BREAK_END", "14:00")
	v.SetDefault("GA_COURSE_SPLIT_TARGET_DAYS", 2)
	v.SetDefault("GA_CLUSTER_BLOCK_MIN", 2)
	v.SetDefault("GA_CLUSTER_BLOCK_MAX", 3)
	v.SetDefault("GA_ISOLATED_PENALTY", 5.0)
	v.SetDefault("GA_OVERSIZE_PENALTY", 2.0)
}

// parseToggleMap parses a "name=true,other=false" list into a map; entries absent from the map
// are left to each registry's own default (enabled for every entry except the hard
// availability_violation check, which is off unless toggled on).
func parseToggleMap(raw string) map[string]bool {
	out := map[string]bool{}
	if raw == "" {
		return out
	}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1]) == "true"
	}
	return out
}
