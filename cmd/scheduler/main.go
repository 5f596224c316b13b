// Command scheduler runs the full evolutionary timetabling pipeline end-to-end: load the
// university's input files, seed an initial population, evolve it under NSGA-II until a
// feasible-or-best terminal individual is reached, and export the result as JSON and a
// calendar PDF. Structured as a sequence of numbered stages, mirroring the teacher's
// cmd/api/main.go staged orchestration.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/luccasniccolas177/uctp-scheduler/internal/apperrors"
	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/config"
	"github.com/luccasniccolas177/uctp-scheduler/internal/constraints"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/exporter"
	"github.com/luccasniccolas177/uctp-scheduler/internal/fitness"
	"github.com/luccasniccolas177/uctp-scheduler/internal/ga"
	"github.com/luccasniccolas177/uctp-scheduler/internal/loader"
	"github.com/luccasniccolas177/uctp-scheduler/internal/logging"
	"github.com/luccasniccolas177/uctp-scheduler/internal/pairgen"
	"github.com/luccasniccolas177/uctp-scheduler/internal/repair"
	"github.com/luccasniccolas177/uctp-scheduler/internal/seeder"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("scheduler run failed: %v", err)
	}
}

func run() error {
	runID := uuid.New().String()

	logger, err := logging.New(logging.OptionsFromEnv())
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()
	logger = logger.Named("scheduler")

	inputDir := envOrDefault("UCTP_INPUT_DIR", "data/input")
	outputDir := envOrDefault("UCTP_OUTPUT_DIR", "data/output")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	logger.Info("run_started", zap.String("run_id", runID))

	// [STAGE 1] Load GA tunables.
	fmt.Println("[stage 1] loading GA configuration...")
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// [STAGE 2] Load and validate the university's input files.
	fmt.Println("[stage 2] loading university input data...")
	scheduleCfg, err := loader.LoadScheduleConfig(filepath.Join(inputDir, "schedule_config.json"))
	if err != nil {
		return fmt.Errorf("loading schedule config: %w", err)
	}
	courseDTOs, err := loader.LoadCourses(filepath.Join(inputDir, "courses.json"))
	if err != nil {
		return fmt.Errorf("loading courses: %w", err)
	}
	groupDTOs, err := loader.LoadGroups(filepath.Join(inputDir, "groups.json"))
	if err != nil {
		return fmt.Errorf("loading groups: %w", err)
	}
	instructorDTOs, err := loader.LoadInstructors(filepath.Join(inputDir, "instructors.json"))
	if err != nil {
		return fmt.Errorf("loading instructors: %w", err)
	}
	roomDTOs, err := loader.LoadRooms(filepath.Join(inputDir, "rooms.csv"))
	if err != nil {
		return fmt.Errorf("loading rooms: %w", err)
	}

	// [STAGE 3] Build the quantum time system and domain graph.
	fmt.Println("[stage 3] building time system and domain context...")
	timeSystem, err := loader.BuildTimeSystem(scheduleCfg)
	if err != nil {
		return fmt.Errorf("building time system: %w", err)
	}
	schedCtx, err := loader.BuildContext(timeSystem, courseDTOs, groupDTOs, instructorDTOs, roomDTOs)
	if err != nil {
		return fmt.Errorf("building domain context: %w", err)
	}

	// [STAGE 4] Enumerate the canonical (course, group) work items and seed an initial
	// population from them.
	fmt.Println("[stage 4] generating pairs and seeding initial population...")
	pairs := pairgen.Generate(schedCtx)
	if len(pairs) == 0 {
		return apperrors.Invalid("no schedulable (course, group) pairs were generated from the input data")
	}
	expected := make(map[entities.PairKey]int, len(pairs))
	pairsByKey := make(map[entities.PairKey]pairgen.Pair, len(pairs))
	for _, p := range pairs {
		k := entities.PairKey{Course: p.CourseKey, Group: p.GroupIDs[0]}
		expected[k] = p.RequiredQuanta
		pairsByKey[k] = p
	}
	population := seeder.SeedPopulation(cfg.PopSize, pairs, schedCtx, cfg.Seed)

	// [STAGE 5] Wire the constraint registries, repair pipeline and evaluator.
	fmt.Println("[stage 5] wiring constraints and repair pipeline...")
	shaping := constraints.NewShapingParams(cfg)
	evaluator := &fitness.Evaluator{
		Hard: constraints.DefaultHardRegistry(cfg.ConstraintToggles, expected),
		Soft: constraints.DefaultSoftRegistry(cfg.ConstraintToggles, shaping),
	}
	pipeline := repair.DefaultPipeline(cfg.RepairToggles, cfg.MaxRepairIterations, expected, pairsByKey)

	metrics := exporter.NewMetrics()
	scheduler := ga.NewScheduler(cfg, schedCtx, evaluator, pipeline)

	// [STAGE 6] Run the NSGA-II generation loop until a feasible individual appears or the
	// generation budget is exhausted.
	fmt.Println("[stage 6] running evolutionary search...")
	earlyStop := func(best *chromosome.Individual) bool { return best.Fitness.Hard == 0 }

	finalPopulation, history, err := scheduler.Run(context.Background(), population, earlyStop)
	if err != nil {
		return fmt.Errorf("running evolutionary search: %w", err)
	}

	for _, m := range history {
		fixes := sumFixes(m.RepairFixes)
		logging.Generation(logger, m.Generation, m.BestHard, m.BestSoft, m.Diversity, fixes)
		metrics.Observe(m.Generation, m.BestHard, m.BestSoft, m.Diversity, fixes)
	}

	// [STAGE 7] Pick the terminal individual and export it.
	fmt.Println("[stage 7] selecting terminal individual and exporting results...")
	best := ga.SelectTerminal(finalPopulation)
	if best == nil {
		return apperrors.Invariant("evolutionary search produced an empty population")
	}
	breakdown := evaluator.Explain(best, schedCtx)

	jsonPath := filepath.Join(outputDir, fmt.Sprintf("schedule-%s.json", runID))
	if err := exporter.WriteScheduleJSON(best, schedCtx, breakdown, jsonPath); err != nil {
		return fmt.Errorf("writing schedule JSON: %w", err)
	}
	pdfPath := filepath.Join(outputDir, fmt.Sprintf("calendar-%s.pdf", runID))
	if err := exporter.WriteCalendarPDF(best, schedCtx, pdfPath); err != nil {
		return fmt.Errorf("writing calendar PDF: %w", err)
	}

	logger.Info("run_completed",
		zap.String("run_id", runID),
		zap.String("schedule_path", jsonPath),
		zap.String("calendar_path", pdfPath),
		zap.Int("best_hard", best.Fitness.Hard),
		zap.Float64("best_soft", best.Fitness.Soft),
	)
	fmt.Printf("done: hard=%d soft=%.2f schedule=%s calendar=%s\n", best.Fitness.Hard, best.Fitness.Soft, jsonPath, pdfPath)
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func sumFixes(fixCounts map[string]int) int {
	total := 0
	for _, n := range fixCounts {
		total += n
	}
	return total
}
