package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/plus3/entree/ecs"
	"github.com/plus3/entree/ecs/cql"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The number of entities in the tree, excluding the root.")
	depth := flag.Int("depth", 6, "The maximum depth of the tree.")
	queryText := flag.String("query", `HAS(Position, Velocity) & !VALUE(Team.name == "red")`, "The criteria expression evaluated every tick.")
	seed := flag.Uint64("seed", 1, "Seed for the random tree.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

	if err := run(logger, *duration, *entityCount, *depth, *queryText, *seed, *gcPauseMetrics); err != nil {
		logger.Fatal().Err(err).Msg("stress test failed")
	}
}

func run(logger zerolog.Logger, duration time.Duration, entityCount, depth int, queryText string, seed uint64, gcPauseMetrics bool) error {
	logger.Info().Msg("Starting ECS stress test...")

	registry := newRegistry()
	criterion, err := cql.Parse(queryText, registry)
	if err != nil {
		return err
	}

	logger.Info().Int("entities", entityCount).Int("depth", depth).Msg("Building tree...")
	root, err := buildRandomTree(rand.New(rand.NewPCG(seed, seed)), entityCount, depth)
	if err != nil {
		return err
	}
	logger.Info().Msg("Build complete.")

	query := ecs.NewQuery(root, ecs.WithLogger(logger))
	scheduler := ecs.NewScheduler(query, ecs.WithSchedulerLogger(logger))
	scheduler.Register(&MovementSystem{})
	querySystem := &QuerySystem{Criterion: criterion}
	scheduler.Register(querySystem)

	report := &Report{
		Duration:       duration,
		Entities:       entityCount,
		Depth:          depth,
		Query:          queryText,
		Tree:           ecs.CollectStats(root),
		GCPauseMetrics: gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
	report.Kinds = kindSummary(registry, report.Tree)

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", duration).Msg("Running simulation...")
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			if err := scheduler.Once(deltaTime.Seconds()); err != nil {
				return err
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.Matches = querySystem.Matches
	report.Systems = scheduler.GetStats().Systems
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info().Msg("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return eris.Wrap(err, "generate report")
	}
	fmt.Println("--- End of Report ---")

	logger.Info().Msg("Stress test complete.")
	return nil
}

func kindSummary(registry *ecs.ComponentRegistry, stats *ecs.TreeStats) []KindCount {
	out := make([]KindCount, len(stats.Kinds))
	for i, kind := range stats.Kinds {
		out[i] = KindCount{Name: ecs.KindName(registry, kind), Count: stats.KindCounts[kind]}
	}
	return out
}
