// Command ecs-stress fills a Manager with generated components and systems,
// churns entities for a fixed duration and prints a timing report.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plus3/ecsman/ecs"
	"github.com/plus3/ecsman/internal/config"
	"github.com/plus3/ecsman/internal/logging"
)

// RootOptions holds the command line flags. Flags that are set override the
// values read from the config file.
type RootOptions struct {
	ConfigPath     string
	Duration       time.Duration
	Entities       int
	Profile        string
	GCPauseMetrics bool
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand creates the ecs-stress command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "ecs-stress",
		Short:        "Stress test the ECS Manager",
		Long:         "Registers generated systems, spawns entities with random components, churns them every tick and reports update timings.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("duration") {
				cfg.Loop.Duration = opts.Duration
			}
			if flags.Changed("entities") {
				cfg.Stress.Entities = opts.Entities
			}
			if flags.Changed("profile") {
				cfg.Stress.Profile = opts.Profile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return run(ctx, cfg, opts.GCPauseMetrics, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().DurationVar(&opts.Duration, "duration", 0, "total run time, 0 runs until interrupted")
	cmd.Flags().IntVar(&opts.Entities, "entities", 0, "initial number of entities")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "write a cpu or mem profile to the working directory")
	cmd.Flags().BoolVar(&opts.GCPauseMetrics, "gc-pause-metrics", false, "include GC pause metrics in the report")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, gcPauseMetrics bool, out io.Writer) error {
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return eris.Wrap(err, "build logger")
	}
	defer log.Sync()

	switch cfg.Stress.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	report := &Report{
		RunId:               uuid.Must(uuid.NewV7()).String(),
		Duration:            cfg.Loop.Duration,
		Entities:            cfg.Stress.Entities,
		ComponentsPerEntity: cfg.Stress.ComponentsPerEntity,
		ComponentTypes:      componentCount,
		Systems:             cfg.Stress.Systems,
		Churn:               cfg.Stress.Churn,
		Seed:                cfg.Stress.Seed,
		GCPauseMetrics:      gcPauseMetrics,
	}
	log = log.With(zap.String("run", report.RunId))

	m := ecs.NewManager(ecs.WithLogger(log))
	m.Init()
	defer m.Destroy()

	if err := RegisterAllGeneratedSystems(m, cfg.Stress.Systems); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Stress.Seed))
	log.Info("populating", zap.Int("entities", cfg.Stress.Entities))
	for i := 0; i < cfg.Stress.Entities; i++ {
		if _, err := SpawnRandomEntity(m, rng, cfg.Stress.ComponentsPerEntity); err != nil {
			return eris.Wrap(err, "populate")
		}
	}

	c := &churner{rng: rng, rate: cfg.Stress.Churn, perEntity: cfg.Stress.ComponentsPerEntity}
	delta := float32(cfg.Loop.TickRate.Seconds())

	if cfg.Loop.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Loop.Duration)
		defer cancel()
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	log.Info("running", zap.Duration("duration", cfg.Loop.Duration), zap.Duration("tick", cfg.Loop.TickRate))

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			if err := c.Tick(m); err != nil {
				return eris.Wrap(err, "churn")
			}
			if err := m.Update(delta); err != nil {
				return eris.Wrap(err, "update")
			}
			report.UpdateTime.Add(time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Spawned = c.spawned
	report.Despawned = c.despawned
	report.Final = m.Stats()
	report.TotalUpdates = report.Final.TotalUpdates
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("finished", zap.Int64("updates", report.TotalUpdates), zap.Duration("elapsed", report.TotalTime))

	fmt.Fprintln(out, "\n--- Stress Test Report ---")
	if err := report.Generate(out); err != nil {
		return eris.Wrap(err, "generate report")
	}
	fmt.Fprintln(out, "--- End of Report ---")
	return nil
}
