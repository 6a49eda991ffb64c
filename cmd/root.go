// cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/celeritas-go/transport"
	"github.com/celeritas-go/transport/physics"
	"github.com/celeritas-go/transport/selector"
	"github.com/celeritas-go/transport/track"
)

var (
	scenarioPath string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "celeritas",
	Short: "Monte Carlo particle-transport core driver",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the physics registry from a scenario file and step a track-slot pool",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := DefaultScenarioConfig()
		if scenarioPath != "" {
			cfg, err = loadScenarioConfig(scenarioPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
		}

		logrus.WithFields(logrus.Fields{
			"pool_size": cfg.PoolSize,
			"steps":     cfg.Steps,
			"seed":      cfg.Seed,
		}).Info("starting transport run")

		if err := runScenario(cfg); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("transport run complete")
	},
}

// runScenario builds a minimal one-process registry from the scenario's
// physics options and advances every slot in the pool through the pre-step
// initializer for the configured number of steps, reporting summary step
// statistics. Geometry, material, and particle-kinematics views are
// external collaborators (§6) outside this demo's scope; the macro cross
// section is held fixed so the pipeline can run without them.
func runScenario(cfg ScenarioConfig) error {
	if err := cfg.Physics.Validate(); err != nil {
		return fmt.Errorf("cmd: invalid physics options: %w", err)
	}

	demoParticle := transport.NewParticleId(0)
	demoProcess := transport.NewProcessId(0)
	demoModel := transport.NewModelId(0)
	discreteAction := transport.NewActionId(1)

	models, err := physics.NewModelGroup([]float64{0, 1e7}, []transport.ModelId{demoModel})
	if err != nil {
		return err
	}
	group, err := physics.NewProcessGroup([]physics.Process{
		{ID: demoProcess, Models: models},
	}, nil, nil, nil)
	if err != nil {
		return err
	}

	registry, err := physics.NewRegistry(
		cfg.Physics,
		map[transport.ParticleId]physics.ProcessGroup{demoParticle: group},
		physics.HardwiredIds{},
		discreteAction,
	)
	if err != nil {
		return err
	}
	pg, ok := registry.ProcessGroup(demoParticle)
	if !ok {
		return fmt.Errorf("cmd: demo particle not found in registry")
	}
	processEntries := make([]selector.ProcessEntry, len(pg.Processes))
	for i := range pg.Processes {
		processEntries[i] = selector.ProcessEntry{Xs: func(float64) float64 { return 1.0 }}
	}

	pool := track.NewPool(cfg.PoolSize, 1)
	rng := track.NewSlotRng(cfg.Seed, cfg.PoolSize)
	for i := 0; i < cfg.PoolSize; i++ {
		pool.At(transport.NewTrackSlotId(i)).Status = track.Alive
	}

	along := track.AlongStepActions{
		Neutral: transport.NewActionId(2),
		Charged: transport.NewActionId(3),
	}

	var totalStep float64
	var stepCount int
	for step := 0; step < cfg.Steps; step++ {
		for i := 0; i < cfg.PoolSize; i++ {
			slot := transport.NewTrackSlotId(i)
			state := pool.At(slot)
			deps := track.PreStepDeps{
				Charge: -1,
				StepLimitInputs: selector.StepLimitInputs{
					Energy:         10.0,
					Processes:      processEntries,
					DiscreteAction: discreteAction,
				},
				AlongStep: along,
			}
			if err := track.RunPreStep(state, slot, rng, deps); err != nil {
				return fmt.Errorf("cmd: slot %d: %w", i, err)
			}
			totalStep += state.StepLimit
			stepCount++
			state.Mfp = 0 // force resampling next step, simulating a discrete hit every step
		}
	}

	mean := 0.0
	if stepCount > 0 {
		mean = totalStep / float64(stepCount)
	}
	logrus.WithFields(logrus.Fields{
		"total_slot_steps": stepCount,
		"mean_step_length": mean,
	}).Info("run summary")
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&scenarioPath, "config", "", "path to a scenario YAML file (defaults built in if omitted)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
}
