// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play           - Play in the terminal
//	blockfall sim            - Run a headless seeded simulation and print the board
//	blockfall config         - Print the effective configuration as YAML
//	blockfall keys           - List key bindings
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: normal, hard, expert
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/blockfall"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle for your terminal",
	Long: `Blockfall is a falling-block puzzle game. Cleared rows leave debris
behind, and any debris that loses its support falls until it lands,
which can clear further rows.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless seeded simulation
  config   - Print the effective configuration
  keys     - List key bindings

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall sim --seed 42 --seconds 30
  blockfall config > ~/.blockfall/config.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: normal, hard, expert")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return logger, nil
}

// loadConfig loads the config file and applies --difficulty.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, flagDifficulty); err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source, "difficulty", cfg.Difficulty.Preset)
	return cfg, nil
}

// runtimeConfig builds the host settings from the global flags. A zero
// --seed is replaced by the clock here, once, so every consumer of the
// seed sees the same value.
func runtimeConfig(logger *log.Logger) (core.RuntimeConfig, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger.Debug("runtime", "fps", rt.TickRate, "seed", rt.Seed)
	return rt, nil
}

// gameOptions turns the config and runtime settings into engine options.
func gameOptions(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) []blockfall.Option {
	return []blockfall.Option{
		blockfall.WithTiming(cfg.Timing.ToEngine()),
		blockfall.WithSeed(rt.Seed),
		blockfall.WithStartTier(cfg.Difficulty.Preset.StartTier()),
		blockfall.WithLogger(logger),
	}
}
