// Package main implements the justact CLI: a runner and inspector for
// justification-based agent coordination scenarios, built on
// internal/runtime, internal/audit, and internal/scenario.
//
// # File Index
//
//   - main.go     - entry point, rootCmd, global flags, init()
//   - cmd_run.go  - runCmd, runScenario(), printResult()
//   - cmd_audit.go - auditCmd, runQuery(), formatQueryLine()
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"justact/internal/config"
	"justact/internal/telemetry"
)

var (
	verbose         bool
	workspace       string
	traceDB         string
	scenarioTimeout time.Duration

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "justact",
	Short: "justact - a justification-based agent coordination runtime",
	Long: `justact drives scripted multi-agent scenarios through the
coordination runtime (Times, Agreements, Statements, Enactments) and audits
every enactment against the stated policy.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		ws := workspace
		if ws == "" {
			ws, _ = os.Getwd()
		}
		if err := telemetry.Initialize(ws); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to initialize file logging: %v\n", err)
		}

		cfg, err = config.Load(configPath(ws))
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if traceDB == "" && cfg.TraceStore.Enabled {
			traceDB = cfg.TraceStore.Path
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		telemetry.CloseAll()
	},
}

func configPath(workspace string) string {
	return filepath.Join(workspace, ".justact", "config.yaml")
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&traceDB, "trace-db", "", "archive the run's events and verdicts to this SQLite file")
	rootCmd.PersistentFlags().DurationVar(&scenarioTimeout, "timeout", 30*time.Second, "scenario run timeout (accepted but not applied by run or audit)")

	runCmd.Flags().BoolVar(&watch, "watch", false, "re-run the scenario whenever its file changes")
	auditCmd.Flags().BoolVar(&tui, "tui", false, "launch the interactive trace inspector")
	auditCmd.Flags().StringVar(&query, "query", "", "report whether a ground atom (mangle syntax, e.g. permitted(\"a\")) holds in each enactment's denotation")

	rootCmd.AddCommand(runCmd, auditCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
