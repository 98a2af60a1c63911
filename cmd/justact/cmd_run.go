package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"justact/internal/audit"
	"justact/internal/scenario"
	"justact/internal/trace"
	"justact/internal/tracestore"
)

var watch bool

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Run a scenario to completion and print its enactment verdicts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if err := runScenario(path); err != nil {
			return err
		}
		if !watch {
			return nil
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		defer watcher.Close()
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}

		fmt.Fprintf(os.Stderr, "watching %s for changes (ctrl+c to stop)\n", path)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				trace.Reset()
				if err := runScenario(path); err != nil {
					fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
			}
		}
	},
}

// runScenario loads and runs the scenario at path, printing every
// enactment's verdict and, if --trace-db is set, archiving the run.
func runScenario(path string) error {
	runID := uuid.New()
	if logger != nil {
		logger.Info("starting scenario run", zap.String("run_id", runID.String()), zap.String("scenario", path))
	}

	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	_, tr, runErr := scenario.Run(sc)

	var store *tracestore.Store
	if traceDB != "" {
		store, err = tracestore.Open(traceDB)
		if err != nil {
			return fmt.Errorf("open trace store: %w", err)
		}
		defer store.Close()
	}

	for seq, event := range tr.Events {
		if store != nil {
			if err := store.AppendEvent(seq, event); err != nil {
				return fmt.Errorf("archive event %d: %w", seq, err)
			}
		}
		if _, ok := event.(trace.EnactActionEvent); !ok {
			continue
		}
		result, ok := tr.ResultAt(seq)
		if !ok {
			continue
		}
		if store != nil {
			if err := store.AppendPermission(seq, result); err != nil {
				return fmt.Errorf("archive permission %d: %w", seq, err)
			}
		}
		printResult(seq, event.(trace.EnactActionEvent), result)
	}

	return runErr
}

func printResult(seq int, e trace.EnactActionEvent, result audit.Result) {
	verdict := "DENIED"
	if result.IsPermitted() {
		verdict = "PERMITTED"
	}
	if result.Err != nil {
		fmt.Printf("#%d %s by %s: SYNTAX ERROR (%v)\n", seq, e.Action.ID(), e.Action.ActorID, result.Err)
		return
	}
	p := result.Permission
	fmt.Printf("#%d %s by %s: %s (stated=%v based=%v valid=%v current=%v)\n",
		seq, e.Action.ID(), e.Action.ActorID, verdict, p.Stated, p.Based, p.Valid, p.Current)
}
