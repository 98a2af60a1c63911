package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"justact/internal/inspector"
	"justact/internal/policy"
	"justact/internal/scenario"
	"justact/internal/trace"
	"justact/internal/tracestore"
)

var (
	tui   bool
	query string
)

var auditCmd = &cobra.Command{
	Use:   "audit <scenario.yaml>",
	Short: "Run a scenario and inspect its audited enactments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		runID := uuid.New()
		if logger != nil {
			logger.Info("starting scenario audit", zap.String("run_id", runID.String()), zap.String("scenario", path))
		}

		sc, err := scenario.Load(path)
		if err != nil {
			return err
		}

		_, tr, runErr := scenario.Run(sc)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "warning: scenario ended early: %v\n", runErr)
		}

		if traceDB != "" {
			store, err := tracestore.Open(traceDB)
			if err != nil {
				return fmt.Errorf("open trace store: %w", err)
			}
			defer store.Close()
			for seq, event := range tr.Events {
				if err := store.AppendEvent(seq, event); err != nil {
					return fmt.Errorf("archive event %d: %w", seq, err)
				}
				if _, ok := event.(trace.EnactActionEvent); !ok {
					continue
				}
				if result, ok := tr.ResultAt(seq); ok {
					if err := store.AppendPermission(seq, result); err != nil {
						return fmt.Errorf("archive permission %d: %w", seq, err)
					}
				}
			}
		}

		var entries []inspector.Entry
		for seq, event := range tr.Events {
			enact, ok := event.(trace.EnactActionEvent)
			if !ok {
				continue
			}
			result, _ := tr.ResultAt(seq)
			entries = append(entries, inspector.Entry{Seq: seq, Action: enact.Action, Result: result})
		}

		if query != "" {
			return runQuery(query, entries)
		}

		if !tui {
			for _, e := range entries {
				printResult(e.Seq, trace.EnactActionEvent{Action: e.Action}, e.Result)
			}
			return nil
		}

		m := inspector.New(entries)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

// runQuery parses query in mangle's concrete atom syntax (policy.ParseQueryAtom)
// and reports, for every audited enactment, whether that ground atom was a
// truth of its denotation. A syntax error in the query itself aborts the
// whole command; a per-entry audit failure (Result.Err) just prints as
// unknown for that entry.
//
// Each entry's check only reads its own already-computed Permission, so on a
// large trace they run as an independent fan-out via errgroup rather than a
// sequential loop.
func runQuery(query string, entries []inspector.Entry) error {
	atom, err := policy.ParseQueryAtom(query)
	if err != nil {
		return fmt.Errorf("parse query: %w", err)
	}

	lines := make([]string, len(entries))
	var g errgroup.Group
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			lines[i] = formatQueryLine(e, atom)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

func formatQueryLine(e inspector.Entry, atom policy.GroundAtom) string {
	if e.Result.Permission == nil {
		return fmt.Sprintf("#%d %s: unknown (audit failed: %v)", e.Seq, e.Action.ID(), e.Result.Err)
	}
	held := false
	for _, t := range e.Result.Permission.Truths {
		if t.String() == atom.String() {
			held = true
			break
		}
	}
	return fmt.Sprintf("#%d %s: %s is %v", e.Seq, e.Action.ID(), atom, held)
}
