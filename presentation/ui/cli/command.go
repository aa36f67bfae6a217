package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"netprio/domain/adapter"
	"netprio/presentation/localization"
)

var (
	ErrUsage        = errors.New("usage error")
	ErrNoAdapters   = errors.New("no connected adapters to reorder")
	ErrCommitFailed = errors.New("priority change failed")
)

// Command is a one-shot subcommand: Init parses its arguments, Run executes it.
type Command interface {
	Name() string
	Init(args []string) error
	Run(ctx context.Context) error
}

type Core interface {
	ListAdapters(ctx context.Context) ([]adapter.Record, string)
	Prioritize(names []string) ([]adapter.Record, error)
	Reorder(from, to int) []adapter.Record
	CommitCurrent(ctx context.Context) (bool, string)
}

// Planner computes the assignments a commit would issue.
type Planner interface {
	Plan(ordered []adapter.Record) ([]adapter.MetricAssignment, error)
}

// Scripter renders assignments as the shell script a commit would run.
type Scripter interface {
	BatchCommand(assignments []adapter.MetricAssignment) string
}

type Translator interface {
	T(id string, data map[string]any) string
	KindLabel(kind adapter.Kind) string
}

// Dependencies are shared by every command.
type Dependencies struct {
	Core       Core
	Planner    Planner
	Scripter   Scripter
	Translator Translator
	Out        io.Writer
}

// Commands returns all subcommands in display order.
func Commands(deps Dependencies) []Command {
	return []Command{
		NewListCommand(deps),
		NewApplyCommand(deps),
		NewMoveCommand(deps),
	}
}

func printAdapters(deps Dependencies, records []adapter.Record) {
	metric := deps.Translator.T(localization.MsgMetric, nil)
	for i, r := range records {
		_, _ = fmt.Fprintf(deps.Out, "%d. %s (%s) - %s: %d\n", i, r.Name, deps.Translator.KindLabel(r.Kind), metric, r.Metric)
	}
}

// commitOrPrint either prints the batch script for records or commits them.
func commitOrPrint(ctx context.Context, deps Dependencies, records []adapter.Record, dryRun bool) error {
	if dryRun {
		assignments, err := deps.Planner.Plan(records)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(deps.Out, deps.Scripter.BatchCommand(assignments))
		return nil
	}

	ok, status := deps.Core.CommitCurrent(ctx)
	_, _ = fmt.Fprintln(deps.Out, status)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCommitFailed, status)
	}
	return nil
}

// listForChange lists adapters and fails when there is nothing to reorder.
func listForChange(ctx context.Context, deps Dependencies) error {
	records, status := deps.Core.ListAdapters(ctx)
	if len(records) == 0 {
		return fmt.Errorf("%w: %s", ErrNoAdapters, status)
	}
	return nil
}

// Find returns the command registered under name.
func Find(commands []Command, name string) (Command, bool) {
	for _, c := range commands {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
