package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

func NewApplyCommand(deps Dependencies) *ApplyCommand {
	c := &ApplyCommand{
		deps: deps,
		fs:   flag.NewFlagSet("apply", flag.ContinueOnError),
	}
	c.fs.SetOutput(io.Discard)
	c.fs.BoolVar(&c.DryRun, "dry-run", false, "Print the batch command instead of running it")
	return c
}

// ApplyCommand puts the named adapters first, in the given order, and commits.
type ApplyCommand struct {
	deps  Dependencies
	fs    *flag.FlagSet
	names []string

	DryRun bool
}

func (c *ApplyCommand) Name() string {
	return c.fs.Name()
}

func (c *ApplyCommand) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	c.names = c.fs.Args()
	if len(c.names) == 0 {
		return fmt.Errorf("%w: apply needs at least one adapter name", ErrUsage)
	}
	return nil
}

func (c *ApplyCommand) Run(ctx context.Context) error {
	if err := listForChange(ctx, c.deps); err != nil {
		return err
	}
	records, err := c.deps.Core.Prioritize(c.names)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	printAdapters(c.deps, records)
	return commitOrPrint(ctx, c.deps, records, c.DryRun)
}
