package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
)

func NewMoveCommand(deps Dependencies) *MoveCommand {
	c := &MoveCommand{
		deps: deps,
		fs:   flag.NewFlagSet("move", flag.ContinueOnError),
	}
	c.fs.SetOutput(io.Discard)
	c.fs.BoolVar(&c.DryRun, "dry-run", false, "Print the batch command instead of running it")
	return c
}

// MoveCommand moves the adapter at one position to another and commits.
// Positions are zero-based and clamped to the listing.
type MoveCommand struct {
	deps Dependencies
	fs   *flag.FlagSet
	from int
	to   int

	DryRun bool
}

func (c *MoveCommand) Name() string {
	return c.fs.Name()
}

func (c *MoveCommand) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if c.fs.NArg() != 2 {
		return fmt.Errorf("%w: move needs <from> <to>", ErrUsage)
	}
	var err error
	if c.from, err = strconv.Atoi(c.fs.Arg(0)); err != nil {
		return fmt.Errorf("%w: invalid from position %q", ErrUsage, c.fs.Arg(0))
	}
	if c.to, err = strconv.Atoi(c.fs.Arg(1)); err != nil {
		return fmt.Errorf("%w: invalid to position %q", ErrUsage, c.fs.Arg(1))
	}
	return nil
}

func (c *MoveCommand) Run(ctx context.Context) error {
	if err := listForChange(ctx, c.deps); err != nil {
		return err
	}
	records := c.deps.Core.Reorder(c.from, c.to)
	printAdapters(c.deps, records)
	return commitOrPrint(ctx, c.deps, records, c.DryRun)
}
