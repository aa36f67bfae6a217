package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

func NewListCommand(deps Dependencies) *ListCommand {
	c := &ListCommand{
		deps: deps,
		fs:   flag.NewFlagSet("list", flag.ContinueOnError),
	}
	c.fs.SetOutput(io.Discard)
	return c
}

// ListCommand prints the connected adapters in priority order.
type ListCommand struct {
	deps Dependencies
	fs   *flag.FlagSet
}

func (c *ListCommand) Name() string {
	return c.fs.Name()
}

func (c *ListCommand) Init(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if c.fs.NArg() != 0 {
		return fmt.Errorf("%w: list takes no arguments", ErrUsage)
	}
	return nil
}

func (c *ListCommand) Run(ctx context.Context) error {
	records, status := c.deps.Core.ListAdapters(ctx)
	printAdapters(c.deps, records)
	_, _ = fmt.Fprintln(c.deps.Out, status)
	return nil
}
