package presentation

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"netprio/infrastructure/telemetry"
	"netprio/presentation/api"
	"netprio/presentation/ui/cli"
	"netprio/presentation/ui/tui"
)

const LogFileName = "netprio.log"

// RedirectLogToFile sends the standard logger to netprio.log in dir so that
// log lines do not draw over the terminal UI. The caller closes the file.
func RedirectLogToFile(dir string) (io.Closer, error) {
	f, err := tea.LogToFile(filepath.Join(dir, LogFileName), "netprio ")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func StartTUI(ctx context.Context, deps *AppDependencies) error {
	runner := tui.NewRunner(
		deps.Session(),
		deps.Localizer(),
		deps.Config().Dir(),
		deps.Logger(),
		deps.Config().UI.AutoCommit,
	)
	return runner.Run(ctx)
}

// RunCommand executes a one-shot CLI command, writing its report to out.
func RunCommand(ctx context.Context, deps *AppDependencies, name string, args []string, out io.Writer) error {
	commands := cli.Commands(cli.Dependencies{
		Core:       deps.Session(),
		Planner:    deps.Reconciler(),
		Scripter:   deps.Gateway(),
		Translator: deps.Localizer(),
		Out:        out,
	})
	command, ok := cli.Find(commands, name)
	if !ok {
		return fmt.Errorf("%w: unknown command %q", cli.ErrUsage, name)
	}
	if err := command.Init(args); err != nil {
		return err
	}
	return command.Run(ctx)
}

// StartServer serves the HTTP API until ctx is cancelled.
func StartServer(ctx context.Context, deps *AppDependencies) error {
	collector, err := telemetry.NewCollector(nil)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	deps.Session().SetObserver(collector)

	_, status := deps.Session().ListAdapters(ctx)
	deps.Logger().Printf("initial listing: %s", status)

	router := api.NewRouter(deps.Session(), collector.Handler(), deps.Logger())
	return api.NewServer(deps.Config().API.Listen, router, deps.Logger()).Run(ctx)
}
