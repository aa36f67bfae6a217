package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"netprio/domain/mode"
	"netprio/infrastructure/PAL/exec_commander"
	"netprio/infrastructure/logging"
	"netprio/infrastructure/settings"
	"netprio/presentation"
	"netprio/presentation/elevation"
	"netprio/presentation/mode_selection"
	"netprio/presentation/ui/cli"
)

const PackageName = "netprio"

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	appMode := mode_selection.NewArgsAppMode(os.Args)
	selectedMode, selectedModeErr := appMode.Mode()
	if selectedModeErr != nil {
		fmt.Println(selectedModeErr)
		printUsage()
		os.Exit(2)
	}

	if selectedMode == mode.Version {
		fmt.Printf("%s %s\n", PackageName, Version)
		return
	}

	if selectedMode.RequiresElevation() && !isDryRun(appMode.Args()) {
		ensureElevated()
	}

	configPath, err := settings.DefaultPath()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := settings.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appCtx, appCtxCancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer appCtxCancel()

	if selectedMode == mode.TUI {
		if err := os.MkdirAll(cfg.Dir(), 0o711); err != nil {
			log.Fatalf("failed to create config directory: %v", err)
		}
		logFile, err := presentation.RedirectLogToFile(cfg.Dir())
		if err != nil {
			log.Fatal(err)
		}
		defer func() { _ = logFile.Close() }()
	}

	logger := logging.NewLogLogger()
	if selectedMode != mode.TUI {
		logger = logging.NewWriterLogger(os.Stderr, PackageName+": ")
	}
	deps, err := presentation.NewAppDependencies(cfg, exec_commander.NewExecCommander(), logger)
	if err != nil {
		log.Fatal(err)
	}

	var runErr error
	switch selectedMode {
	case mode.TUI:
		runErr = presentation.StartTUI(appCtx, deps)
	case mode.List:
		runErr = presentation.RunCommand(appCtx, deps, "list", appMode.Args(), os.Stdout)
	case mode.Apply:
		runErr = presentation.RunCommand(appCtx, deps, "apply", appMode.Args(), os.Stdout)
	case mode.Move:
		runErr = presentation.RunCommand(appCtx, deps, "move", appMode.Args(), os.Stdout)
	case mode.Serve:
		fmt.Printf("Serving on http://%s\n", cfg.API.Listen)
		runErr = presentation.StartServer(appCtx, deps)
	default:
		printUsage()
		os.Exit(2)
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		if errors.Is(runErr, cli.ErrUsage) {
			printUsage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// ensureElevated relaunches with administrative rights or exits. Declining
// the elevation prompt is fatal.
func ensureElevated() {
	processElevation := elevation.NewProcessElevation()
	if processElevation.IsElevated() {
		return
	}
	err := processElevation.Relaunch()
	if err == nil {
		os.Exit(0)
	}
	if errors.Is(err, elevation.ErrRelaunchUnsupported) {
		log.Fatalf("%s must be run with admin privileges. %s", PackageName, processElevation.Hint())
	}
	log.Fatalf("failed to relaunch with admin privileges: %v. %s", err, processElevation.Hint())
}

func isDryRun(args []string) bool {
	for _, arg := range args {
		if arg == "--dry-run" || arg == "-dry-run" {
			return true
		}
	}
	return false
}

func printUsage() {
	fmt.Printf(`Usage: %s [mode] [arguments]
Modes:
  (none), tui                   - interactive priority editor
  list                          - print connected adapters by priority
  apply [--dry-run] <name>...   - put the named adapters first and apply
  move [--dry-run] <from> <to>  - move one adapter by position and apply
  serve                         - local HTTP API (see api.listen)
  version                       - print version
`, PackageName)
}
