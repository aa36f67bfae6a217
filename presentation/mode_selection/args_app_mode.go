package mode_selection

import (
	"strings"

	"netprio/domain/mode"
)

type ArgsAppMode struct {
	arguments []string
}

func NewArgsAppMode(arguments []string) AppMode {
	return &ArgsAppMode{
		arguments: arguments,
	}
}

func (a *ArgsAppMode) Mode() (mode.Mode, error) {
	if len(a.arguments) == 0 {
		return mode.Unknown, mode.NewInvalidExecPathProvided()
	}

	if len(a.arguments) < 2 {
		return mode.TUI, nil
	}

	modeArgument := strings.TrimSpace(strings.ToLower(a.arguments[1]))
	switch modeArgument {
	case "tui", "ui":
		return mode.TUI, nil
	case "list", "ls":
		return mode.List, nil
	case "apply":
		return mode.Apply, nil
	case "move", "mv":
		return mode.Move, nil
	case "serve":
		return mode.Serve, nil
	case "version", "--version", "-v":
		return mode.Version, nil
	default:
		return mode.Unknown, mode.NewInvalidModeProvided(modeArgument)
	}
}

func (a *ArgsAppMode) Args() []string {
	if len(a.arguments) < 3 {
		return nil
	}
	return a.arguments[2:]
}
