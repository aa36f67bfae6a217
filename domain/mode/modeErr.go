package mode

import "fmt"

// InvalidExecPathProvided is returned when the argument vector lacks the binary path
type InvalidExecPathProvided struct {
}

func NewInvalidExecPathProvided() InvalidExecPathProvided {
	return InvalidExecPathProvided{}
}

func (i InvalidExecPathProvided) Error() string {
	return "missing execution binary path as first argument"
}

type InvalidModeProvided struct {
	mode string
}

func NewInvalidModeProvided(mode string) InvalidModeProvided {
	return InvalidModeProvided{
		mode: mode,
	}
}

func (i InvalidModeProvided) Error() string {
	return fmt.Sprintf("%s is not a valid mode", i.mode)
}
