package mode_selection

import "netprio/domain/mode"

// AppMode resolves the application's runtime mode.
type AppMode interface {
	Mode() (mode.Mode, error)
	// Args returns the arguments following the mode word.
	Args() []string
}
