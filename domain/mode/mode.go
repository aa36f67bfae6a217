package mode

type Mode int

const (
	Unknown Mode = iota
	// TUI runs the interactive terminal reorder screen
	TUI
	// List prints connected adapters once
	List
	// Apply puts named adapters first and commits
	Apply
	// Move moves one position and commits
	Move
	// Serve exposes the core over local HTTP
	Serve
	// Version used to lookup version
	Version
)

// RequiresElevation reports whether the mode may change interface metrics.
func (m Mode) RequiresElevation() bool {
	switch m {
	case TUI, Apply, Move, Serve:
		return true
	default:
		return false
	}
}
