//go:build !windows

package elevation

import "os"

// ProcessElevationImpl implements ProcessElevation on macOS/Linux.
type ProcessElevationImpl struct{}

func NewProcessElevation() ProcessElevation {
	return &ProcessElevationImpl{}
}

// IsElevated returns true if we're running as root.
func (p *ProcessElevationImpl) IsElevated() bool {
	return os.Geteuid() == 0
}

func (p *ProcessElevationImpl) Relaunch() error {
	return ErrRelaunchUnsupported
}

func (p *ProcessElevationImpl) Hint() string {
	return "Please re-run the command with sudo."
}
