package elevation

import "errors"

var ErrRelaunchUnsupported = errors.New("elevated relaunch is not supported on this platform")

// ProcessElevation checks for administrative rights and, where the platform
// allows it, restarts the current process with them.
type ProcessElevation interface {
	IsElevated() bool
	// Relaunch starts an elevated copy of the current process with the same
	// arguments. The caller is expected to exit afterwards.
	Relaunch() error
	Hint() string
}
