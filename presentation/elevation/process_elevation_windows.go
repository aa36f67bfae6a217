package elevation

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows"
)

type ProcessElevationImpl struct {
}

func NewProcessElevation() ProcessElevation {
	return &ProcessElevationImpl{}
}

func (p *ProcessElevationImpl) IsElevated() bool {
	sid, err := windows.CreateWellKnownSid(windows.WinBuiltinAdministratorsSid)
	if err != nil {
		return false
	}

	token := windows.Token(0)
	member, err := token.IsMember(sid)
	if err != nil {
		return false
	}

	return member
}

func (p *ProcessElevationImpl) Relaunch() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	escaped := make([]string, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		escaped = append(escaped, windows.EscapeArg(arg))
	}

	verbPtr, _ := windows.UTF16PtrFromString("runas")
	exePtr, _ := windows.UTF16PtrFromString(exe)
	cwdPtr, _ := windows.UTF16PtrFromString(cwd)
	argPtr, _ := windows.UTF16PtrFromString(strings.Join(escaped, " "))

	if err := windows.ShellExecute(0, verbPtr, exePtr, argPtr, cwdPtr, windows.SW_NORMAL); err != nil {
		return fmt.Errorf("elevated relaunch declined or failed: %w", err)
	}
	return nil
}

func (p *ProcessElevationImpl) Hint() string {
	return "Please restart the application as Administrator (right-click -> 'Run as Administrator')."
}
