//go:build windows

package exec_commander

import (
	"context"
	"os/exec"
	"syscall"
)

// shellCommand hands the script to cmd.exe verbatim; Go's default argument
// escaping would mangle the quoted interface names.
func shellCommand(ctx context.Context, script string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "cmd.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:    `cmd.exe /S /C "` + script + `"`,
		HideWindow: true,
	}
	return cmd
}

func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
