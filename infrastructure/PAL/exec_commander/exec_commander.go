package exec_commander

import (
	"context"
	"os/exec"
)

type ExecCommander struct {
}

func NewExecCommander() Commander {
	return &ExecCommander{}
}

func (r *ExecCommander) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return command(ctx, name, args...).Output()
}

func (r *ExecCommander) Shell(ctx context.Context, script string) ([]byte, error) {
	return shellCommand(ctx, script).CombinedOutput()
}

func command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	hideWindow(cmd)
	return cmd
}
