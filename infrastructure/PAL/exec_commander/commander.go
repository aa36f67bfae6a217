package exec_commander

import "context"

// Commander abstracts platform-specific command execution (e.g., via exec.Command).
type Commander interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Shell runs script through the platform shell in a single process launch.
	Shell(ctx context.Context, script string) ([]byte, error)
}
