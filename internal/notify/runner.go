package notify

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Process is a started listener script.
type Process interface {
	// Stdout streams the script's event lines.
	Stdout() io.Reader
	// Wait waits for the script to exit.
	Wait() error
}

// Runner starts PowerShell scripts. The process must die when ctx is done.
type Runner interface {
	Start(ctx context.Context, script string) (Process, error)
}

// ExecRunner runs scripts with powershell.exe.
type ExecRunner struct{}

type execProcess struct {
	cmd    *exec.Cmd
	stdout io.Reader
}

func (p *execProcess) Stdout() io.Reader { return p.stdout }
func (p *execProcess) Wait() error       { return p.cmd.Wait() }

// Start launches powershell with the script passed as an encoded command.
func (ExecRunner) Start(ctx context.Context, script string) (Process, error) {
	cmd := exec.CommandContext(ctx, "powershell",
		"-ExecutionPolicy", "Bypass",
		"-NoProfile",
		"-NonInteractive",
		"-EncodedCommand", encodeCommand(script),
	)
	configureCommand(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open powershell stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start powershell: %w", err)
	}
	return &execProcess{cmd: cmd, stdout: stdout}, nil
}
