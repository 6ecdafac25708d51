//go:build !windows

package notify

import "os/exec"

func configureCommand(_ *exec.Cmd) {}
