//go:build !unix

package process

import (
	"os"
	"os/exec"
	"time"
)

func setProcessGroup(cmd *exec.Cmd) {}

func terminateGroup(p *os.Process) error {
	if p == nil {
		return nil
	}
	return p.Kill()
}

// reapGroup is a no-op: without process groups only the direct child is tracked.
func reapGroup(pid int, grace time.Duration) {}
