//go:build unix

package process

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
	"time"
)

const reapPollInterval = 20 * time.Millisecond

// setProcessGroup starts the engine as the leader of a new process group so
// that its workers can be signalled together.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func terminateGroup(p *os.Process) error {
	if p == nil {
		return nil
	}
	return signalGroup(p.Pid, syscall.SIGTERM)
}

func signalGroup(pgid int, sig syscall.Signal) error {
	err := syscall.Kill(-pgid, sig)
	if errors.Is(err, syscall.ESRCH) {
		return os.ErrProcessDone
	}
	return err
}

// reapGroup waits up to grace for every process in the group to exit, then
// kills whatever is left.
func reapGroup(pgid int, grace time.Duration) {
	deadline := time.Now().Add(grace)
	for time.Now().Before(deadline) {
		if syscall.Kill(-pgid, 0) != nil {
			return
		}
		time.Sleep(reapPollInterval)
	}
	_ = signalGroup(pgid, syscall.SIGKILL)
}
