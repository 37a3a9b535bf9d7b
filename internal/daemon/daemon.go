//go:build unix

// Package daemon hands the current terminal to a detached background copy
// of the running binary.
package daemon

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

const (
	// childEnv marks the re-executed background process.
	childEnv = "TERMDOG_DAEMON"

	// inheritedFD is where the child finds the terminal: first ExtraFiles slot.
	inheritedFD = 3
)

// ErrNotDetached is returned when the child is not a session leader.
var ErrNotDetached = errors.New("process is not a session leader")

// IsChild reports whether this process is the detached background copy.
func IsChild() bool {
	return os.Getenv(childEnv) == "1"
}

// Start duplicates the terminal behind out and starts a detached copy of
// this binary that inherits the duplicate. The caller should exit once
// Start returns nil.
func Start(out *os.File) (pid int, err error) {
	fd, err := unix.Dup(int(out.Fd()))
	if err != nil {
		return 0, fmt.Errorf("duplicate terminal descriptor: %w", err)
	}
	tty := os.NewFile(uintptr(fd), "tty")
	defer tty.Close()

	exe, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("locate executable: %w", err)
	}

	cmd := childCommand(exe, os.Args[1:], os.Environ(), tty)
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("fork daemon: %w", err)
	}
	pid = cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, fmt.Errorf("release daemon: %w", err)
	}
	return pid, nil
}

// childCommand builds the re-exec: new session, standard streams on the
// null device, terminal as the only extra descriptor.
func childCommand(exe string, args, env []string, tty *os.File) *exec.Cmd {
	cmd := exec.Command(exe, args...)
	cmd.Env = append(withoutChildEnv(env), childEnv+"=1")
	cmd.ExtraFiles = []*os.File{tty}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd
}

func withoutChildEnv(env []string) []string {
	out := make([]string, 0, len(env))
	prefix := childEnv + "="
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	return out
}

// Inherited returns the terminal passed down by Start. It fails if the
// process did not end up in its own session.
func Inherited() (*os.File, error) {
	sid, err := unix.Getsid(0)
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}
	if sid != os.Getpid() {
		return nil, ErrNotDetached
	}

	f := os.NewFile(inheritedFD, "tty")
	if f == nil {
		return nil, fmt.Errorf("no terminal on descriptor %d", inheritedFD)
	}
	if _, err := unix.FcntlInt(f.Fd(), unix.F_GETFD, 0); err != nil {
		return nil, fmt.Errorf("inherited terminal descriptor: %w", err)
	}
	return f, nil
}
