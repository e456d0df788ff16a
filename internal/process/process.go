// Package process terminates the headless browser and the helper processes
// it spawns.
package process

import (
	"errors"
	"fmt"
)

// ErrInvalidPID is returned for a PID that cannot name a browser process.
var ErrInvalidPID = errors.New("invalid pid")

// KillTree force-kills pid and every process it started. A PID of 0 or
// below is refused: on Unix it would signal the caller's own group.
func KillTree(pid int) error {
	if pid <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPID, pid)
	}
	return killTree(pid)
}
