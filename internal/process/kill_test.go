package process

import (
	"errors"
	"testing"
)

func TestKillTree_RefusesNonPositivePID(t *testing.T) {
	t.Parallel()

	for _, pid := range []int{0, -1, -4242} {
		if err := KillTree(pid); !errors.Is(err, ErrInvalidPID) {
			t.Errorf("KillTree(%d) error = %v, want ErrInvalidPID", pid, err)
		}
	}
}

func TestKillTree_MissingProcess(t *testing.T) {
	t.Parallel()

	// No process group this large exists, so the kill fails without
	// touching anything.
	if err := KillTree(999999999); err == nil {
		t.Error("KillTree() on a missing process should report an error")
	}
}
