package process

// Notes:
// - KillProcessGroup: only an invalid PID is used here. PID 0 would target the
//   test's own process group. Real group kills are covered by the command
//   engine timeout tests in internal/engine.

import (
	"os/exec"
	"testing"
)

// ---------------------------------------------------------------------------
// TestKillProcessGroup - Invalid PID Handling
// ---------------------------------------------------------------------------

func TestKillProcessGroup_InvalidPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}

// ---------------------------------------------------------------------------
// TestIsolate - Preserves existing attributes
// ---------------------------------------------------------------------------

func TestIsolate_Idempotent(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("true")
	Isolate(cmd)
	Isolate(cmd)
}
