package testkit

import (
	"sync"
	"testing"
)

var seamGate sync.Mutex

// Swap replaces a package-level seam for one test and restores it on cleanup
func Swap[T any](t *testing.T, seam *T, with T) {
	t.Helper()
	prev := *seam
	*seam = with
	t.Cleanup(func() { *seam = prev })
}

// Serial holds a process-wide lock for the duration of the test so seam
// mutations cannot race across parallel tests
func Serial(t *testing.T) {
	t.Helper()
	seamGate.Lock()
	t.Cleanup(seamGate.Unlock)
}
