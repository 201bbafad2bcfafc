package deviceid

import "testing"

func stubIDProvider(t *testing.T, fn func() (string, error)) {
	t.Helper()
	orig := idProvider
	idProvider = fn
	t.Cleanup(func() { idProvider = orig })
}

func stubProcFlags(t *testing.T, fn func() (int64, error)) {
	t.Helper()
	orig := procFlags
	procFlags = fn
	t.Cleanup(func() { procFlags = orig })
}

func stubDebugger(t *testing.T, attached bool) {
	t.Helper()
	orig := debuggerProvider
	debuggerProvider = func() bool { return attached }
	t.Cleanup(func() { debuggerProvider = orig })
}
