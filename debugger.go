package deviceid

// procFlagTraced is P_TRACED from <sys/proc.h>: the process is being traced
// by a debugger.
const procFlagTraced = 0x00000800

// procFlags 返回当前进程的状态标志，测试中可替换
var procFlags = readProcFlags

// isDebuggerConnected reports whether the traced bit is set for the current
// process. A failed query reads as not traced.
func isDebuggerConnected() bool {
	flags, err := procFlags()
	if err != nil {
		return false
	}
	return flags&procFlagTraced != 0
}
