//go:build darwin
// +build darwin

package deviceid

import (
	"os"

	"golang.org/x/sys/unix"
)

// readProcFlags 通过 sysctl kern.proc.pid.<pid> 读取 kinfo_proc 的 p_flag
func readProcFlags() (int64, error) {
	kp, err := unix.SysctlKinfoProc("kern.proc.pid", os.Getpid())
	if err != nil {
		return 0, err
	}
	return int64(kp.Proc.P_flag), nil
}
