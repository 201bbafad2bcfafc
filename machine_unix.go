//go:build darwin || linux || freebsd || netbsd || openbsd || dragonfly || solaris
// +build darwin linux freebsd netbsd openbsd dragonfly solaris

package deviceid

import "golang.org/x/sys/unix"

// uname 可在测试中替换
var uname = unix.Uname

// deviceID returns the machine field of uname(2), e.g. "iPhone13,2" on iOS
// or "x86_64" on a Linux host.
func deviceID() (string, error) {
	var un unix.Utsname
	if err := uname(&un); err != nil {
		return "", newQueryError(ErrCodeUname, "uname", err)
	}
	id := unix.ByteSliceToString(un.Machine[:])
	if id == "" {
		return "", newQueryError(ErrCodeEmptyIdentifier, "uname", nil)
	}
	return id, nil
}
