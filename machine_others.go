//go:build !darwin && !linux && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris
// +build !darwin,!linux,!freebsd,!netbsd,!openbsd,!dragonfly,!solaris

package deviceid

// deviceID 其他平台不提供 uname
func deviceID() (string, error) {
	return "", newQueryError(ErrCodeUnsupported, "uname", ErrUnsupportedPlatform)
}
