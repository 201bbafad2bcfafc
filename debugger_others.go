//go:build !darwin && !linux
// +build !darwin,!linux

package deviceid

func readProcFlags() (int64, error) {
	return 0, ErrUnsupportedPlatform
}
