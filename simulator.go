package deviceid

// IsSimulator reports whether the binary was built for the iOS simulator,
// i.e. with the "iossimulator" build tag that gomobile sets for that
// platform. The answer is fixed at compile time.
func IsSimulator() bool {
	return simulator
}

// IsRealDevice reports whether the binary was built for physical hardware.
func IsRealDevice() bool {
	return !simulator
}
