//go:build iossimulator
// +build iossimulator

package deviceid

const simulator = true
