//go:build linux
// +build linux

package deviceid

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const procStatusPath = "/proc/self/status"

// readProcFlags reports procFlagTraced when /proc/self/status names a tracer.
// Linux keeps no P_TRACED bit, so TracerPid stands in for it.
func readProcFlags() (int64, error) {
	data, err := os.ReadFile(procStatusPath)
	if err != nil {
		return 0, err
	}
	pid, err := parseTracerPID(string(data))
	if err != nil {
		return 0, err
	}
	if pid != 0 {
		return procFlagTraced, nil
	}
	return 0, nil
}

// parseTracerPID 从 status 内容中提取 TracerPid 字段
func parseTracerPID(status string) (int, error) {
	for _, line := range strings.Split(status, "\n") {
		if !strings.HasPrefix(line, "TracerPid:") {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(line, "TracerPid:"))
		pid, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid TracerPid %q: %w", value, err)
		}
		return pid, nil
	}
	return 0, fmt.Errorf("TracerPid not found in %s", procStatusPath)
}
