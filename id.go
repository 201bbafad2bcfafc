// Package deviceid identifies the Apple device the current process runs on.
//
// https://github.com/darkit/deviceid
//
// DeviceID returns the raw hardware identifier reported by uname(2)
// (for example "iPhone13,2"), and ModelName translates it into a marketing
// name ("iPhone 12") using a static table. Identifiers missing from the table,
// such as hardware released after the table was last updated, are passed
// through unchanged.
//
// IsDebuggerConnected reports whether a debugger is tracing the process.
// It is a diagnostic signal only: it degrades to false when the process
// status cannot be read and is trivially bypassed, so it must not be used as
// an anti-debugging measure.
//
// IsSimulator and IsRealDevice are decided at build time. Binaries built for
// the iOS simulator must be compiled with the "iossimulator" build tag
// (gomobile does this for the iossimulator target):
//
//	GOOS=ios GOARCH=arm64 CGO_ENABLED=1 go build -tags iossimulator ./...
//
// All functions are safe for concurrent use. Nothing is cached; every call
// queries the operating system again.
package deviceid // import "github.com/darkit/deviceid"

import "fmt"

// 测试中可替换的查询函数
var (
	idProvider       = deviceID
	debuggerProvider = isDebuggerConnected
)

// DeviceID returns the hardware identifier of the current device, e.g.
// "iPhone13,2", or "x86_64"/"arm64" inside the simulator.
// A failed system query is reported as an error matching ErrPlatformQueryFailed.
func DeviceID() (string, error) {
	return idProvider()
}

// ModelName returns the human-readable name for DeviceID, or DeviceID itself
// when the identifier is not in the table.
func ModelName() (string, error) {
	id, err := idProvider()
	if err != nil {
		return "", err
	}
	return ResolveModelName(id), nil
}

// IsDebuggerConnected reports whether a debugger or tracer is attached to the
// current process. Query failures read as false.
func IsDebuggerConnected() bool {
	return debuggerProvider()
}

// Info 返回设备信息摘要
type Info struct {
	DeviceID            string `json:"device_id"`             // 原始硬件标识
	ModelName           string `json:"model_name"`            // 可读型号名称
	IsSimulator         bool   `json:"is_simulator"`          // 是否为模拟器构建
	IsRealDevice        bool   `json:"is_real_device"`        // 是否为真机构建
	IsDebuggerConnected bool   `json:"is_debugger_connected"` // 是否附加了调试器
}

// GetInfo 获取设备信息摘要
func GetInfo() (*Info, error) {
	id, err := idProvider()
	if err != nil {
		return nil, fmt.Errorf("deviceid: get info: %w", err)
	}

	return &Info{
		DeviceID:            id,
		ModelName:           ResolveModelName(id),
		IsSimulator:         IsSimulator(),
		IsRealDevice:        IsRealDevice(),
		IsDebuggerConnected: IsDebuggerConnected(),
	}, nil
}
