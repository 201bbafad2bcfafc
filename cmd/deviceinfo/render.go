package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// report 是 Info 的可打印形式，查询失败时 DeviceID/ModelName 为空
type report struct {
	DeviceID            string `json:"device_id,omitempty"`
	ModelName           string `json:"model_name,omitempty"`
	IsSimulator         bool   `json:"is_simulator"`
	IsRealDevice        bool   `json:"is_real_device"`
	IsDebuggerConnected bool   `json:"is_debugger_connected"`
}

func renderReport(w io.Writer, r report) {
	fmt.Fprintf(w, "%s %s\n", bold("Model:"), orUnknown(r.ModelName))
	fmt.Fprintf(w, "%s %s\n", bold("Device ID:"), orUnknown(r.DeviceID))
	fmt.Fprintf(w, "%s %s\n", bold("Environment:"), environment(r.IsSimulator))
	fmt.Fprintf(w, "%s %s\n", bold("Debugger:"), yesNo(r.IsDebuggerConnected))
}

func renderResolved(w io.Writer, id, name string, known bool) {
	if known {
		fmt.Fprintf(w, "%s => %s\n", cyan(id), name)
		return
	}
	fmt.Fprintf(w, "%s => %s %s\n", cyan(id), name, dim("(unrecognized)"))
}

func orUnknown(s string) string {
	if s == "" {
		return yellow("unknown")
	}
	return s
}

func environment(sim bool) string {
	if sim {
		return yellow("simulator")
	}
	return green("device")
}

func yesNo(b bool) string {
	if b {
		return yellow("attached")
	}
	return green("none")
}
