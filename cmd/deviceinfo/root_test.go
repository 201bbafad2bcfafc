package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/darkit/deviceid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := newRootCmd("test")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestResolveCmd(t *testing.T) {
	out, _, err := execute(t, "resolve", "iPhone8,1", "Watch3,2", "UnknownDevice99,9")
	require.NoError(t, err)

	assert.Contains(t, out, "iPhone8,1 => iPhone 6s\n")
	assert.Contains(t, out, "Watch3,2 => Apple Watch Series 3 42mm (GPS+Cellular)\n")
	assert.Contains(t, out, "UnknownDevice99,9 => UnknownDevice99,9 (unrecognized)\n")
}

func TestResolveCmd_NoArgs(t *testing.T) {
	_, _, err := execute(t, "resolve")
	assert.Error(t, err)
}

func TestRootCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "--json")
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, deviceid.IsSimulator(), got.IsSimulator)
	assert.Equal(t, !got.IsSimulator, got.IsRealDevice)

	if id, err := deviceid.DeviceID(); err == nil {
		assert.Equal(t, id, got.DeviceID)
		assert.Equal(t, deviceid.ResolveModelName(id), got.ModelName)
	}
}

func TestRootCmd_Text(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Model:")
	assert.Contains(t, out, "Device ID:")
	assert.Contains(t, out, "Environment:")
	assert.Contains(t, out, "Debugger:")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}
