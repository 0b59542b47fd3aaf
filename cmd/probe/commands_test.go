package main

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"CapIot.esp32mock/internal/config"
	"CapIot.esp32mock/internal/models"
	"CapIot.esp32mock/internal/sensor"
	"CapIot.esp32mock/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevice(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Config{AllowedOrigins: []string{"*"}}
	gen := sensor.NewGeneratorWithSource(rand.NewPCG(61, 62))
	srv := httptest.NewServer(server.NewHandler(cfg, gen, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatusCommand(t *testing.T) {
	srv := newDevice(t)

	out, err := execute(t, "status", "--url", srv.URL)

	require.NoError(t, err)
	var status models.StatusResponse
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, sensor.DeviceID, status.DeviceID)
}

func TestHealthCommand(t *testing.T) {
	srv := newDevice(t)

	out, err := execute(t, "health", "--url", srv.URL)

	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"online","device":"ESP32_MOCK","version":"1.0.0"}`, out)
}

func TestCheckCommand_Passes(t *testing.T) {
	srv := newDevice(t)

	out, err := execute(t, "check", "--url", srv.URL, "--samples", "20", "--log-level", "warn")

	require.NoError(t, err)
	var result checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.OK)
	assert.Empty(t, result.Violations)
	assert.Equal(t, 20, result.Samples["/api/light"])
}

func TestCheckCommand_FailsOnViolations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	out, err := execute(t, "check", "--url", srv.URL, "-n", "1", "--log-level", "error")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "violations found")
	var result checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.OK)
	assert.Len(t, result.Violations, 7)
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "health", "--log-level", "loud")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}

func TestCheckCommand_RejectsArgs(t *testing.T) {
	_, err := execute(t, "check", "extra")

	assert.Error(t, err)
}
