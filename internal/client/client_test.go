package client

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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
	gen := sensor.NewGeneratorWithSource(rand.NewPCG(41, 42))
	srv := httptest.NewServer(server.NewHandler(cfg, gen, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_AgainstMockDevice(t *testing.T) {
	srv := newDevice(t)
	c := New(srv.URL+"/", Options{Timeout: 2 * time.Second})
	ctx := context.Background()

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, sensor.DeviceID, status.DeviceID)
	assert.NotEmpty(t, status.Recommendations.Temperature)

	temp, err := c.Temperature(ctx)
	require.NoError(t, err)
	assert.Equal(t, "celsius", temp.Unit)

	hum, err := c.Humidity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "percent", hum.Unit)

	light, err := c.Light(ctx)
	require.NoError(t, err)
	assert.Equal(t, "lux", light.Unit)

	soil, err := c.Soil(ctx)
	require.NoError(t, err)
	assert.Equal(t, "percent", soil.Unit)

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.HealthResponse{Status: "online", Device: "ESP32_MOCK", Version: "1.0.0"}, health)

	index, err := c.Index(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ESP32 Mock Server", index.Message)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	srv := newDevice(t)
	c := New(srv.URL, Options{})

	_, err := c.Get(context.Background(), "/api/pressure")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "no route for /api/pressure")
}

func TestClient_NotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<h1>ok</h1>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL, Options{}).Health(context.Background())

	assert.ErrorIs(t, err, ErrNotJSON)
}

func TestClient_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"light": "lots"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, Options{}).Light(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding /api/light")
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, Options{Timeout: time.Second}).Health(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnexpectedStatus)
}
