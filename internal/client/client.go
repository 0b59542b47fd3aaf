package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"CapIot.esp32mock/internal/models"
	"github.com/go-resty/resty/v2"
)

var (
	// ErrUnexpectedStatus is returned when the device answers with anything but 200.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrNotJSON is returned when a 200 response is not application/json.
	ErrNotJSON = errors.New("response is not JSON")
)

// Options tunes the underlying HTTP client.
type Options struct {
	Timeout time.Duration
	Retries int
}

// Client talks to an ESP32 (or its mock) over the device HTTP API.
type Client struct {
	http *resty.Client
}

// New creates a Client for the device at baseURL, e.g. http://192.168.1.100:80.
func New(baseURL string, opts Options) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.Retries)
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}
	return &Client{http: rc}
}

// Get fetches path and returns the JSON body of a 200 response.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}

	if resp.StatusCode() != http.StatusOK {
		var apiErr models.APIError
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Code != "" {
			return nil, fmt.Errorf("GET %s: %w %d: %s", path, ErrUnexpectedStatus, resp.StatusCode(), apiErr.Message)
		}
		return nil, fmt.Errorf("GET %s: %w %d", path, ErrUnexpectedStatus, resp.StatusCode())
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header().Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return nil, fmt.Errorf("GET %s: %w (Content-Type %q)", path, ErrNotJSON, resp.Header().Get("Content-Type"))
	}
	return resp.Body(), nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.Get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// Status fetches a full reading with recommendations.
func (c *Client) Status(ctx context.Context) (models.StatusResponse, error) {
	var out models.StatusResponse
	err := c.getJSON(ctx, "/api/status", &out)
	return out, err
}

func (c *Client) Temperature(ctx context.Context) (models.TemperatureResponse, error) {
	var out models.TemperatureResponse
	err := c.getJSON(ctx, "/api/temperature", &out)
	return out, err
}

func (c *Client) Humidity(ctx context.Context) (models.HumidityResponse, error) {
	var out models.HumidityResponse
	err := c.getJSON(ctx, "/api/humidity", &out)
	return out, err
}

func (c *Client) Light(ctx context.Context) (models.LightResponse, error) {
	var out models.LightResponse
	err := c.getJSON(ctx, "/api/light", &out)
	return out, err
}

func (c *Client) Soil(ctx context.Context) (models.SoilResponse, error) {
	var out models.SoilResponse
	err := c.getJSON(ctx, "/api/soil", &out)
	return out, err
}

func (c *Client) Health(ctx context.Context) (models.HealthResponse, error) {
	var out models.HealthResponse
	err := c.getJSON(ctx, "/api/health", &out)
	return out, err
}

func (c *Client) Index(ctx context.Context) (models.IndexResponse, error) {
	var out models.IndexResponse
	err := c.getJSON(ctx, "/", &out)
	return out, err
}
