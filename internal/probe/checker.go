package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"CapIot.esp32mock/internal/client"
	"CapIot.esp32mock/internal/models"
	"CapIot.esp32mock/internal/sensor"
	"CapIot.esp32mock/internal/service"
	"github.com/rs/zerolog"
)

// Violation is one broken invariant observed on one response.
type Violation struct {
	Endpoint string
	Sample   int
	Message  string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s #%d: %s", v.Endpoint, v.Sample, v.Message)
}

// Report summarises a check run.
type Report struct {
	Samples    map[string]int
	Violations []Violation
}

// OK reports whether no violation was found.
func (r Report) OK() bool {
	return len(r.Violations) == 0
}

// Checker samples a device repeatedly and validates every response against
// the device's documented ranges and thresholds.
type Checker struct {
	client *client.Client
	logger zerolog.Logger
}

func NewChecker(c *client.Client, logger zerolog.Logger) *Checker {
	return &Checker{
		client: c,
		logger: logger.With().Str("component", "Checker").Logger(),
	}
}

type check struct {
	path string
	fn   func(body []byte) []string
}

// Run draws samples responses from every endpoint. Transport failures abort
// the run; wrong status codes, wrong content types and bad payloads are
// recorded as violations.
func (c *Checker) Run(ctx context.Context, samples int) (Report, error) {
	if samples < 1 {
		return Report{}, fmt.Errorf("samples must be at least 1, got %d", samples)
	}

	checks := []check{
		{"/api/status", checkStatus},
		{"/api/temperature", checkTemperature},
		{"/api/humidity", checkHumidity},
		{"/api/light", checkLight},
		{"/api/soil", checkSoil},
		{"/api/health", checkHealth},
	}

	report := Report{Samples: make(map[string]int)}
	record := func(path string, sample int, msgs ...string) {
		for _, msg := range msgs {
			v := Violation{Endpoint: path, Sample: sample, Message: msg}
			c.logger.Warn().Str("endpoint", path).Int("sample", sample).Msg(msg)
			report.Violations = append(report.Violations, v)
		}
	}

	body, err := c.client.Get(ctx, "/")
	switch {
	case err == nil:
		report.Samples["/"]++
		record("/", 0, checkIndex(body)...)
	case isContractError(err):
		record("/", 0, err.Error())
	default:
		return report, err
	}

	for i := 0; i < samples; i++ {
		for _, ch := range checks {
			body, err := c.client.Get(ctx, ch.path)
			if err != nil {
				if !isContractError(err) {
					return report, err
				}
				record(ch.path, i, err.Error())
				continue
			}
			report.Samples[ch.path]++
			record(ch.path, i, ch.fn(body)...)
		}
	}

	c.logger.Info().Int("samples", samples).Int("violations", len(report.Violations)).Msg("Check finished")
	return report, nil
}

func isContractError(err error) bool {
	return errors.Is(err, client.ErrUnexpectedStatus) || errors.Is(err, client.ErrNotJSON)
}

func inRange(name string, v float64, r sensor.Range) []string {
	if r.Contains(v) {
		return nil
	}
	return []string{fmt.Sprintf("%s %v outside [%v, %v]", name, v, r.Min, r.Max)}
}

func classified(name string, v float64, band sensor.Range, got string) []string {
	if want := string(band.Classify(v)); got != want {
		return []string{fmt.Sprintf("%s %v classified %q, want %q", name, v, got, want)}
	}
	return nil
}

func unit(got, want string) []string {
	if got != want {
		return []string{fmt.Sprintf("unit %q, want %q", got, want)}
	}
	return nil
}

func keys(body []byte, want ...string) ([]string, map[string]json.RawMessage) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return []string{fmt.Sprintf("body is not a JSON object: %v", err)}, nil
	}
	var msgs []string
	for _, k := range want {
		if _, ok := raw[k]; !ok {
			msgs = append(msgs, fmt.Sprintf("missing field %q", k))
		}
	}
	for k := range raw {
		if !slices.Contains(want, k) {
			msgs = append(msgs, fmt.Sprintf("unexpected field %q", k))
		}
	}
	return msgs, raw
}

func decode(body []byte, out any) []string {
	if err := json.Unmarshal(body, out); err != nil {
		return []string{fmt.Sprintf("decoding body: %v", err)}
	}
	return nil
}

func checkStatus(body []byte) []string {
	msgs, raw := keys(body, "timestamp", "temperature", "humidity", "light", "soil_moisture", "status", "device_id", "recommendations")
	if raw == nil {
		return msgs
	}
	var s models.StatusResponse
	if errs := decode(body, &s); errs != nil {
		return append(msgs, errs...)
	}

	if _, err := time.ParseInLocation(sensor.TimestampLayout, s.Timestamp, time.Local); err != nil {
		msgs = append(msgs, fmt.Sprintf("timestamp %q is not ISO-8601: %v", s.Timestamp, err))
	}
	msgs = append(msgs, inRange("temperature", float64(s.Temperature), sensor.TemperatureRange)...)
	msgs = append(msgs, inRange("humidity", float64(s.Humidity), sensor.HumidityRange)...)
	msgs = append(msgs, inRange("light", float64(s.Light), sensor.LightRange)...)
	msgs = append(msgs, inRange("soil_moisture", float64(s.SoilMoisture), sensor.SoilMoistureRange)...)
	if !slices.Contains(sensor.Moods, sensor.Mood(s.Status)) {
		msgs = append(msgs, fmt.Sprintf("status %q is not a known mood", s.Status))
	}
	if s.DeviceID != sensor.DeviceID {
		msgs = append(msgs, fmt.Sprintf("device_id %q, want %q", s.DeviceID, sensor.DeviceID))
	}

	var recs map[string]json.RawMessage
	if err := json.Unmarshal(raw["recommendations"], &recs); err != nil || len(recs) != 3 {
		msgs = append(msgs, fmt.Sprintf("recommendations must hold exactly temperature, light and soil_moisture: %s", raw["recommendations"]))
	}
	msgs = append(msgs, classified("temperature", float64(s.Temperature), sensor.TemperatureOptimal, s.Recommendations.Temperature)...)
	msgs = append(msgs, classified("light", float64(s.Light), sensor.LightOptimal, s.Recommendations.Light)...)
	msgs = append(msgs, classified("soil_moisture", float64(s.SoilMoisture), sensor.SoilMoistureOptimal, s.Recommendations.SoilMoisture)...)
	return msgs
}

func checkTemperature(body []byte) []string {
	msgs, raw := keys(body, "temperature", "unit", "status")
	if raw == nil {
		return msgs
	}
	var t models.TemperatureResponse
	if errs := decode(body, &t); errs != nil {
		return append(msgs, errs...)
	}
	msgs = append(msgs, inRange("temperature", float64(t.Temperature), sensor.TemperatureRange)...)
	msgs = append(msgs, unit(t.Unit, service.UnitCelsius)...)
	return append(msgs, classified("temperature", float64(t.Temperature), sensor.TemperatureOptimal, t.Status)...)
}

func checkHumidity(body []byte) []string {
	msgs, raw := keys(body, "humidity", "unit")
	if raw == nil {
		return msgs
	}
	var h models.HumidityResponse
	if errs := decode(body, &h); errs != nil {
		return append(msgs, errs...)
	}
	msgs = append(msgs, inRange("humidity", float64(h.Humidity), sensor.HumidityRange)...)
	return append(msgs, unit(h.Unit, service.UnitPercent)...)
}

func checkLight(body []byte) []string {
	msgs, raw := keys(body, "light", "unit", "status", "description")
	if raw == nil {
		return msgs
	}
	var l models.LightResponse
	if errs := decode(body, &l); errs != nil {
		return append(msgs, errs...)
	}
	msgs = append(msgs, inRange("light", float64(l.Light), sensor.LightRange)...)
	msgs = append(msgs, unit(l.Unit, service.UnitLux)...)
	msgs = append(msgs, classified("light", float64(l.Light), sensor.LightOptimal, l.Status)...)
	if want := string(sensor.DescribeLight(l.Light)); l.Description != want {
		msgs = append(msgs, fmt.Sprintf("light %d described %q, want %q", l.Light, l.Description, want))
	}
	return msgs
}

func checkSoil(body []byte) []string {
	msgs, raw := keys(body, "soil_moisture", "unit", "status")
	if raw == nil {
		return msgs
	}
	var s models.SoilResponse
	if errs := decode(body, &s); errs != nil {
		return append(msgs, errs...)
	}
	msgs = append(msgs, inRange("soil_moisture", float64(s.SoilMoisture), sensor.SoilMoistureRange)...)
	msgs = append(msgs, unit(s.Unit, service.UnitPercent)...)
	return append(msgs, classified("soil_moisture", float64(s.SoilMoisture), sensor.SoilMoistureOptimal, s.Status)...)
}

func checkHealth(body []byte) []string {
	msgs, raw := keys(body, "status", "device", "version")
	if raw == nil {
		return msgs
	}
	var h models.HealthResponse
	if errs := decode(body, &h); errs != nil {
		return append(msgs, errs...)
	}
	want := models.HealthResponse{Status: service.StatusOnline, Device: service.DeviceName, Version: service.FirmwareVersion}
	if h != want {
		msgs = append(msgs, fmt.Sprintf("health %+v, want %+v", h, want))
	}
	return msgs
}

func checkIndex(body []byte) []string {
	msgs, raw := keys(body, "message", "endpoints")
	if raw == nil {
		return msgs
	}
	var idx models.IndexResponse
	if errs := decode(body, &idx); errs != nil {
		return append(msgs, errs...)
	}
	if idx.Message != service.IndexMessage {
		msgs = append(msgs, fmt.Sprintf("index message %q, want %q", idx.Message, service.IndexMessage))
	}
	want := service.IndexEntries()
	if len(idx.Endpoints) != len(want) {
		return append(msgs, fmt.Sprintf("index lists %d endpoints, want %d", len(idx.Endpoints), len(want)))
	}
	for i := range want {
		if idx.Endpoints[i] != want[i] {
			msgs = append(msgs, fmt.Sprintf("index endpoint %d is %q, want %q", i, idx.Endpoints[i], want[i]))
		}
	}
	return msgs
}
