package service

import (
	"CapIot.esp32mock/internal/models"
	"CapIot.esp32mock/internal/sensor"
	"github.com/rs/zerolog"
)

// Fixed identity reported by the health endpoint.
const (
	DeviceName      = "ESP32_MOCK"
	FirmwareVersion = "1.0.0"
	StatusOnline    = "online"
	IndexMessage    = "ESP32 Mock Server"
)

const (
	UnitCelsius = "celsius"
	UnitPercent = "percent"
	UnitLux     = "lux"
)

// Endpoint is one advertised API route.
type Endpoint struct {
	Path        string
	Description string
}

// Endpoints is the route list advertised at the root path.
var Endpoints = []Endpoint{
	{Path: "/api/status", Description: "Get all sensor data"},
	{Path: "/api/temperature", Description: "Get temperature only"},
	{Path: "/api/humidity", Description: "Get humidity only"},
	{Path: "/api/light", Description: "Get light level only"},
	{Path: "/api/soil", Description: "Get soil moisture only"},
	{Path: "/api/health", Description: "Health check"},
}

// SensorService turns raw draws into API payloads.
type SensorService struct {
	source sensor.Source
	logger zerolog.Logger
}

// NewSensorService creates a new SensorService.
func NewSensorService(source sensor.Source, logger zerolog.Logger) *SensorService {
	return &SensorService{
		source: source,
		logger: logger.With().Str("component", "SensorService").Logger(),
	}
}

// Status samples every sensor and classifies temperature, light and soil moisture.
func (s *SensorService) Status() models.StatusResponse {
	r := sensor.Sample(s.source)
	s.logger.Debug().
		Float64("temperature", r.Temperature).
		Float64("humidity", r.Humidity).
		Int("light", r.Light).
		Float64("soil_moisture", r.SoilMoisture).
		Str("mood", string(r.Mood)).
		Msg("Generated sensor reading")

	return models.StatusResponse{
		SensorReading: models.SensorReading{
			Timestamp:    r.Time.Format(sensor.TimestampLayout),
			Temperature:  models.Tenths(r.Temperature),
			Humidity:     models.Tenths(r.Humidity),
			Light:        r.Light,
			SoilMoisture: models.Tenths(r.SoilMoisture),
			Status:       string(r.Mood),
			DeviceID:     sensor.DeviceID,
		},
		Recommendations: models.Recommendations{
			Temperature:  string(sensor.TemperatureOptimal.Classify(r.Temperature)),
			Light:        string(sensor.LightOptimal.Classify(float64(r.Light))),
			SoilMoisture: string(sensor.SoilMoistureOptimal.Classify(r.SoilMoisture)),
		},
	}
}

// Temperature draws one temperature and classifies it against the optimal band.
func (s *SensorService) Temperature() models.TemperatureResponse {
	t := s.source.Temperature()
	return models.TemperatureResponse{
		Temperature: models.Tenths(t),
		Unit:        UnitCelsius,
		Status:      string(sensor.TemperatureOptimal.Classify(t)),
	}
}

// Humidity has no optimal band, so it carries no status.
func (s *SensorService) Humidity() models.HumidityResponse {
	return models.HumidityResponse{
		Humidity: models.Tenths(s.source.Humidity()),
		Unit:     UnitPercent,
	}
}

// Light draws one light level, classifies it and labels it bright or dark.
func (s *SensorService) Light() models.LightResponse {
	l := s.source.Light()
	return models.LightResponse{
		Light:       l,
		Unit:        UnitLux,
		Status:      string(sensor.LightOptimal.Classify(float64(l))),
		Description: string(sensor.DescribeLight(l)),
	}
}

// Soil draws one soil moisture value and classifies it.
func (s *SensorService) Soil() models.SoilResponse {
	m := s.source.SoilMoisture()
	return models.SoilResponse{
		SoilMoisture: models.Tenths(m),
		Unit:         UnitPercent,
		Status:       string(sensor.SoilMoistureOptimal.Classify(m)),
	}
}

// Health returns the fixed liveness document.
func (s *SensorService) Health() models.HealthResponse {
	return models.HealthResponse{
		Status:  StatusOnline,
		Device:  DeviceName,
		Version: FirmwareVersion,
	}
}

// Index describes the API for the root path.
func (s *SensorService) Index() models.IndexResponse {
	return models.IndexResponse{
		Message:   IndexMessage,
		Endpoints: IndexEntries(),
	}
}

// IndexEntries renders Endpoints as "path - description" lines.
func IndexEntries() []string {
	entries := make([]string, 0, len(Endpoints))
	for _, e := range Endpoints {
		entries = append(entries, e.Path+" - "+e.Description)
	}
	return entries
}
