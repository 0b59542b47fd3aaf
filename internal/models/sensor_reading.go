package models

// SensorReading is a full snapshot as returned by /api/status.
type SensorReading struct {
	Timestamp    string `json:"timestamp"`
	Temperature  Tenths `json:"temperature"`
	Humidity     Tenths `json:"humidity"`
	Light        int    `json:"light"`
	SoilMoisture Tenths `json:"soil_moisture"`
	Status       string `json:"status"`
	DeviceID     string `json:"device_id"`
}

// Recommendations holds the classifier output for the metrics that have an optimal band.
type Recommendations struct {
	Temperature  string `json:"temperature"`
	Light        string `json:"light"`
	SoilMoisture string `json:"soil_moisture"`
}

type StatusResponse struct {
	SensorReading
	Recommendations Recommendations `json:"recommendations"`
}

type TemperatureResponse struct {
	Temperature Tenths `json:"temperature"`
	Unit        string `json:"unit"`
	Status      string `json:"status"`
}

type HumidityResponse struct {
	Humidity Tenths `json:"humidity"`
	Unit     string `json:"unit"`
}

type LightResponse struct {
	Light       int    `json:"light"`
	Unit        string `json:"unit"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type SoilResponse struct {
	SoilMoisture Tenths `json:"soil_moisture"`
	Unit         string `json:"unit"`
	Status       string `json:"status"`
}
