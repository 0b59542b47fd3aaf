package controller

import (
	"net/http"

	"CapIot.esp32mock/internal/models"
	"CapIot.esp32mock/internal/service"
	"CapIot.esp32mock/internal/utils"
)

// AllowedMethods is advertised in the Allow header of OPTIONS and 405 responses.
const AllowedMethods = "GET, HEAD, OPTIONS"

// DeviceController handles HTTP requests for the simulated device.
type DeviceController struct {
	service *service.SensorService
}

// NewDeviceController creates a new DeviceController.
func NewDeviceController(service *service.SensorService) *DeviceController {
	return &DeviceController{
		service: service,
	}
}

// HandleStatus returns a full reading with recommendations.
func (c *DeviceController) HandleStatus(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, r, http.StatusOK, c.service.Status())
}

// HandleTemperature returns one temperature draw and its classification.
func (c *DeviceController) HandleTemperature(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, r, http.StatusOK, c.service.Temperature())
}

// HandleHumidity returns one humidity draw.
func (c *DeviceController) HandleHumidity(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, r, http.StatusOK, c.service.Humidity())
}

// HandleLight returns one light draw with its classification and description.
func (c *DeviceController) HandleLight(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, r, http.StatusOK, c.service.Light())
}

// HandleSoil returns one soil moisture draw and its classification.
func (c *DeviceController) HandleSoil(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, r, http.StatusOK, c.service.Soil())
}

// HandleHealth is the liveness probe.
func (c *DeviceController) HandleHealth(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, r, http.StatusOK, c.service.Health())
}

// HandleIndex lists the available endpoints.
func (c *DeviceController) HandleIndex(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, r, http.StatusOK, c.service.Index())
}

// HandleOptions answers a plain OPTIONS request on a known route.
// CORS preflights never get here; the CORS middleware answers them.
func (c *DeviceController) HandleOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", AllowedMethods)
	w.WriteHeader(http.StatusNoContent)
}

// HandleNotFound answers paths outside the route table.
func (c *DeviceController) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithError(w, r, models.RouteNotFound(r.URL.Path))
}

// HandleMethodNotAllowed answers known paths requested with an unsupported method.
func (c *DeviceController) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", AllowedMethods)
	utils.RespondWithError(w, r, models.MethodNotAllowed(r.Method, r.URL.Path))
}
