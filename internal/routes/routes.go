package routes

import (
	"net/http"

	"CapIot.esp32mock/internal/controller"
	"github.com/gorilla/mux"
)

// NewRouter builds the device route table.
func NewRouter(c *controller.DeviceController) *mux.Router {
	router := mux.NewRouter()
	RegisterRoutes(router, c)
	return router
}

// RegisterRoutes registers all device routes. Every route answers GET and
// HEAD, and a plain OPTIONS with its Allow header. Other methods on a known
// path get a 405 and unknown paths a 404.
func RegisterRoutes(router *mux.Router, c *controller.DeviceController) {
	handle := func(path string, h http.HandlerFunc) {
		router.HandleFunc(path, h).Methods(http.MethodGet, http.MethodHead)
		router.HandleFunc(path, c.HandleOptions).Methods(http.MethodOptions)
	}

	handle("/", c.HandleIndex)

	handle("/api/status", c.HandleStatus)
	handle("/api/temperature", c.HandleTemperature)
	handle("/api/humidity", c.HandleHumidity)
	handle("/api/light", c.HandleLight)
	handle("/api/soil", c.HandleSoil)
	handle("/api/health", c.HandleHealth)

	router.NotFoundHandler = http.HandlerFunc(c.HandleNotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(c.HandleMethodNotAllowed)
}
