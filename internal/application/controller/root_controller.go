package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusResponse is returned by the service root
type StatusResponse struct {
	Status  string `json:"status" example:"online"`
	Message string `json:"message" example:"Weather API is running"`
	Version string `json:"version" example:"2.0.0"`
}

type RootController struct {
	api     *echo.Group
	version string
}

func NewRootController(api *echo.Group, version string) *RootController {
	return &RootController{api: api, version: version}
}

// InitRootRoutes initializes the service root route
func (controller *RootController) InitRootRoutes() {
	controller.api.GET("/", controller.Status)
}

// Status godoc
// @Summary Service status
// @Description Reports that the API is online
// @Tags root
// @Produce json
// @Success 200 {object} controller.StatusResponse
// @Router / [get]
func (controller *RootController) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{
		Status:  "online",
		Message: "Weather API is running",
		Version: controller.version,
	})
}
