package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nearbycabs/internal/pkg/middleware"
	"github.com/piresc/nearbycabs/internal/pkg/models"
)

// RegisterRoutes registers all HTTP routes. Routes require a bearer token when a JWT secret is configured.
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	var api *echo.Group
	if jwtConfig.Secret != "" {
		api = e.Group("/v1", middleware.JWTAuthMiddleware(jwtConfig))
	} else {
		api = e.Group("/v1")
	}

	screen := api.Group("/screen")
	screen.GET("", h.screenHTTP.GetScreen)
	screen.POST("", h.screenHTTP.CreateScreen)
	screen.DELETE("", h.screenHTTP.DestroyScreen)
	screen.POST("/start", h.screenHTTP.StartScreen)
	screen.POST("/map", h.screenHTTP.MapReady)
	screen.POST("/permission", h.screenHTTP.PermissionResult)

	device := api.Group("/device")
	device.GET("", h.screenHTTP.GetDevice)
	device.PUT("", h.screenHTTP.UpdateDevice)
}
