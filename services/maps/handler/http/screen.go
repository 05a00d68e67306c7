package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/internal/utils"
	"github.com/piresc/nearbycabs/services/maps"
	"github.com/piresc/nearbycabs/services/maps/prompts"
)

// Canvas is the render surface the host hands to the screen
type Canvas interface {
	maps.RenderSurface
	Snapshot() models.CanvasSnapshot
}

// Device stands in for the phone: it answers prompts and owns the permission and GPS switches
type Device interface {
	Resolve(requestCode int, granted bool) error
	SetPermissionGranted(granted bool)
	SetLocationEnabled(enabled bool)
	Snapshot() models.PromptsSnapshot
}

// ScreenHandler drives the map screen lifecycle over HTTP
type ScreenHandler struct {
	screenUC maps.ScreenUC
	canvas   Canvas
	device   Device
}

// NewScreenHandler creates a new screen HTTP handler
func NewScreenHandler(screenUC maps.ScreenUC, canvas Canvas, device Device) *ScreenHandler {
	return &ScreenHandler{
		screenUC: screenUC,
		canvas:   canvas,
		device:   device,
	}
}

// ScreenResponse is the screen together with what is drawn on its map
type ScreenResponse struct {
	Screen models.ScreenSnapshot `json:"screen"`
	Canvas models.CanvasSnapshot `json:"canvas"`
}

// PermissionResultRequest is the user's answer to the permission prompt
type PermissionResultRequest struct {
	RequestCode *int `json:"request_code"`
	Granted     bool `json:"granted"`
}

// DeviceSettingsRequest flips device switches; omitted fields are left alone
type DeviceSettingsRequest struct {
	PermissionGranted *bool `json:"permission_granted"`
	LocationEnabled   *bool `json:"location_enabled"`
}

func (h *ScreenHandler) screen() ScreenResponse {
	return ScreenResponse{
		Screen: h.screenUC.Snapshot(),
		Canvas: h.canvas.Snapshot(),
	}
}

// GetScreen reports the screen and its map
func (h *ScreenHandler) GetScreen(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Screen retrieved successfully", h.screen())
}

// CreateScreen attaches the screen
func (h *ScreenHandler) CreateScreen(c echo.Context) error {
	h.screenUC.OnCreate()
	return utils.SuccessResponse(c, http.StatusCreated, "Screen created", h.screen())
}

// DestroyScreen releases the screen
func (h *ScreenHandler) DestroyScreen(c echo.Context) error {
	h.screenUC.OnDestroy()
	return utils.SuccessResponse(c, http.StatusOK, "Screen destroyed", h.screen())
}

// StartScreen brings the screen to the foreground
func (h *ScreenHandler) StartScreen(c echo.Context) error {
	h.screenUC.OnStart()
	return utils.SuccessResponse(c, http.StatusOK, "Screen started", h.screen())
}

// MapReady hands the canvas to the screen
func (h *ScreenHandler) MapReady(c echo.Context) error {
	h.screenUC.OnMapReady(h.canvas)
	return utils.SuccessResponse(c, http.StatusOK, "Map ready", h.screen())
}

// PermissionResult answers the open permission prompt
func (h *ScreenHandler) PermissionResult(c echo.Context) error {
	var req PermissionResultRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.RequestCode == nil {
		return utils.BadRequestResponse(c, "Request code is required")
	}

	err := h.device.Resolve(*req.RequestCode, req.Granted)
	if err != nil && !errors.Is(err, prompts.ErrNoPendingPermission) {
		logger.Error("Failed to resolve permission prompt", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to resolve permission prompt")
	}

	// the screen decides by its own state whether the answer still matters
	h.screenUC.OnPermissionResult(*req.RequestCode, req.Granted)
	if err != nil {
		return utils.ConflictResponse(c, "No permission prompt is open")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Permission result delivered", h.screen())
}

// GetDevice reports the device switches and the prompts shown so far
func (h *ScreenHandler) GetDevice(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Device retrieved successfully", h.device.Snapshot())
}

// UpdateDevice flips the device switches
func (h *ScreenHandler) UpdateDevice(c echo.Context) error {
	var req DeviceSettingsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.PermissionGranted == nil && req.LocationEnabled == nil {
		return utils.BadRequestResponse(c, "Nothing to update")
	}

	if req.PermissionGranted != nil {
		h.device.SetPermissionGranted(*req.PermissionGranted)
	}
	if req.LocationEnabled != nil {
		h.device.SetLocationEnabled(*req.LocationEnabled)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Device updated", h.device.Snapshot())
}
