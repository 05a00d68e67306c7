package handler

import (
	"github.com/piresc/nearbycabs/services/maps"
	httpHandler "github.com/piresc/nearbycabs/services/maps/handler/http"
)

// Handler combines all handlers for the maps service
type Handler struct {
	screenHTTP *httpHandler.ScreenHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	screenUC maps.ScreenUC,
	canvas httpHandler.Canvas,
	device httpHandler.Device,
) *Handler {
	return &Handler{
		screenHTTP: httpHandler.NewScreenHandler(screenUC, canvas, device),
	}
}
