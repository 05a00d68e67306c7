package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/services/maps/mocks"
	"github.com/piresc/nearbycabs/services/maps/prompts"
	"github.com/piresc/nearbycabs/services/maps/surface"
	"github.com/piresc/nearbycabs/services/maps/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screenEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    ScreenResponse `json:"data"`
	Error   string         `json:"error"`
}

func newTestHandler(t *testing.T) (*ScreenHandler, *mocks.MockScreenUC, *surface.MemoryCanvas, *prompts.HostPrompts) {
	t.Helper()
	ctrl := gomock.NewController(t)
	screenUC := mocks.NewMockScreenUC(ctrl)
	canvas := surface.NewMemoryCanvas()
	device := prompts.New(false, true)
	return NewScreenHandler(screenUC, canvas, device), screenUC, canvas, device
}

func newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	request := httptest.NewRequest(method, "/", strings.NewReader(body))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func decodeScreen(t *testing.T, recorder *httptest.ResponseRecorder) screenEnvelope {
	t.Helper()
	var envelope screenEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

func TestNewScreenHandler(t *testing.T) {
	handler, screenUC, canvas, device := newTestHandler(t)

	assert.NotNil(t, handler)
	assert.Equal(t, screenUC, handler.screenUC)
	assert.Equal(t, canvas, handler.canvas)
	assert.Equal(t, device, handler.device)
}

func TestScreenHandler_Lifecycle(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		call        func(h *ScreenHandler, c echo.Context) error
		setupMock   func(screenUC *mocks.MockScreenUC, canvas *surface.MemoryCanvas)
		wantStatus  int
		wantMessage string
	}{
		{
			name:   "Create",
			method: http.MethodPost,
			call:   (*ScreenHandler).CreateScreen,
			setupMock: func(screenUC *mocks.MockScreenUC, _ *surface.MemoryCanvas) {
				screenUC.EXPECT().OnCreate().Times(1)
			},
			wantStatus:  http.StatusCreated,
			wantMessage: "Screen created",
		},
		{
			name:   "Start",
			method: http.MethodPost,
			call:   (*ScreenHandler).StartScreen,
			setupMock: func(screenUC *mocks.MockScreenUC, _ *surface.MemoryCanvas) {
				screenUC.EXPECT().OnStart().Times(1)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Screen started",
		},
		{
			name:   "Map ready hands over the canvas",
			method: http.MethodPost,
			call:   (*ScreenHandler).MapReady,
			setupMock: func(screenUC *mocks.MockScreenUC, canvas *surface.MemoryCanvas) {
				screenUC.EXPECT().OnMapReady(canvas).Times(1)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Map ready",
		},
		{
			name:   "Destroy",
			method: http.MethodDelete,
			call:   (*ScreenHandler).DestroyScreen,
			setupMock: func(screenUC *mocks.MockScreenUC, _ *surface.MemoryCanvas) {
				screenUC.EXPECT().OnDestroy().Times(1)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Screen destroyed",
		},
		{
			name:        "Get",
			method:      http.MethodGet,
			call:        (*ScreenHandler).GetScreen,
			setupMock:   func(*mocks.MockScreenUC, *surface.MemoryCanvas) {},
			wantStatus:  http.StatusOK,
			wantMessage: "Screen retrieved successfully",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler, screenUC, canvas, _ := newTestHandler(t)
			tt.setupMock(screenUC, canvas)
			screenUC.EXPECT().Snapshot().Return(models.ScreenSnapshot{
				State:    models.ScreenTrackingUnset,
				Attached: true,
				Markers:  []models.MarkerHandle{},
			})
			c, recorder := newContext(tt.method, "")

			// Act
			err := tt.call(handler, c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			envelope := decodeScreen(t, recorder)
			assert.True(t, envelope.Success)
			assert.Equal(t, tt.wantMessage, envelope.Message)
			assert.True(t, envelope.Data.Screen.Attached)
			assert.Contains(t, recorder.Body.String(), `"state":"tracking_unset"`)
		})
	}
}

func TestScreenHandler_GetScreen_IncludesCanvas(t *testing.T) {
	handler, screenUC, canvas, _ := newTestHandler(t)
	position := models.NewPosition(12.9, 77.6)
	canvas.SetMyLocationIndicator(true, 48)
	canvas.MoveCamera(position)
	canvas.AnimateCamera(position, 15.5)
	canvas.AddMarker(models.MarkerOptions{Position: models.NewPosition(12.91, 77.61), Flat: true, Icon: "ic_car"})
	screenUC.EXPECT().Snapshot().Return(models.ScreenSnapshot{State: models.ScreenTrackingSet})
	c, recorder := newContext(http.MethodGet, "")

	require.NoError(t, handler.GetScreen(c))

	envelope := decodeScreen(t, recorder)
	require.NotNil(t, envelope.Data.Canvas.Camera.Target)
	assert.Equal(t, position, *envelope.Data.Canvas.Camera.Target)
	assert.Equal(t, 15.5, envelope.Data.Canvas.Camera.Zoom)
	assert.True(t, envelope.Data.Canvas.MyLocationEnabled)
	assert.Equal(t, 48, envelope.Data.Canvas.TopPaddingPx)
	require.Len(t, envelope.Data.Canvas.Markers, 1)
	assert.True(t, envelope.Data.Canvas.Markers[0].Options.Flat)
}

func TestScreenHandler_PermissionResult(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		pendingCode  *int
		setupMock    func(screenUC *mocks.MockScreenUC)
		wantStatus   int
		wantError    string
		wantGranted  bool
		wantSnapshot bool
		wantPending  bool
	}{
		{
			name:        "Granted",
			body:        `{"request_code":999,"granted":true}`,
			pendingCode: intPtr(999),
			setupMock: func(screenUC *mocks.MockScreenUC) {
				screenUC.EXPECT().OnPermissionResult(999, true).Times(1)
			},
			wantStatus:   http.StatusOK,
			wantGranted:  true,
			wantSnapshot: true,
		},
		{
			name:        "Denied",
			body:        `{"request_code":999,"granted":false}`,
			pendingCode: intPtr(999),
			setupMock: func(screenUC *mocks.MockScreenUC) {
				screenUC.EXPECT().OnPermissionResult(999, false).Times(1)
			},
			wantStatus:   http.StatusOK,
			wantSnapshot: true,
		},
		{
			name:        "Foreign request code is still delivered",
			body:        `{"request_code":7,"granted":true}`,
			pendingCode: intPtr(999),
			setupMock: func(screenUC *mocks.MockScreenUC) {
				screenUC.EXPECT().OnPermissionResult(7, true).Times(1)
			},
			wantStatus:   http.StatusOK,
			wantSnapshot: true,
			wantPending:  true,
		},
		{
			name: "No prompt open is still delivered",
			body: `{"request_code":999,"granted":true}`,
			setupMock: func(screenUC *mocks.MockScreenUC) {
				screenUC.EXPECT().OnPermissionResult(999, true).Times(1)
			},
			wantStatus: http.StatusConflict,
			wantError:  "No permission prompt is open",
		},
		{
			name:        "Missing request code",
			body:        `{"granted":true}`,
			pendingCode: intPtr(999),
			setupMock:   func(*mocks.MockScreenUC) {},
			wantStatus:  http.StatusBadRequest,
			wantError:   "Request code is required",
			wantPending: true,
		},
		{
			name:        "Malformed body",
			body:        `{"request_code":`,
			pendingCode: intPtr(999),
			setupMock:   func(*mocks.MockScreenUC) {},
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid request format",
			wantPending: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler, screenUC, _, device := newTestHandler(t)
			if tt.pendingCode != nil {
				device.RequestPermission(*tt.pendingCode)
			}
			tt.setupMock(screenUC)
			if tt.wantSnapshot {
				screenUC.EXPECT().Snapshot().Return(models.ScreenSnapshot{})
			}
			c, recorder := newContext(http.MethodPost, tt.body)

			// Act
			err := handler.PermissionResult(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			envelope := decodeScreen(t, recorder)
			assert.Equal(t, tt.wantError, envelope.Error)
			assert.Equal(t, tt.wantGranted, device.IsPermissionGranted())
			assert.Equal(t, tt.wantPending, device.Snapshot().PendingRequestCode != nil)
		})
	}
}

func TestScreenHandler_PermissionResult_ForeignCodeThenDenial(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	canvas := surface.NewMemoryCanvas()
	device := prompts.New(false, true)
	screenUC := usecase.NewScreenUC(&models.Config{Maps: models.MapsConfig{
		PermissionRequestCode:  999,
		PermissionDeniedNotice: "Location permission not granted",
	}}, device, mocks.NewMockLocationProvider(ctrl), mocks.NewMockVehicleGW(ctrl))
	handler := NewScreenHandler(screenUC, canvas, device)

	screenUC.OnCreate()
	screenUC.OnStart()
	require.Equal(t, models.ScreenAwaitingPermission, screenUC.Snapshot().State)

	// Act: an answer for another prompt first, then the real denial
	c, recorder := newContext(http.MethodPost, `{"request_code":7,"granted":true}`)
	require.NoError(t, handler.PermissionResult(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, models.ScreenAwaitingPermission, screenUC.Snapshot().State)
	assert.False(t, device.IsPermissionGranted())

	c, recorder = newContext(http.MethodPost, `{"request_code":999,"granted":false}`)
	require.NoError(t, handler.PermissionResult(c))

	// Assert
	assert.Equal(t, http.StatusOK, recorder.Code)
	envelope := decodeScreen(t, recorder)
	assert.Equal(t, models.ScreenIdle, envelope.Data.Screen.State)
	assert.Equal(t, "Location permission not granted", envelope.Data.Screen.LastNotice)
	assert.Equal(t, []string{"Location permission not granted"}, device.Snapshot().Notices)
	assert.Nil(t, device.Snapshot().PendingRequestCode)
}

func TestScreenHandler_Device(t *testing.T) {
	handler, _, _, device := newTestHandler(t)

	c, recorder := newContext(http.MethodPut, `{"permission_granted":true,"location_enabled":false}`)
	require.NoError(t, handler.UpdateDevice(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, device.IsPermissionGranted())
	assert.False(t, device.IsLocationEnabled())

	c, recorder = newContext(http.MethodPut, `{"location_enabled":true}`)
	require.NoError(t, handler.UpdateDevice(c))
	assert.True(t, device.IsPermissionGranted())
	assert.True(t, device.IsLocationEnabled())

	device.ShowNotice("Location permission not granted")
	c, recorder = newContext(http.MethodGet, "")
	require.NoError(t, handler.GetDevice(c))

	var envelope struct {
		Data models.PromptsSnapshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.PermissionGranted)
	assert.Equal(t, []string{"Location permission not granted"}, envelope.Data.Notices)
}

func TestScreenHandler_UpdateDevice_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{name: "Empty update", body: `{}`, wantError: "Nothing to update"},
		{name: "Malformed body", body: `{"permission_granted":`, wantError: "Invalid request format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, _, _ := newTestHandler(t)
			c, recorder := newContext(http.MethodPut, tt.body)

			require.NoError(t, handler.UpdateDevice(c))

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantError)
		})
	}
}

func intPtr(v int) *int {
	return &v
}
