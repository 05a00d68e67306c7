package gate

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/services/maps"
	"github.com/piresc/nearbycabs/services/maps/mocks"
	"github.com/stretchr/testify/assert"
)

const testRequestCode = 999

func TestLocationGate_Evaluate(t *testing.T) {
	tests := []struct {
		name               string
		permissionGranted  bool
		locationEnabled    bool
		expectLocationCall bool
		expected           models.GateDecision
		expectedPermission models.PermissionState
		expectedEnablement models.LocationEnablementState
	}{
		{
			name:               "Permission missing",
			permissionGranted:  false,
			expected:           models.GateNeedsPermission,
			expectedPermission: models.PermissionDenied,
			expectedEnablement: models.LocationEnablementUnknown,
		},
		{
			name:               "Granted but location disabled",
			permissionGranted:  true,
			locationEnabled:    false,
			expectLocationCall: true,
			expected:           models.GateNeedsGPS,
			expectedPermission: models.PermissionGranted,
			expectedEnablement: models.LocationDisabled,
		},
		{
			name:               "Granted and enabled",
			permissionGranted:  true,
			locationEnabled:    true,
			expectLocationCall: true,
			expected:           models.GateProceed,
			expectedPermission: models.PermissionGranted,
			expectedEnablement: models.LocationEnabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPrompts := mocks.NewMockPromptService(ctrl)
			mockPrompts.EXPECT().IsPermissionGranted().Return(tt.permissionGranted)
			if tt.expectLocationCall {
				mockPrompts.EXPECT().IsLocationEnabled().Return(tt.locationEnabled)
			}

			g := NewLocationGate(mockPrompts, testRequestCode)

			// Act
			decision := g.Evaluate()

			// Assert
			assert.Equal(t, tt.expected, decision)
			permission, enablement := g.States()
			assert.Equal(t, tt.expectedPermission, permission)
			assert.Equal(t, tt.expectedEnablement, enablement)
		})
	}
}

func TestLocationGate_OnPermissionResult(t *testing.T) {
	tests := []struct {
		name               string
		requestCode        int
		granted            bool
		locationEnabled    *bool
		expected           models.GateDecision
		expectedErr        error
		expectedPermission models.PermissionState
	}{
		{
			name:               "Denied",
			requestCode:        testRequestCode,
			granted:            false,
			expected:           models.GateNeedsPermission,
			expectedErr:        maps.ErrPermissionDenied,
			expectedPermission: models.PermissionDenied,
		},
		{
			name:               "Granted with location enabled",
			requestCode:        testRequestCode,
			granted:            true,
			locationEnabled:    boolPtr(true),
			expected:           models.GateProceed,
			expectedPermission: models.PermissionGranted,
		},
		{
			name:               "Granted with location disabled",
			requestCode:        testRequestCode,
			granted:            true,
			locationEnabled:    boolPtr(false),
			expected:           models.GateNeedsGPS,
			expectedErr:        maps.ErrLocationServiceDisabled,
			expectedPermission: models.PermissionGranted,
		},
		{
			name:               "Unknown request code",
			requestCode:        42,
			granted:            true,
			expected:           models.GateNeedsPermission,
			expectedErr:        maps.ErrUnexpectedRequestCode,
			expectedPermission: models.PermissionUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPrompts := mocks.NewMockPromptService(ctrl)
			if tt.locationEnabled != nil {
				mockPrompts.EXPECT().IsLocationEnabled().Return(*tt.locationEnabled)
			}

			g := NewLocationGate(mockPrompts, testRequestCode)

			// Act
			decision, err := g.OnPermissionResult(tt.requestCode, tt.granted)

			// Assert
			assert.Equal(t, tt.expected, decision)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			permission, _ := g.States()
			assert.Equal(t, tt.expectedPermission, permission)
		})
	}
}

func TestLocationGate_RequestCode(t *testing.T) {
	g := NewLocationGate(nil, 1234)
	assert.Equal(t, 1234, g.RequestCode())
}

func boolPtr(b bool) *bool {
	return &b
}
