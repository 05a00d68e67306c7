package utils

import (
	"testing"

	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		name        string
		route       string
		expected    []models.Position
		expectError bool
	}{
		{
			name:     "Two points",
			route:    "12.9,77.6;12.91,77.61",
			expected: []models.Position{models.NewPosition(12.9, 77.6), models.NewPosition(12.91, 77.61)},
		},
		{
			name:     "Whitespace and trailing separator",
			route:    " 12.9, 77.6 ; ",
			expected: []models.Position{models.NewPosition(12.9, 77.6)},
		},
		{name: "Empty", route: "", expectError: true},
		{name: "Only separators", route: ";;", expectError: true},
		{name: "Missing longitude", route: "12.9", expectError: true},
		{name: "Not a number", route: "abc,77.6", expectError: true},
		{name: "Out of range", route: "91,77.6", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRoute(tt.route)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
