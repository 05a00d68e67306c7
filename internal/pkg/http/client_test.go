package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name            string
		url             string
		timeout         time.Duration
		expectedURL     string
		expectedTimeout time.Duration
	}{
		{name: "Valid configuration", url: "https://api.example.com", timeout: 30 * time.Second, expectedURL: "https://api.example.com", expectedTimeout: 30 * time.Second},
		{name: "With trailing slash", url: "https://api.example.com/", timeout: 5 * time.Second, expectedURL: "https://api.example.com", expectedTimeout: 5 * time.Second},
		{name: "Default timeout", url: "http://localhost:9991", expectedURL: "http://localhost:9991", expectedTimeout: 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.url, tt.timeout)

			assert.Equal(t, tt.expectedURL, client.BaseURL)
			assert.Equal(t, tt.expectedTimeout, client.HTTPClient.Timeout)
		})
	}
}

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/drivers/nearby", r.URL.Path)
		assert.Equal(t, "12.9", r.URL.Query().Get("lat"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":2}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	var out struct {
		Count int `json:"count"`
	}
	err := client.GetJSON(context.Background(), "/drivers/nearby", url.Values{"lat": []string{"12.9"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
}

func TestClient_GetJSON_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("down"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	var out map[string]interface{}
	err := client.GetJSON(context.Background(), "/drivers/nearby", nil, &out)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, "down", httpErr.Body)
}

func TestClient_GetJSON_InvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not-json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	var out map[string]interface{}
	err := client.GetJSON(context.Background(), "/", nil, &out)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

func TestClient_GetJSON_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"vehicles":"` + strings.Repeat("x", MaxResponseBytes) + `"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	var out map[string]interface{}
	err := client.GetJSON(context.Background(), "/", nil, &out)

	assert.ErrorIs(t, err, ErrResponseTooLarge)
	assert.Nil(t, out)
}
