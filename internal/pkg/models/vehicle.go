package models

import "encoding/json"

// NearbyVehicle is a cab reported by a vehicle data source
type NearbyVehicle struct {
	ID        string  `json:"id,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Position returns the map position of the vehicle
func (v NearbyVehicle) Position() Position {
	return Position{Latitude: v.Latitude, Longitude: v.Longitude}
}

// NearbyVehiclesRequest asks a data source for cabs around an origin
type NearbyVehiclesRequest struct {
	Origin   Position `json:"origin"`
	RadiusKm float64  `json:"radius_km,omitempty"`
	Cell     string   `json:"cell,omitempty"` // geohash of the origin
}

// NearbyVehiclesResponse is the data source answer
type NearbyVehiclesResponse struct {
	Vehicles []NearbyVehicle `json:"vehicles"`
}

// Positions flattens the response into marker positions, keeping order
func (r NearbyVehiclesResponse) Positions() []Position {
	positions := make([]Position, 0, len(r.Vehicles))
	for _, v := range r.Vehicles {
		positions = append(positions, v.Position())
	}
	return positions
}

// WSMessage is the event envelope spoken by the cab simulator socket
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is the payload of an "error" event
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
