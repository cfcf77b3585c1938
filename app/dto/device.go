package dto

import "time"

type DeviceRequest struct {
	SerialNumber string `json:"serial_number"`
	AssetTag     string `json:"asset_tag"`
	DeviceName   string `json:"device_name"`
}

type DeviceResponse struct {
	ID              uint       `json:"id"`
	SerialNumber    string     `json:"serial_number"`
	AssetTag        string     `json:"asset_tag"`
	DeviceName      string     `json:"device_name"`
	LastSubmittedAt *time.Time `json:"last_submitted_at,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
