package handlers

import "github.com/mmdatafocus/tracking_backend/models"

const (
	welcomeMessage = "Welcome to the Barcode API"
	noDataMessage  = "No data available. Please generate data first."
)

type SearchRequest struct {
	PiecePins []string `json:"piece_pins" binding:"required"`
}

type SearchResponse struct {
	Results []models.ShipmentScan `json:"results"`
	Total   int                   `json:"total"`
}

type ExportRequest struct {
	PiecePins []string `json:"piece_pins" binding:"required"`
	Columns   []string `json:"columns"`
}

type KeysResponse struct {
	PiecePins []string `json:"piece_pins"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	Min    *int              `json:"min,omitempty"`
	Max    *int              `json:"max,omitempty"`
}
