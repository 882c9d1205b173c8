package models

// APIError is the error body shape for the JSON API routes (the chatbot
// route keeps its own legacy body shape).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
