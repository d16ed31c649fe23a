package dto

// APIResponse is the standard envelope for gateway responses
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// SuccessResponse represents a standard success response for action endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}
