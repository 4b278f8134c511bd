package handlers

// ErrorResponse is the error envelope shared by every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// MessageResponse is the plain-message success envelope
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: Tweet deleted successfully
	Message string `json:"message"`
}
