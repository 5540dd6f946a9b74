package dto

// APIResponse is the standard envelope for API responses
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// SuccessResponse represents a standard success response with a message only
type SuccessResponse struct {
	Message string `json:"message"`
}

// NewSuccessResponse creates a message-only success response
func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{Message: message}
}

// SessionStatusResponse reports whether a session cookie is valid.
type SessionStatusResponse struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	RecordID   int64  `json:"recordId,omitempty"`
	Email      string `json:"email,omitempty"`
}
