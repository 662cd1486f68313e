package handlers

// ErrorResponse is the standard error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error" example:"tracker not found"`
}

// StatusResponse is the body for acknowledgement-only endpoints such as
// enable/disable and delete.
type StatusResponse struct {
	Status string `json:"status" example:"deleted"`
}
