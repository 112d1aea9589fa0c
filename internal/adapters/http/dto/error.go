package dto

// ErrorResponse is the uniform error body for every endpoint. Stage names
// the pipeline stage that failed, when one did.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Stage   string `json:"stage,omitempty"`
}
