package models

// SumResponse is the body returned by GET /add
type SumResponse struct {
	Sum int64 `json:"sum"`
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error string `json:"error"`
}
