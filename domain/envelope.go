package domain

// Envelope is the success/message/data wrapper every backend endpoint uses.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}
