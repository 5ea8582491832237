package types

import "fmt"

// AppError is an error carrying an HTTP status code and a short
// machine-readable type tag. Middleware and handlers return it so the
// global error handler can render the standard error envelope.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
