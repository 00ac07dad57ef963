package res

type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    map[string]interface{} `json:"body,omitempty"`
}

type ErrorRes struct {
	Err        error
	StatusCode int
	// Optional field that caused the error, sent back as body.campo
	Field string
}

func (e *ErrorRes) Error() string {
	return e.Err.Error()
}

// Event published to NATS after a write
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Author    string      `json:"author,omitempty"`
	Reference string      `json:"reference"`
	Data      interface{} `json:"data,omitempty"`
}
