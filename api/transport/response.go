package transport

import "encoding/json"

// Envelope is the uniform wrapper applied to every JSON response body.
// Responses with no body (204) bypass it entirely.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody is the normalized shape of every failure response.
type ErrorBody struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Details    []string `json:"details,omitempty"`
	StatusCode int      `json:"statusCode"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
	}
}

// NewError returns an error envelope. Details carries per-field validation
// messages and is omitted when empty.
func NewError(statusCode int, code, message string, details []string) Envelope {
	return Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:       code,
			Message:    message,
			Details:    details,
			StatusCode: statusCode,
		},
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
