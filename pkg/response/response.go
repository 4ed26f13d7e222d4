package response

import "time"

// Envelope is the uniform wire shape shared by every success and error
// response of the API.
type Envelope map[string]interface{}

// Result carries the handler-supplied part of a response before shaping.
// Zero values fall back to the documented defaults: Success=true,
// StatusCode=200, Key="data".
type Result struct {
	Success    *bool
	StatusCode int
	Message    string
	Data       interface{}
	Key        string
}

// RequestInfo carries the request-scoped fields stamped onto every envelope.
type RequestInfo struct {
	Path      string
	Method    string
	RequestID string
}

// Failure marks a Result as unsuccessful.
func Failure() *bool {
	f := false
	return &f
}

// Shape normalizes a Result into the response envelope. The data payload is
// placed under Result.Key ("data" when empty). Pure transformation, no I/O.
func Shape(result Result, req RequestInfo) Envelope {
	success := true
	if result.Success != nil {
		success = *result.Success
	}

	statusCode := result.StatusCode
	if statusCode == 0 {
		statusCode = 200
	}

	key := result.Key
	if key == "" {
		key = "data"
	}

	envelope := Envelope{
		"success":    success,
		"statusCode": statusCode,
		"message":    result.Message,
		"path":       req.Path,
		"method":     req.Method,
		"requestId":  req.RequestID,
		"timestamp":  time.Now().Format(time.RFC3339),
	}
	envelope[key] = result.Data

	return envelope
}
