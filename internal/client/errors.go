package client

import (
	"encoding/json"
	"errors"
	"net/url"
)

// Fixed messages for failures that carry no usable detail of their own.
const (
	genericServerMessage = "An error occurred"
	networkMessage       = "Network error - please check your connection"
	genericClientMessage = "An unexpected error occurred"
	unknownFailureStatus = 500 // sentinel for client-side/unknown failures, not a real HTTP code
)

// APIError is the uniform failure shape shown to users: a human-readable
// message and the HTTP status that produced it (or the 500 sentinel when
// no response was received).
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return e.Message
}

// responseError builds an APIError from an error response body. The
// backend sends structured errors as {"detail": "..."}.
func responseError(status int, body []byte) *APIError {
	var errResp struct {
		Detail string `json:"detail"`
	}
	msg := genericServerMessage
	if json.Unmarshal(body, &errResp) == nil && errResp.Detail != "" {
		msg = errResp.Detail
	}
	return &APIError{Message: msg, Status: status}
}

// Normalize converts any failure from a Client call into an *APIError.
// It is a pure function: the same input always yields the same shape, and
// it never panics.
//
//   - A server response with a status code keeps its detail message and
//     status.
//   - A transport failure (request sent, nothing received) becomes the
//     fixed network message with the 500 sentinel.
//   - Anything else keeps its own description with the 500 sentinel.
func Normalize(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Op != "parse" {
		return &APIError{Message: networkMessage, Status: unknownFailureStatus}
	}

	msg := genericClientMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &APIError{Message: msg, Status: unknownFailureStatus}
}
