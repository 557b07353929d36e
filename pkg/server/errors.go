/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/datacheck/datacheck/pkg/serializer"
)

// Error codes as constants
const (
	ErrCodeRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable   = "SERVICE_UNAVAILABLE"
	ErrCodeInvalidRequest       = "INVALID_REQUEST"
	ErrCodeMalformedRequirement = "MALFORMED_REQUIREMENT"
	ErrCodeShapeMismatch        = "SHAPE_MISMATCH"
	ErrCodeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
)

// ErrorResponse represents error responses.
type ErrorResponse struct {
	Code      string    `json:"code" yaml:"code"`
	Message   string    `json:"message" yaml:"message"`
	RequestID string    `json:"requestId" yaml:"requestId"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Retryable bool      `json:"retryable" yaml:"retryable"`
}

// WriteError writes an error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string, retryable bool) {
	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}
