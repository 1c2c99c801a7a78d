package types

import (
	"github.com/barterhub/barter-api/internal/query"
	apperrors "github.com/barterhub/barter-api/pkg/errors"
)

// ListResponse is the envelope every listing endpoint returns. Count is
// the number of results on this page; Total is the number of matches
// across all pages.
type ListResponse struct {
	Success    bool           `json:"success"`
	Count      int            `json:"count"`
	Total      int64          `json:"total"`
	Pagination query.PageMeta `json:"pagination"`
	Data       interface{}    `json:"data"`
}

// NewListResponse builds the envelope from page metadata and the page of
// results.
func NewListResponse(meta query.PageMeta, count int, data interface{}) ListResponse {
	return ListResponse{
		Success:    true,
		Count:      count,
		Total:      meta.Total,
		Pagination: meta,
		Data:       data,
	}
}

// DataResponse wraps a single entity
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// NewDataResponse wraps a single entity in the success envelope.
func NewDataResponse(data interface{}) DataResponse {
	return DataResponse{Success: true, Data: data}
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    interface{} `json:"user"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// NewErrorResponse builds a failure envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// NewAppErrorResponse builds a failure envelope from a structured error,
// carrying its code and details onto the wire.
func NewAppErrorResponse(err *apperrors.AppError) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   err.Message,
		Code:    string(err.Code),
		Details: err.Details,
	}
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
