package errors

import "fmt"

// Error codes
const (
	CodeSiteError  = "SITE_ERROR"
	CodeAPIError   = "API_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeCache      = "CACHE_ERROR"
	CodeNotFound   = "NOT_FOUND"
)

type SiteError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *SiteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SiteError) Unwrap() error {
	return e.Cause
}

func NewSiteError(message, code string, statusCode int, context map[string]any) *SiteError {
	return &SiteError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *SiteError) WithCause(cause error) *SiteError {
	e.Cause = cause
	return e
}

type APIError struct {
	*SiteError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		SiteError: &SiteError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

type NotFoundError struct {
	*SiteError
	Resource string
	Key      string
}

func NewNotFoundError(resource, key string) *NotFoundError {
	return &NotFoundError{
		SiteError: &SiteError{
			Message:    fmt.Sprintf("%s not found: %s", resource, key),
			Code:       CodeNotFound,
			StatusCode: 404,
			Context: map[string]any{
				"resource": resource,
				"key":      key,
			},
		},
		Resource: resource,
		Key:      key,
	}
}

type ValidationError struct {
	*SiteError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		SiteError: &SiteError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type CacheError struct {
	*SiteError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		SiteError: &SiteError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}
