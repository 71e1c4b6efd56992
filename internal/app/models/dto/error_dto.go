package dto

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

// Error codes returned by the API
const (
	ErrorCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrorCodeConflict      ErrorCode = "CONFLICT"
	ErrorCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrorCodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	ErrorCodeForbidden     ErrorCode = "FORBIDDEN"
	ErrorCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	ErrorCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail carries the code and human-readable message for a failure.
type ErrorDetail struct {
	Code    ErrorCode              `json:"code" example:"VALIDATION_ERROR"`
	Message string                 `json:"message" example:"validation failed"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// APIResponse is the envelope for successful requests.
type APIResponse struct {
	Data interface{} `json:"data"`
}

// NewErrorResponse builds an error envelope.
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewAPIResponse wraps response data in the success envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{Data: data}
}
