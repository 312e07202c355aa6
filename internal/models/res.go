package models

// FieldError is a single per-field validation problem. Value carries the
// rejected input so clients can see what was refused.
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

type ApiResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Error   string       `json:"error,omitempty"`
	Count   *int         `json:"count,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(message string) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: message,
	}
}

func ValidationFailedResponse(errs []FieldError) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	}
}

func ListResponse(data interface{}, count int, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
		Count:   &count,
	}
}
