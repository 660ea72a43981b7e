package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeInvalidField    = "INVALID_FIELD"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeEnquiryNotFound = "ENQUIRY_NOT_FOUND"
	ErrCodeInvalidPassword = "INVALID_PASSWORD"
	ErrCodeInvalidFileType = "INVALID_FILE_TYPE"
	ErrCodeFileTooLarge    = "FILE_TOO_LARGE"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "product not found")
	ErrEnquiryNotFound = NewDomainError(ErrCodeEnquiryNotFound, "enquiry not found")
	ErrInvalidPassword = NewDomainError(ErrCodeInvalidPassword, "invalid password")
	ErrInvalidFileType = NewDomainError(ErrCodeInvalidFileType, "Invalid file type. Only JPEG, PNG, and WebP are allowed.")
	ErrFileTooLarge    = NewDomainError(ErrCodeFileTooLarge, "File too large. Maximum size is 10 MB.")
)
