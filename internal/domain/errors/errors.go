// Package errors defines application-level errors that carry both an HTTP
// status and a stable business error code for the wire envelope.
package errors

import (
	"net/http"

	"conectone/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface. Details, when present, are
// appended so wrapped error chains keep the full diagnostic text.
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User and auth errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email address is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password could not be processed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the strength requirements",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	// Affiliate errors
	ErrAffiliateNotFound = NewBaseError(
		http.StatusNotFound,
		"AFFILIATE_NOT_FOUND",
		"Affiliate not found",
		"",
	)

	ErrAffiliateCodeTaken = NewBaseError(
		http.StatusConflict,
		"AFFILIATE_CODE_TAKEN",
		"This affiliate code is already in use",
		"",
	)

	ErrInvalidReferralQR = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REFERRAL_QR",
		"The referral QR code could not be read",
		"",
	)

	// Advert and listing errors
	ErrAdvertNotFound = NewBaseError(
		http.StatusNotFound,
		"ADVERT_NOT_FOUND",
		"Advertisement not found",
		"",
	)

	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Business listing not found",
		"",
	)

	ErrListingTierNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_TIER_NOT_FOUND",
		"Listing tier not found",
		"",
	)

	ErrCompanyNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPANY_NOT_FOUND",
		"Company not found",
		"",
	)

	ErrInvalidReviewTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_REVIEW_TRANSITION",
		"The requested review status change is not allowed",
		"",
	)

	// School vertical errors
	ErrSchoolNotFound = NewBaseError(
		http.StatusNotFound,
		"SCHOOL_NOT_FOUND",
		"School not found",
		"",
	)

	ErrClassNotFound = NewBaseError(
		http.StatusNotFound,
		"CLASS_NOT_FOUND",
		"School class not found",
		"",
	)

	ErrStaffNotFound = NewBaseError(
		http.StatusNotFound,
		"STAFF_NOT_FOUND",
		"Staff member not found",
		"",
	)

	ErrLearnerNotFound = NewBaseError(
		http.StatusNotFound,
		"LEARNER_NOT_FOUND",
		"Learner not found",
		"",
	)

	ErrAdmissionNoTaken = NewBaseError(
		http.StatusConflict,
		"ADMISSION_NO_TAKEN",
		"This admission number is already assigned",
		"",
	)

	ErrClassFull = NewBaseError(
		http.StatusConflict,
		"CLASS_FULL",
		"The class has reached its capacity",
		"",
	)

	ErrActivityGroupNotFound = NewBaseError(
		http.StatusNotFound,
		"ACTIVITY_GROUP_NOT_FOUND",
		"Activity group not found",
		"",
	)

	ErrDisciplineRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"DISCIPLINE_RECORD_NOT_FOUND",
		"Disciplinary record not found",
		"",
	)

	ErrInvalidAttendanceStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ATTENDANCE_STATUS",
		"Unknown attendance status",
		"",
	)

	// Messaging errors
	ErrMessageNotFound = NewBaseError(
		http.StatusNotFound,
		"MESSAGE_NOT_FOUND",
		"Message not found",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	// Filing errors
	ErrFileNotFound = NewBaseError(
		http.StatusNotFound,
		"FILE_NOT_FOUND",
		"File not found",
		"",
	)

	ErrUnsupportedFileKind = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_KIND",
		"Unsupported file kind",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"The uploaded file exceeds the size limit",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
