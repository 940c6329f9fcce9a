package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrAdminNotLoggedIn   ErrCode = "ADMIN_NOT_LOGGED_IN"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenRevoked       ErrCode = "TOKEN_REVOKED"
	ErrAccountDisabled    ErrCode = "ACCOUNT_DISABLED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation             ErrCode = "VALIDATION_ERROR"
	ErrInvalidID              ErrCode = "INVALID_ID"
	ErrCourseIDRequired       ErrCode = "COURSE_ID_REQUIRED"
	ErrPasswordFieldsRequired ErrCode = "PASSWORD_FIELDS_REQUIRED"
	ErrPasswordTooShort       ErrCode = "PASSWORD_TOO_SHORT"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrStudentNotFound ErrCode = "STUDENT_NOT_FOUND"
	ErrUserNotFound    ErrCode = "USER_NOT_FOUND"
	ErrCourseExists    ErrCode = "COURSE_EXISTS"
	ErrAlreadyDisabled ErrCode = "ACCOUNT_ALREADY_DISABLED"
	ErrAlreadyActive   ErrCode = "ACCOUNT_ALREADY_ACTIVE"
	ErrUsernameExists  ErrCode = "USERNAME_EXISTS"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns the user-facing message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Invalid username or password"
	case ErrAdminNotLoggedIn:
		return "Unauthorized: Admin not logged in"
	case ErrTokenRequired:
		return "Authentication token is required"
	case ErrTokenInvalid:
		return "Authentication token is invalid"
	case ErrTokenRevoked:
		return "Authentication token has been revoked"
	case ErrAccountDisabled:
		return "Account is disabled"

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input"
	case ErrInvalidID:
		return "Invalid ID format"
	case ErrCourseIDRequired:
		return "Course ID is required"
	case ErrPasswordFieldsRequired:
		return "Student ID and new password are required!"
	case ErrPasswordTooShort:
		return "Password must be at least 6 characters long"

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found"
	case ErrStudentNotFound:
		return "Student not found"
	case ErrUserNotFound:
		return "User not found"
	case ErrCourseExists:
		return "Course name or acronym already exists"
	case ErrAlreadyDisabled:
		return "Account is already disabled"
	case ErrAlreadyActive:
		return "Account is already active"
	case ErrUsernameExists:
		return "Username already exists"

	// ─── Media ─────────────────────────────────────────────────────────
	case ErrUnsupportedFile:
		return "Unsupported file type"
	case ErrFileTooLarge:
		return "File size exceeds the limit"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later"

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Internal server error"
	default:
		return "An unexpected error occurred"
	}
}
