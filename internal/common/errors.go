package common

import "net/http"

// Error is a business error: a machine-readable code, a default message
// and the HTTP status it maps to. Handlers resolve service errors to one
// of these via ErrorResponse.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

// Business logic errors
var (
	// Auth errors
	ErrEmailAlreadyExists     = &Error{"ERR_EMAIL_EXISTS", "Email already exists", http.StatusConflict}
	ErrPasswordMismatch       = &Error{"ERR_PASSWORD_MISMATCH", "The password and confirmation do not match", http.StatusBadRequest}
	ErrBadCredentials         = &Error{"BAD_CREDENTIALS", "Username and / or password is incorrect", http.StatusUnauthorized}
	ErrUserDisabled           = &Error{"ERR_USER_DISABLED", "User account is disabled, please activate your account or contact the administrator", http.StatusUnauthorized}
	ErrSendingActivationEmail = &Error{"ERR_SENDING_ACTIVATION_EMAIL", "An error occurred while sending the activation email", http.StatusInternalServerError}

	// Activation errors
	ErrInvalidActivationCode     = &Error{"ERR_INVALID_ACTIVATION_CODE", "Invalid activation code", http.StatusBadRequest}
	ErrActivationCodeExpired     = &Error{"ERR_ACTIVATION_CODE_EXPIRED", "Activation code has expired", http.StatusBadRequest}
	ErrActivationCodeAlreadyUsed = &Error{"ERR_ACTIVATION_CODE_ALREADY_USED", "Activation code has already been used", http.StatusBadRequest}

	// User errors
	ErrUserNotFound              = &Error{"USER_NOT_FOUND", "User not found", http.StatusNotFound}
	ErrUsernameNotFound          = &Error{"USERNAME_NOT_FOUND", "Cannot find user with the provided username", http.StatusNotFound}
	ErrChangePasswordMismatch    = &Error{"ERR_PASSWORD_MISMATCH", "New password and confirmation do not match", http.StatusBadRequest}
	ErrInvalidCurrentPassword    = &Error{"INVALID_CURRENT_PASSWORD", "The current password is incorrect", http.StatusBadRequest}
	ErrAccountAlreadyDeactivated = &Error{"ACCOUNT_ALREADY_DEACTIVATED", "Account has been deactivated", http.StatusBadRequest}

	// Board / note / link errors
	ErrBoardNotFound     = &Error{"ERR_BOARD_NOT_FOUND", "Board not found", http.StatusNotFound}
	ErrBoardAccessDenied = &Error{"ERR_BOARD_ACCESS_DENIED", "You are not allowed to access this board", http.StatusForbidden}
	ErrNoteNotFound      = &Error{"ERR_NOTE_NOT_FOUND", "Note not found", http.StatusNotFound}
	ErrLinkNotFound      = &Error{"ERR_LINK_NOT_FOUND", "Link not found", http.StatusNotFound}
	ErrLinkSelfReference = &Error{"ERR_VALIDATION", "A link cannot point to the same note", http.StatusBadRequest}

	// File errors
	ErrFileUploadFailed = &Error{"ERR_FILE_UPLOAD_FAILED", "Image upload failed. Please try again.", http.StatusInternalServerError}
	ErrFileEmpty        = &Error{"ERR_FILE_EMPTY", "Uploaded file is empty", http.StatusBadRequest}
	ErrInvalidFileType  = &Error{"ERR_INVALID_FILE_TYPE", "Only image files are allowed", http.StatusBadRequest}

	// Fallback
	ErrInternal = &Error{"INTERNAL_EXCEPTION", "An internal exception occurred, please try again or contact the admin", http.StatusInternalServerError}
)
