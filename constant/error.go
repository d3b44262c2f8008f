package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrValidation
	ErrForbidden
	ErrAccountInactive
	ErrEmailNotVerified
	ErrInvalidOTP
	ErrOTPAttemptsExceeded
	ErrOTPCooldown
	ErrInvalidToken
	ErrDuplicateRegistration
	ErrEventFull
	ErrRegistrationClosed
	ErrDonationCompleted
	ErrSelfAction
	ErrInvalidStatusTransition
	ErrReceiptUnavailable
	ErrFileTooLarge
	ErrFileTypeNotAllowed
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                 "success",
	ErrInternal:                "error internal",
	ErrNotFound:                "data not found",
	ErrInvalidRequest:          "invalid request",
	ErrUnauthorize:             "unauthorize request",
	ErrCredentialExists:        "email or phone already exists",
	ErrInvalidPassword:         "password invalid",
	ErrValidation:              "validation failed",
	ErrForbidden:               "insufficient permissions",
	ErrAccountInactive:         "account is not active",
	ErrEmailNotVerified:        "email address is not verified",
	ErrInvalidOTP:              "invalid or expired OTP",
	ErrOTPAttemptsExceeded:     "maximum verification attempts exceeded",
	ErrOTPCooldown:             "please wait before requesting a new code",
	ErrInvalidToken:            "invalid or expired token",
	ErrDuplicateRegistration:   "already registered for this event",
	ErrEventFull:               "event has reached its capacity",
	ErrRegistrationClosed:      "registration is not open for this event",
	ErrDonationCompleted:       "completed donations cannot be deleted",
	ErrSelfAction:              "this action cannot be performed on your own account",
	ErrInvalidStatusTransition: "status transition not allowed",
	ErrReceiptUnavailable:      "receipt is only available for completed donations",
	ErrFileTooLarge:            "file exceeds the maximum allowed size",
	ErrFileTypeNotAllowed:      "file type not allowed",
	ErrTooManyRequests:         "too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                 http.StatusOK,
	ErrInternal:                http.StatusInternalServerError,
	ErrNotFound:                http.StatusNotFound,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrUnauthorize:             http.StatusUnauthorized,
	ErrCredentialExists:        http.StatusBadRequest,
	ErrInvalidPassword:         http.StatusBadRequest,
	ErrValidation:              http.StatusBadRequest,
	ErrForbidden:               http.StatusForbidden,
	ErrAccountInactive:         http.StatusForbidden,
	ErrEmailNotVerified:        http.StatusForbidden,
	ErrInvalidOTP:              http.StatusBadRequest,
	ErrOTPAttemptsExceeded:     http.StatusBadRequest,
	ErrOTPCooldown:             http.StatusTooManyRequests,
	ErrInvalidToken:            http.StatusBadRequest,
	ErrDuplicateRegistration:   http.StatusBadRequest,
	ErrEventFull:               http.StatusBadRequest,
	ErrRegistrationClosed:      http.StatusBadRequest,
	ErrDonationCompleted:       http.StatusBadRequest,
	ErrSelfAction:              http.StatusBadRequest,
	ErrInvalidStatusTransition: http.StatusBadRequest,
	ErrReceiptUnavailable:      http.StatusBadRequest,
	ErrFileTooLarge:            http.StatusBadRequest,
	ErrFileTypeNotAllowed:      http.StatusBadRequest,
	ErrTooManyRequests:         http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                 "0000",
	ErrInternal:                "0001",
	ErrNotFound:                "0002",
	ErrInvalidRequest:          "0003",
	ErrUnauthorize:             "0004",
	ErrCredentialExists:        "0005",
	ErrInvalidPassword:         "0006",
	ErrValidation:              "0007",
	ErrForbidden:               "0008",
	ErrAccountInactive:         "0009",
	ErrEmailNotVerified:        "0010",
	ErrInvalidOTP:              "0011",
	ErrOTPAttemptsExceeded:     "0012",
	ErrOTPCooldown:             "0013",
	ErrInvalidToken:            "0014",
	ErrDuplicateRegistration:   "0015",
	ErrEventFull:               "0016",
	ErrRegistrationClosed:      "0017",
	ErrDonationCompleted:       "0018",
	ErrSelfAction:              "0019",
	ErrInvalidStatusTransition: "0020",
	ErrReceiptUnavailable:      "0021",
	ErrFileTooLarge:            "0022",
	ErrFileTypeNotAllowed:      "0023",
	ErrTooManyRequests:         "0024",
}
