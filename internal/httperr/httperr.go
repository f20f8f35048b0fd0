package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// messages maps error codes to the human-readable text returned to
// the client alongside the code.
var messages = map[string]string{
	"invalid_credentials":      "Email or password is incorrect.",
	"email_already_exists":     "An account with this email already exists.",
	"invalid_email_domain":     "The email domain does not appear to be valid.",
	"account_inactive":         "This account has been deactivated.",
	"service_not_found":        "The selected service does not exist.",
	"staff_not_found":          "The selected staff member does not exist.",
	"appointment_not_found":    "Appointment not found.",
	"invalid_date_or_time":     "The date or time is not valid.",
	"appointment_in_past":      "Appointments must be booked in the future.",
	"outside_working_hours":    "The selected time is outside working hours.",
	"slot_no_longer_available": "That time slot was just taken. Please pick another.",
	"invalid_state":            "The appointment cannot change to that status.",
	"not_your_appointment":     "You may only manage your own appointments.",
	"admin_required":           "Administrator access required.",
}

// FromDomain translates a DomainError into the HTTP response for it.
// Unknown errors become an opaque 500.
func FromDomain(c *gin.Context, err error) {
	var de DomainError
	if !errors.As(err, &de) {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	msg := messages[de.Code]
	if msg == "" {
		msg = de.Code
	}

	switch de.Kind {
	case KindValidation:
		BadRequest(c, de.Code, msg)
	case KindAuth:
		Unauthorized(c, de.Code, msg)
	case KindForbidden:
		Forbidden(c, de.Code, msg)
	case KindConflict:
		Conflict(c, de.Code, msg)
	case KindNotFound:
		NotFound(c, de.Code, msg)
	default:
		Internal(c, de.Code, msg)
	}
}
