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

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

// Respond maps a business error to its HTTP status. Anything that is not a
// BusinessError is reported as an internal error.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	msg := be.Message
	if msg == "" {
		msg = be.Code
	}

	switch be.Kind {
	case KindValidation:
		BadRequest(c, be.Code, msg)
	case KindAuthorization:
		Forbidden(c, be.Code, msg)
	case KindInvalidState:
		Conflict(c, be.Code, msg)
	case KindConflict:
		Conflict(c, be.Code, msg)
	case KindNotFound:
		NotFound(c, be.Code, msg)
	case KindDependency:
		Write(c, http.StatusBadGateway, be.Code, msg)
	default:
		Internal(c, be.Code, msg)
	}
}
