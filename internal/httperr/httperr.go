package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
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

func BadRequestJSON(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFoundJSON(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond maps an error coming out of a use case to an HTTP response.
// BusinessError kinds translate to their statuses; a gorm record-not-found
// that escaped the repository layer reads as 404; anything else is a 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		status := http.StatusInternalServerError
		switch be.Kind {
		case KindNotFound:
			status = http.StatusNotFound
		case KindBadRequest:
			status = http.StatusBadRequest
		case KindConflict:
			status = http.StatusConflict
		case KindForbidden:
			status = http.StatusForbidden
		}
		Write(c, status, be.Code, be.Code)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		Write(c, http.StatusNotFound, "not_found", "resource not found")
		return
	}

	Write(c, http.StatusInternalServerError, "internal_error", "unexpected error")
}
