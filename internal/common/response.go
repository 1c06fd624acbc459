package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse standard API response structure
type APIResponse struct {
	Data  interface{} `json:"data,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse returns a successful JSON response
func SuccessResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, APIResponse{Data: data})
}

// ErrorResponse resolves err against the business error taxonomy and
// writes the matching status, code and message. Anything that is not a
// *Error is reported as INTERNAL_EXCEPTION without leaking its detail.
func ErrorResponse(c *gin.Context, err error) {
	var be *Error
	if !errors.As(err, &be) {
		be = ErrInternal
	}
	c.JSON(be.Status, APIResponse{
		Error: &ErrorInfo{Code: be.Code, Message: be.Message},
	})
}

// ValidationErrorResponse reports a request-body binding failure
func ValidationErrorResponse(c *gin.Context, err error) {
	msg := "Invalid request body"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusBadRequest, APIResponse{
		Error: &ErrorInfo{Code: "ERR_VALIDATION", Message: msg},
	})
}
