package api

import (
	"github.com/gin-gonic/gin"

	"github.com/somireddylaw/feedback-api/form"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer     = errorResponse{1000, "internal server error"}
	errorInvalidParameters  = errorResponse{1001, "invalid parameters"}
	errorCannotParseRequest = errorResponse{1002, "cannot parse request"}

	errorValidationFailed    = errorResponse{1100, "submission failed validation"}
	errorDuplicateSubmission = errorResponse{1101, "feedback already submitted for this email"}
	errorRecordNotFound      = errorResponse{1102, "record not found"}

	errorInvalidCredentials = errorResponse{1200, "invalid email or password"}
	errorUnauthorized       = errorResponse{1201, "missing, invalid or expired token"}
)

func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errs ...error) {
	for _, err := range errs {
		c.Error(err)
	}
	c.AbortWithStatusJSON(code, resp)
}

// abortWithValidationErrors carries the per-field messages so the client can
// render them next to the corresponding inputs.
func abortWithValidationErrors(c *gin.Context, code int, resp errorResponse, fieldErrors form.Errors) {
	c.AbortWithStatusJSON(code, gin.H{
		"code":    resp.Code,
		"message": resp.Message,
		"errors":  fieldErrors,
	})
}
