package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// API envelope: code 0 means success, code 1 means failure. Validation
// failures come back with HTTP 400, storage/unexpected failures with HTTP 500
// and a generic message (the detail stays in the server logs).
const (
	CodeOK    = 0
	CodeError = 1
)

// OK writes a success envelope with a human-readable message.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"code":    CodeOK,
		"message": message,
	})
}

// OKWith writes a success envelope merged with extra top-level fields
// (e.g. data/page/limit for the post feed, sent/failed/total for fan-out).
func OKWith(c *gin.Context, fields gin.H) {
	body := gin.H{"code": CodeOK}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"code":    CodeError,
		"message": message,
	})
}

func BadRequest(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	errorResponse(c, http.StatusInternalServerError, message)
}
