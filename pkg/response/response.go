package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends 400 with the error message, for requests that could not be
// decoded or failed validation.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	write(c, http.StatusBadRequest, 1, err.Error(), data)
}

// InternalError sends 500. The cause is never exposed to the caller.
func InternalError(c *gin.Context, err error) {
	write(c, http.StatusInternalServerError, InternalServerErrorCode, DefaultErrorMessage, nil)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	write(c, http.StatusUnauthorized, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized), nil)
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	write(c, http.StatusForbidden, http.StatusForbidden, http.StatusText(http.StatusForbidden), nil)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	write(c, http.StatusTooManyRequests, TooManyRequestsCode, http.StatusText(http.StatusTooManyRequests), nil)
}

func write(c *gin.Context, status, code int, msg string, data any) {
	resp := Resp{ErrorCode: code, Message: msg}
	if data != nil {
		resp.Data = data
	}
	c.JSON(status, resp)
}
