package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "ok",
		Data: data,
	})
}

// Fail writes code both as the HTTP status and in the body.
func Fail(c *gin.Context, code int, msg string) {
	c.JSON(Status(code), Response{
		Code: code,
		Msg:  msg,
	})
}

// Status maps a business code onto an HTTP status.
func Status(code int) int {
	if code >= 400 && code < 600 {
		return code
	}
	return http.StatusOK
}
