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

// Text sends a plain text body. Webhook senders only look at status and body.
func Text(c *gin.Context, code int, text string) {
	c.String(code, text)
}

// AbortText sends a plain text body and stops the handler chain.
func AbortText(c *gin.Context, code int, text string) {
	c.Abort()
	c.String(code, text)
}
