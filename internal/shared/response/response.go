package response

import (
	"go-ems/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type MessageBody struct {
	Message string `json:"message"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageBody{Message: message})
}

// Error writes a resolved error. Validation failures are written as the bare
// field map, everything else as {"message": ...}.
func Error(c *gin.Context, httpErr apperror.HTTPError) {
	if len(httpErr.Fields) > 0 {
		c.JSON(httpErr.Status, httpErr.Fields)
		return
	}
	c.JSON(httpErr.Status, MessageBody{Message: httpErr.Message})
}

// Abort is Error for middleware: the rest of the chain is skipped.
func Abort(c *gin.Context, err error) {
	Error(c, apperror.ToHTTP(err))
	c.Abort()
}
