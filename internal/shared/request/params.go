package request

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// UintParam reads a positive integer path parameter. Anything else reports
// false so the caller can answer 404, as an unmatched route would.
func UintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

