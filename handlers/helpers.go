package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses a numeric path parameter, writing a 400 response itself
// when the value is not an integer.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}
