package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

// Accepted is used when the request took effect but follow-up work is still outstanding.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, gin.H{"ok": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

func Invalid(c *gin.Context, msg string, fields any) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg, "fields": fields})
}

func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}

func Conflict(c *gin.Context, msg string, data any) {
	body := gin.H{"ok": false, "error": msg}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusConflict, body)
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

func Unavailable(c *gin.Context, err error) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": err.Error()})
}
