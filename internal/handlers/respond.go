package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joasro/Industrias/internal/logger"
	"github.com/Joasro/Industrias/internal/utils"
)

// serverError reports an unexpected persistence failure: one log line,
// one 500 with the underlying message attached.
func serverError(c *gin.Context, msg string, err error) {
	logger.Log.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "detail": err.Error()})
}

func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "validación fallida",
		"details": utils.FieldErrors(err),
	})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
