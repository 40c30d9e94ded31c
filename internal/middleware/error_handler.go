package middleware

import (
	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler catches errors and returns standardized responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		appErr := apperrors.MapError(c.Errors.Last().Err)

		logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, request_id=%s, error=%s",
			c.Request.URL.Path,
			c.Request.Method,
			c.ClientIP(),
			c.GetString(ContextRequestID),
			appErr.TechnicalMessage)

		writeError(c, appErr)
	}
}

func writeError(c *gin.Context, appErr *apperrors.AppError) {
	c.JSON(appErr.HTTPStatus, gin.H{
		"error": gin.H{
			"message": appErr.UserMessage,
			"code":    appErr.Code,
		},
	})
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	logger.GlobalLogger.Debugf("Request rejected: path=%s, code=%s, reason=%s",
		c.Request.URL.Path, appErr.Code, appErr.TechnicalMessage)
	writeError(c, appErr)
	c.Abort()
}
