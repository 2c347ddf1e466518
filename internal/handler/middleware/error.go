package middleware

import (
	"log/slog"
	"net/http"

	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 12

// ErrorHandler renders errors that handlers recorded without writing a body,
// and logs the cause of every 5xx answer.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last()

		if c.Writer.Written() {
			if c.Writer.Status() >= http.StatusInternalServerError {
				logServerError(c, c.Writer.Status(), last.Err)
			}
			return
		}

		// Newest public error wins.
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				if resp.Status >= http.StatusInternalServerError {
					logServerError(c, resp.Status, err.Err)
				}
				c.JSON(resp.Status, resp)
				return
			}
		}

		status, msg := httperr.Classify(last.Err)
		if status >= http.StatusInternalServerError {
			logServerError(c, status, last.Err)
		}
		resp := httperr.Response{Status: status}
		resp.Error.Message = msg
		resp.Error.Retryable = status == http.StatusServiceUnavailable
		c.JSON(status, resp)
	}
}

func logServerError(c *gin.Context, status int, err error) {
	slog.Error("request failed",
		"request_id", GetRequestID(c),
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", status,
		"error", err,
		"stack", errs.ExtractStackLines(err, stackLinesLogged),
	)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"error", err,
					"path", c.Request.URL.Path,
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
