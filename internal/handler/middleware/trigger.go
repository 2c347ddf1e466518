package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"clinic-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const triggerTokenHeader = "X-Trigger-Token"

var (
	errTriggerDisabled = errors.New("internal triggers are disabled")
	errTriggerToken    = errors.New("invalid trigger token")
)

// RequireTriggerToken guards the routes an external scheduler calls. An empty
// configured token turns the routes off.
func RequireTriggerToken(token string) gin.HandlerFunc {
	want := []byte(token)
	return func(c *gin.Context) {
		if len(want) == 0 {
			httperr.AbortWithError(c, http.StatusNotFound, errTriggerDisabled, "Not found", nil)
			return
		}
		got := []byte(c.GetHeader(triggerTokenHeader))
		if subtle.ConstantTimeCompare(got, want) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTriggerToken, "Invalid trigger token", nil)
			return
		}
		c.Next()
	}
}
