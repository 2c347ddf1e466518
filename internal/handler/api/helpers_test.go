//go:build unit

package api_test

import (
	"net/http"
	"strings"

	"clinic-booking/internal/domain/user"
	reqdto "clinic-booking/internal/handler/dto/request"
	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := reqdto.RegisterValidators(); err != nil {
		panic(err)
	}
}

// fakeAuth stands in for RequireAuth: the bearer token is "<role>:<uuid>".
func fakeAuth(c *gin.Context) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	role, id, ok := strings.Cut(strings.TrimPrefix(h, "Bearer "), ":")
	userID, err := uuid.Parse(id)
	if !ok || err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	middleware.SetActor(c, shared.Actor{UserID: userID, Role: user.Role(role)})
	c.Next()
}

func tokenFor(role user.Role, id uuid.UUID) string {
	return string(role) + ":" + id.String()
}

func newEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	return engine
}
