//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"clinic-booking/internal/domain/user"
	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/mock/usecasemock"
	"clinic-booking/internal/pkg/jwt"
	"clinic-booking/internal/testutil/httptest"
	"clinic-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireAuth(t *testing.T) {
	actor := shared.Actor{UserID: uuid.New(), Role: user.RoleClient}

	setup := func(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		auth := middleware.NewAuthMiddleware(validator)

		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
			// The request context must carry the caller for the unit of work.
			fromCtx, ok := shared.ActorFrom(c.Request.Context())
			if !ok {
				c.Status(http.StatusTeapot)
				return
			}
			id, _ := middleware.GetUserID(c)
			role, _ := middleware.GetUserRole(c)
			c.JSON(http.StatusOK, gin.H{"ctx_user": fromCtx.UserID, "user": id, "role": role})
		})
		return router, validator
	}

	t.Run("valid token carries the caller", func(t *testing.T) {
		router, validator := setup(t)
		validator.EXPECT().ValidateToken("good").Return(actor, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, actor.UserID.String(), body["ctx_user"])
		assert.Equal(t, actor.UserID.String(), body["user"])
		assert.Equal(t, "client", body["role"])
	})

	t.Run("missing token", func(t *testing.T) {
		router, _ := setup(t)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token", func(t *testing.T) {
		router, validator := setup(t)
		validator.EXPECT().ValidateToken("expired").Return(shared.Actor{}, jwt.ErrExpiredToken)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "expired")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	tests := []struct {
		name string
		role user.Role
		want int
	}{
		{name: "client is refused", role: user.RoleClient, want: http.StatusForbidden},
		{name: "partner passes", role: user.RolePartner, want: http.StatusOK},
		{name: "admin passes", role: user.RoleAdmin, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			validator.EXPECT().ValidateToken("tok").Return(shared.Actor{UserID: uuid.New(), Role: tt.role}, nil)
			auth := middleware.NewAuthMiddleware(validator)

			router := gin.New()
			router.GET("/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RolePartner), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, "tok")
			require.Equal(t, tt.want, rec.Code)
		})
	}

	t.Run("used without RequireAuth", func(t *testing.T) {
		auth := middleware.NewAuthMiddleware(nil)
		router := gin.New()
		router.GET("/admin", auth.RequireRoleAtLeast(user.RolePartner), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
