package handler

import (
	"github.com/gin-gonic/gin"

	"cleaning-booking-api/internal/middleware"
)

// Routes registers the full API surface. Rate limiting covers the credential
// endpoints and the public booking endpoint; everything admin-facing sits
// behind the bearer middleware.
func Routes(r *gin.Engine, h *Handler, secret string, rl *middleware.RateLimiter) {
	limited := middleware.RateLimit(rl)
	authed := middleware.RequireAuth(secret)

	api := r.Group("/api")

	admin := api.Group("/admin")
	admin.POST("/login", limited, h.Login)
	admin.POST("/refresh", limited, h.Refresh)
	admin.POST("/request-reset", limited, h.RequestReset)
	admin.POST("/reset-password", limited, h.ResetPassword)
	admin.POST("/logout", authed, h.Logout)
	admin.POST("/change-password", authed, h.ChangePassword)

	api.POST("/appointments", limited, h.CreateAppointment)
	api.GET("/appointments", authed, h.ListAppointments)
	api.PUT("/appointments/:id", authed, h.UpdateAppointment)
	api.DELETE("/appointments/:id", authed, h.DeleteAppointment)
}
