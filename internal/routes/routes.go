package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayhub_backend/internal/handlers"
	"stayhub_backend/internal/middleware"
	"stayhub_backend/internal/models"
)

// SetupRoutes mounts the whole HTTP surface under /api/v1.
func SetupRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
	}

	hostRole := middleware.RequireRoles(string(models.UserRoleHost))

	users := api.Group("/users")
	{
		users.POST("", h.User.Register)

		authed := users.Group("", middleware.AuthMiddleware())
		{
			authed.GET("", hostRole, h.User.ListUsers)
			authed.GET("/:id", h.User.GetUser)
			authed.PATCH("/:id", hostRole, h.User.UpdateUser)
			authed.DELETE("/:id", hostRole, h.User.DeleteUser)
		}
	}

	property := api.Group("/property")
	{
		property.GET("", h.Property.ListProperties)
		property.GET("/search", h.Property.SearchProperties)

		hostOnly := property.Group("", middleware.AuthMiddleware(), hostRole)
		{
			hostOnly.POST("", h.Property.CreateProperty)
			hostOnly.GET("/host-properties", h.Property.GetHostProperties)
			hostOnly.PATCH("/:id", h.Property.UpdateProperty)
			hostOnly.DELETE("/:id", h.Property.DeleteProperty)
		}

		// Registered after the static segments so they take priority.
		property.GET("/:id", h.Property.GetProperty)
	}

	bothRoles := middleware.RequireRoles(string(models.UserRoleHost), string(models.UserRoleRenter))

	booking := api.Group("/booking", middleware.AuthMiddleware())
	{
		booking.POST("", bothRoles, h.Booking.CreateBooking)
		booking.GET("", bothRoles, h.Booking.GetRenterBookings)
		booking.PATCH("/:id/status", bothRoles, h.Booking.UpdateBookingStatus)

		hostOnly := booking.Group("", hostRole)
		{
			hostOnly.GET("/host", h.Booking.GetHostBookings)
			hostOnly.PATCH("/:id/check-in", h.Booking.CheckIn)
		}
	}

	stats := api.Group("/stats", middleware.AuthMiddleware(), hostRole)
	{
		stats.GET("", h.Stats.GetHostStats)
	}

	files := api.Group("/files")
	{
		files.GET("/:name", h.File.ServeFile)
	}
}
