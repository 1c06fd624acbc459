package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/synapse/synapse-backend/internal/handler"
	"github.com/synapse/synapse-backend/internal/middleware"
	"github.com/synapse/synapse-backend/pkg/jwt"
)

// Handlers groups the HTTP handlers mounted by Setup
type Handlers struct {
	Auth  *handler.AuthHandler
	User  *handler.UserHandler
	Board *handler.BoardHandler
	Note  *handler.NoteHandler
	Link  *handler.LinkHandler
}

// Setup registers all API routes
func Setup(router *gin.Engine, h Handlers, jwtManager *jwt.Manager, redisClient *redis.Client, authPerMinute int) {
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(redisClient, middleware.RateLimitConfig{
		RequestsPerMinute: authPerMinute,
		KeyPrefix:         "ratelimit:auth",
	}))
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/activate", h.Auth.ActivateAccount)
	}

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtManager))

	users := protected.Group("/users")
	{
		users.GET("/me", h.User.Me)
		users.PATCH("/me", h.User.UpdateMe)
		users.DELETE("/me", h.User.DeleteMe)
		users.POST("/me/password", h.User.ChangePassword)
		users.PATCH("/me/deactivate", h.User.Deactivate)
		users.PATCH("/me/reactivate", h.User.Reactivate)
	}

	boards := protected.Group("/boards")
	{
		boards.GET("", h.Board.List)
		boards.POST("", h.Board.Create)
		boards.GET("/:board_id", h.Board.Get)
		boards.PUT("/:board_id", h.Board.Update)
		boards.PATCH("/:board_id", h.Board.Patch)
		boards.DELETE("/:board_id", h.Board.Delete)

		notes := boards.Group("/:board_id/notes")
		{
			notes.GET("", h.Note.List)
			notes.POST("", h.Note.Create)
			notes.GET("/:note_id", h.Note.Get)
			notes.PUT("/:note_id", h.Note.Update)
			notes.PATCH("/:note_id", h.Note.Patch)
			notes.DELETE("/:note_id", h.Note.Delete)
			notes.POST("/:note_id/image", h.Note.UploadImage)
			notes.DELETE("/:note_id/image", h.Note.DeleteImage)
		}

		links := boards.Group("/:board_id/links")
		{
			links.GET("", h.Link.List)
			links.POST("", h.Link.Create)
			links.GET("/:link_id", h.Link.Get)
			links.PATCH("/:link_id", h.Link.Patch)
			links.DELETE("/:link_id", h.Link.Delete)
		}
	}
}
