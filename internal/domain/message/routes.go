package message

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the chat-message routes.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	msgs := r.Group("/trips/:trip_id/messages")
	{
		msgs.POST("", h.Post)
		msgs.GET("", h.List)
		msgs.DELETE("/:message_id", h.Delete)
	}
}
