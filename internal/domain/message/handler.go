package message

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler exposes the chat-message endpoints under /trips/:trip_id/messages.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type postRequest struct {
	TripID   int64   `json:"trip_id" binding:"required"`
	UserID   string  `json:"user_id" binding:"required"`
	Body     string  `json:"body"`
	FileURL  *string `json:"file_url"`
	FileType *string `json:"file_type"`
	FileName *string `json:"file_name"`
}

// Post creates a message. The body's trip_id must match the path.
func (h *Handler) Post(c *gin.Context) {
	tripID, ok := pathTripID(c)
	if !ok {
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TripID != tripID {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrTripMismatch.Error()})
		return
	}

	msg, err := h.service.Post(c.Request.Context(), tripID, req.UserID, req.Body, req.FileURL, req.FileType, req.FileName)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// List returns all messages of a trip, oldest first.
func (h *Handler) List(c *gin.Context) {
	tripID, ok := pathTripID(c)
	if !ok {
		return
	}

	msgs, err := h.service.List(c.Request.Context(), tripID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// Delete removes a message from a trip.
func (h *Handler) Delete(c *gin.Context) {
	tripID, ok := pathTripID(c)
	if !ok {
		return
	}
	messageID, err := strconv.ParseInt(c.Param("message_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message_id must be an integer"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), tripID, messageID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTripNotFound), errors.Is(err, ErrUserNotFound), errors.Is(err, ErrMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func pathTripID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("trip_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trip_id must be an integer"})
		return 0, false
	}
	return id, true
}
