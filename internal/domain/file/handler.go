package file

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler exposes the upload/fetch/delete endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload handles POST /files/upload. Form fields: file (required),
// trip_id and message_id (optional integers).
func (h *Handler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	tripID, err := optionalInt64(c.PostForm("trip_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trip_id must be an integer"})
		return
	}
	messageID, err := optionalInt64(c.PostForm("message_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message_id must be an integer"})
		return
	}

	result, err := h.service.Upload(c.Request.Context(), fh, tripID, messageID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedMediaType), errors.Is(err, ErrPayloadTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrMessageNotFound), errors.Is(err, ErrTripNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Fetch handles GET /files/messages/:file_type/:filename and streams
// the stored bytes back.
func (h *Handler) Fetch(c *gin.Context) {
	filename := c.Param("filename")
	path, contentType, err := h.service.Open(c.Param("file_type"), filename)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.File(path)
}

// Delete handles DELETE /files/messages/:file_type/:filename. Only the
// physical file is removed; any chat message still referencing the URL
// keeps its dangling reference.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("file_type"), c.Param("filename")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted successfully"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrInvalidFilename):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrFileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func optionalInt64(v string) (*int64, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
