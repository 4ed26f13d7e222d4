package handlers

import (
	"io"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"stayhub_backend/internal/storage"
	"stayhub_backend/pkg/apperrors"
)

type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{BaseHandler: base, storage: store}
}

// ServeFile godoc
// @Summary Serve an uploaded file
// @Tags files
// @Produce octet-stream
// @Param name path string true "File name"
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /files/{name} [get]
func (h *FileHandler) ServeFile(c *gin.Context) {
	// path.Base strips any directory components from the requested name.
	name := path.Base(c.Param("name"))
	if name == "." || name == "/" {
		h.HandleServiceError(c, apperrors.ErrNotFound(nil))
		return
	}

	exists, err := h.storage.Exists(c.Request.Context(), name)
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	if !exists {
		h.HandleServiceError(c, apperrors.ErrNotFound(nil))
		return
	}

	reader, err := h.storage.Get(c.Request.Context(), name)
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer reader.Close()

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
