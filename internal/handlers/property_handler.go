package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stayhub_backend/internal/config"
	"stayhub_backend/internal/services"
	"stayhub_backend/internal/services/dto"
	"stayhub_backend/internal/storage"
	"stayhub_backend/pkg/apperrors"
)

type PropertyHandler struct {
	*BaseHandler
	propertyService services.PropertyService
	storage         storage.Storage
}

func NewPropertyHandler(base *BaseHandler, propertyService services.PropertyService, store storage.Storage) *PropertyHandler {
	return &PropertyHandler{BaseHandler: base, propertyService: propertyService, storage: store}
}

// CreateProperty godoc
// @Summary Create a property listing
// @Tags property
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param location formData string true "Location"
// @Param price formData number true "Price per night"
// @Param thumbnail formData file false "Thumbnail image"
// @Param gallery formData file false "Gallery images"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /property [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	hostID, ok := h.GetUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePropertyRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	thumbnail, gallery, err := h.saveImages(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	property, err := h.propertyService.CreateProperty(h.GetDB(c), hostID, &req, thumbnail, gallery)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondKeyed(c, http.StatusCreated, "Property created", "property", property)
}

// ListProperties godoc
// @Summary List active properties
// @Tags property
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /property [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.propertyService.ListProperties(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondKeyed(c, http.StatusOK, "Properties retrieved", "properties", properties)
}

// SearchProperties godoc
// @Summary Search active properties by title or location
// @Tags property
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {object} response.Envelope
// @Router /property/search [get]
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	var req dto.SearchPropertiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return
	}

	properties, err := h.propertyService.SearchProperties(h.GetDB(c), req.Search)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondKeyed(c, http.StatusOK, "Properties retrieved", "properties", properties)
}

// GetProperty godoc
// @Summary Get a property with related listings
// @Tags property
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /property/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	detail, err := h.propertyService.GetProperty(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Property retrieved", detail)
}

// GetHostProperties godoc
// @Summary List the authenticated host's properties
// @Tags property
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /property/host-properties [get]
func (h *PropertyHandler) GetHostProperties(c *gin.Context) {
	hostID, ok := h.GetUserID(c)
	if !ok {
		return
	}

	properties, err := h.propertyService.GetHostProperties(h.GetDB(c), hostID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondKeyed(c, http.StatusOK, "Properties retrieved", "properties", properties)
}

// UpdateProperty godoc
// @Summary Update an owned property
// @Tags property
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Security BearerAuth
// @Router /property/{id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	hostID, ok := h.GetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePropertyRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	thumbnail, gallery, err := h.saveImages(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	property, err := h.propertyService.UpdateProperty(h.GetDB(c), hostID, c.Param("id"), &req, thumbnail, gallery)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondKeyed(c, http.StatusOK, "Property updated", "property", property)
}

// DeleteProperty godoc
// @Summary Delete an owned property
// @Tags property
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Security BearerAuth
// @Router /property/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	hostID, ok := h.GetUserID(c)
	if !ok {
		return
	}

	if err := h.propertyService.DeleteProperty(h.GetDB(c), hostID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Property deleted", nil)
}

// saveImages stores the optional thumbnail and gallery uploads and returns
// the stored filenames. A request without files yields empty results.
func (h *PropertyHandler) saveImages(c *gin.Context) (string, []string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all is fine for updates.
		return "", nil, nil
	}

	var thumbnail string
	if files := form.File["thumbnail"]; len(files) > 0 {
		thumbnail, err = h.saveUpload(c, files[0])
		if err != nil {
			return "", nil, err
		}
	}

	var gallery []string
	for _, file := range form.File["gallery"] {
		name, err := h.saveUpload(c, file)
		if err != nil {
			return "", nil, err
		}
		gallery = append(gallery, name)
	}

	return thumbnail, gallery, nil
}

func (h *PropertyHandler) saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	cfg := config.GetConfig()

	if cfg.Upload.MaxSize > 0 && file.Size > cfg.Upload.MaxSize {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("File %s exceeds the size limit", file.Filename))
	}

	contentType := file.Header.Get("Content-Type")
	if len(cfg.Upload.AllowedTypes) > 0 && !isAllowedType(contentType, cfg.Upload.AllowedTypes) {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("File type %s is not allowed", contentType))
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	if err := h.storage.Save(c.Request.Context(), name, src, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}
	return name, nil
}

func isAllowedType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
