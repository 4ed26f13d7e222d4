package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub_backend/internal/middleware"
	"stayhub_backend/internal/validator"
	"stayhub_backend/pkg/apperrors"
	"stayhub_backend/pkg/contextkeys"
	"stayhub_backend/pkg/response"
)

// BaseHandler carries the pieces every handler needs: request validation,
// the per-request database handle and uniform success/error responses.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{validator: validator.New()}
}

// GetDB returns the database handle injected by DBMiddleware. Tests inject
// a transaction under the same key.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, exists := c.Get(string(contextkeys.DBContextKey))
	if !exists {
		return nil
	}
	gormDB, ok := db.(*gorm.DB)
	if !ok {
		return nil
	}
	return gormDB
}

// BindAndValidateJSON binds the JSON body into obj and validates it,
// responding with a 422 on failure. Returns false when the request
// has already been answered.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

// BindAndValidateForm binds multipart or urlencoded form fields into obj.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid form data"))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			h.HandleServiceError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			h.HandleServiceError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// GetUserID returns the authenticated user id set by AuthMiddleware.
func (h *BaseHandler) GetUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return userID, true
}

// GetAndAuthorizeUserID resolves the authenticated user and rejects the
// request unless it matches ownerID.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context, ownerID string) (string, bool) {
	userID, ok := h.GetUserID(c)
	if !ok {
		return "", false
	}
	if userID != ownerID {
		h.HandleServiceError(c, apperrors.NewForbiddenError("You are not authorized to perform this action"))
		return "", false
	}
	return userID, true
}

// HandleServiceError writes the error envelope for err.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// Respond writes a success envelope with the given status, message and data.
func (h *BaseHandler) Respond(c *gin.Context, statusCode int, message string, data interface{}) {
	h.RespondKeyed(c, statusCode, message, "data", data)
}

// RespondKeyed writes a success envelope placing data under key.
func (h *BaseHandler) RespondKeyed(c *gin.Context, statusCode int, message string, key string, data interface{}) {
	envelope := response.Shape(
		response.Result{
			StatusCode: statusCode,
			Message:    message,
			Key:        key,
			Data:       data,
		},
		response.RequestInfo{
			Path:      c.Request.URL.Path,
			Method:    c.Request.Method,
			RequestID: c.Writer.Header().Get("X-Request-ID"),
		},
	)
	c.JSON(statusCode, envelope)
}

// RespondNoContent answers 204 without a body.
func (h *BaseHandler) RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
