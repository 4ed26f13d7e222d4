package apperrors

import (
	"log"

	"stayhub_backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// GinErrorHandler converts errors into the shared response envelope.
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError resolves err to an AppError and writes the envelope.
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		if !h.Debug {
			appErr.Message = "Internal server error"
			appErr.Details = nil
		}
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("Server error: %v", appErr.Unwrap())
	}

	result := response.Result{
		Success:    response.Failure(),
		StatusCode: appErr.HTTPCode,
		Message:    appErr.Message,
	}
	if appErr.Details != nil {
		result.Data = appErr.Details
		result.Key = "errors"
	}

	envelope := response.Shape(result, response.RequestInfo{
		Path:      c.Request.URL.Path,
		Method:    c.Request.Method,
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	})

	c.JSON(appErr.HTTPCode, envelope)
}

// HandleError is the quick helper used from handlers.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: true}
	handler.HandleGinError(c, err)
}

// AsAppError reports whether err is (or wraps) an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
