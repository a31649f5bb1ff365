package controllers

import (
	"classifieds/models"
	"classifieds/services"
	"classifieds/utils"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, status int, message string, err error) {
	resp := models.ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}

// respondError maps service errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "Resource not found", nil)
	case errors.Is(err, services.ErrForbidden):
		abortWithError(c, http.StatusForbidden, "Access denied", nil)
	case errors.Is(err, services.ErrUnauthenticated):
		abortWithError(c, http.StatusUnauthorized, "Unauthorized", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, "Invalid email or password", nil)
	case errors.Is(err, utils.ErrFileTooLarge), errors.Is(err, utils.ErrInvalidFileType):
		abortWithError(c, http.StatusBadRequest, "Invalid image", err)
	case errors.Is(err, services.ErrImageProcessing) && errors.Is(err, fs.ErrNotExist):
		abortWithError(c, http.StatusNotFound, "Image not found", nil)
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func parseID(c *gin.Context, param string) (int, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "Invalid "+param, err)
		return 0, false
	}
	return id, true
}

// readImage loads and validates the multipart image part named field.
func readImage(c *gin.Context, field string, maxSize int64) (*models.MemoryFile, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Image file is required", err)
		return nil, false
	}
	file, err := utils.ReadUploadedImage(fh, maxSize)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return file, true
}

func writeImage(c *gin.Context, name string, data []byte) {
	c.Data(http.StatusOK, utils.ImageContentType(name), data)
}
