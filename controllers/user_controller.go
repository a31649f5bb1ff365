package controllers

import (
	"classifieds/middleware"
	"classifieds/models"
	"classifieds/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users         *services.UserService
	maxUploadSize int64
}

func NewUserController(users *services.UserService, maxUploadSize int64) *UserController {
	return &UserController{users: users, maxUploadSize: maxUploadSize}
}

// GetMe godoc
// @Summary Get current user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.UserDto
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [get]
func (ctrl *UserController) GetMe(c *gin.Context) {
	user, err := ctrl.users.GetAuthenticatedUser(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update current user
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateUserRequest true "Profile"
// @Success 200 {object} models.UpdateUserRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [patch]
func (ctrl *UserController) UpdateMe(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	updated, err := ctrl.users.UpdateUser(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateAvatar godoc
// @Summary Replace avatar of the current user
// @Tags Users
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce octet-stream
// @Param image formData file true "New avatar"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Router /users/me/image [patch]
func (ctrl *UserController) UpdateAvatar(c *gin.Context) {
	image, ok := readImage(c, "image", ctrl.maxUploadSize)
	if !ok {
		return
	}

	name, err := ctrl.users.UpdateAvatar(c.Request.Context(), middleware.GetPrincipal(c), image)
	if err != nil {
		respondError(c, err)
		return
	}
	writeImage(c, name, image.Bytes())
}

// SetPassword godoc
// @Summary Change password
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.NewPasswordRequest true "Passwords"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Router /users/set_password [post]
func (ctrl *UserController) SetPassword(c *gin.Context) {
	var req models.NewPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	principal := middleware.GetPrincipal(c)
	changed, err := ctrl.users.UpdatePassword(c.Request.Context(), principal.Email, req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}
	if !changed {
		abortWithError(c, http.StatusForbidden, "Current password is incorrect", nil)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Password updated"})
}

// GetAvatar godoc
// @Summary Get avatar image
// @Tags Images
// @Produce octet-stream
// @Param fileName path string true "Avatar file name"
// @Success 200 {file} file
// @Failure 404 {object} models.ErrorResponse
// @Router /avatars/{fileName} [get]
func (ctrl *UserController) GetAvatar(c *gin.Context) {
	name := c.Param("fileName")
	data, err := ctrl.users.GetAvatar(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	writeImage(c, name, data)
}
