package controllers

import (
	"classifieds/middleware"
	"classifieds/models"
	"classifieds/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// GetComments godoc
// @Summary Get comments of an ad
// @Tags Comments
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} models.CommentsDto
// @Failure 404 {object} models.ErrorResponse
// @Router /ads/{id}/comments [get]
func (ctrl *CommentController) GetComments(c *gin.Context) {
	adID, ok := parseID(c, "id")
	if !ok {
		return
	}
	comments, err := ctrl.comments.GetComments(c.Request.Context(), adID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AddComment godoc
// @Summary Add comment to an ad
// @Tags Comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ad ID"
// @Param request body models.CreateOrUpdateCommentRequest true "Comment"
// @Success 200 {object} models.CommentDto
// @Failure 404 {object} models.ErrorResponse
// @Router /ads/{id}/comments [post]
func (ctrl *CommentController) AddComment(c *gin.Context) {
	adID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.CreateOrUpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	comment, err := ctrl.comments.AddComment(c.Request.Context(), middleware.GetPrincipal(c), adID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// UpdateComment godoc
// @Summary Update comment
// @Tags Comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ad ID"
// @Param commentId path int true "Comment ID"
// @Param request body models.CreateOrUpdateCommentRequest true "Comment"
// @Success 200 {object} models.CommentDto
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /ads/{id}/comments/{commentId} [patch]
func (ctrl *CommentController) UpdateComment(c *gin.Context) {
	adID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}
	var req models.CreateOrUpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	comment, err := ctrl.comments.UpdateComment(c.Request.Context(), middleware.GetPrincipal(c), adID, commentID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary Delete comment
// @Tags Comments
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /ads/{id}/comments/{commentId} [delete]
func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	adID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	if err := ctrl.comments.DeleteComment(c.Request.Context(), middleware.GetPrincipal(c), adID, commentID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Comment deleted"})
}
