package services

import (
	"classifieds/mappers"
	"classifieds/models"
	"context"
	"fmt"
	"time"
)

type CommentService struct {
	comments CommentRepository
	ads      AdRepository
	users    UserRepository
	mapper   *mappers.CommentMapper
	now      func() time.Time
}

func NewCommentService(comments CommentRepository, ads AdRepository, users UserRepository, mapper *mappers.CommentMapper) *CommentService {
	return &CommentService{
		comments: comments,
		ads:      ads,
		users:    users,
		mapper:   mapper,
		now:      time.Now,
	}
}

func (s *CommentService) GetComments(ctx context.Context, adID int) (*models.CommentsDto, error) {
	if _, err := s.ads.FindByID(ctx, adID); err != nil {
		return nil, translateNotFound(err, "ad")
	}
	comments, err := s.comments.FindByAdID(ctx, adID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	dto := s.mapper.ToCommentsDto(comments)
	return &dto, nil
}

func (s *CommentService) AddComment(ctx context.Context, principal models.Principal, adID int, input models.CreateOrUpdateCommentRequest) (*models.CommentDto, error) {
	user, err := currentUser(ctx, s.users, principal)
	if err != nil {
		return nil, err
	}
	if _, err := s.ads.FindByID(ctx, adID); err != nil {
		return nil, translateNotFound(err, "ad")
	}

	comment := &models.Comment{
		Text:      input.Text,
		AuthorID:  user.ID,
		Author:    user,
		AdID:      adID,
		CreatedAt: s.now(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	dto := s.mapper.ToDto(comment)
	return &dto, nil
}

// loadModifiable returns the comment after checking that it belongs to adID
// and that the caller may change it.
func (s *CommentService) loadModifiable(ctx context.Context, principal models.Principal, adID, commentID int) (*models.Comment, error) {
	user, err := currentUser(ctx, s.users, principal)
	if err != nil {
		return nil, err
	}
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, translateNotFound(err, "comment")
	}
	if comment.AdID != adID {
		return nil, ErrNotFound
	}
	if !CanModify(user, comment.AuthorID) {
		return nil, ErrForbidden
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, principal models.Principal, adID, commentID int, input models.CreateOrUpdateCommentRequest) (*models.CommentDto, error) {
	comment, err := s.loadModifiable(ctx, principal, adID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Text = input.Text
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, translateNotFound(err, "comment")
	}

	dto := s.mapper.ToDto(comment)
	return &dto, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, principal models.Principal, adID, commentID int) error {
	comment, err := s.loadModifiable(ctx, principal, adID, commentID)
	if err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return translateNotFound(err, "comment")
	}
	return nil
}
