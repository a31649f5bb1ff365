package mappers

import "classifieds/models"

type CommentMapper struct {
	avatarsURL string
}

func NewCommentMapper(avatarsURL string) *CommentMapper {
	return &CommentMapper{avatarsURL: normalizeBase(avatarsURL)}
}

func (m *CommentMapper) ToDto(comment *models.Comment) models.CommentDto {
	dto := models.CommentDto{
		Author:    comment.AuthorID,
		CreatedAt: comment.CreatedAt.UnixMilli(),
		Pk:        comment.ID,
		Text:      comment.Text,
	}
	if comment.Author != nil {
		dto.AuthorFirstName = comment.Author.FirstName
		dto.AuthorImage = imageURL(m.avatarsURL, comment.Author.Image)
	}
	return dto
}

func (m *CommentMapper) ToCommentsDto(comments []models.Comment) models.CommentsDto {
	results := make([]models.CommentDto, 0, len(comments))
	for i := range comments {
		results = append(results, m.ToDto(&comments[i]))
	}
	return models.CommentsDto{Count: len(results), Results: results}
}
