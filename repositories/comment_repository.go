package repositories

import (
	"classifieds/models"
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

const commentSelect = `
	SELECT
		c.id, c.text, c.author_id, c.ad_id, c.created_at,
		u.id, u.email, u.first_name, u.last_name, u.phone, u.role, u.image
	FROM comments c
	JOIN users u ON u.id = c.author_id
`

func scanComment(row pgx.Row) (*models.Comment, error) {
	comment := &models.Comment{Author: &models.User{}}
	var role string
	err := row.Scan(
		&comment.ID,
		&comment.Text,
		&comment.AuthorID,
		&comment.AdID,
		&comment.CreatedAt,
		&comment.Author.ID,
		&comment.Author.Email,
		&comment.Author.FirstName,
		&comment.Author.LastName,
		&comment.Author.Phone,
		&role,
		&comment.Author.Image,
	)
	if err != nil {
		return nil, notFound(err)
	}
	comment.Author.Role = models.Role(role)
	return comment, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (text, author_id, ad_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		comment.Text, comment.AuthorID, comment.AdID, comment.CreatedAt,
	).Scan(&comment.ID)
}

func (r *CommentRepository) FindByID(ctx context.Context, id int) (*models.Comment, error) {
	return scanComment(r.db.QueryRow(ctx, commentSelect+` WHERE c.id = $1`, id))
}

func (r *CommentRepository) FindByAdID(ctx context.Context, adID int) ([]models.Comment, error) {
	rows, err := r.db.Query(ctx, commentSelect+` WHERE c.ad_id = $1 ORDER BY c.created_at, c.id`, adID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *comment)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	result, err := r.db.Exec(ctx, `UPDATE comments SET text = $1 WHERE id = $2`, comment.Text, comment.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommentRepository) DeleteByAdID(ctx context.Context, adID int) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM comments WHERE ad_id = $1`, adID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
