package repositories

import (
	"classifieds/models"
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdRepository struct {
	db *pgxpool.Pool
}

func NewAdRepository(db *pgxpool.Pool) *AdRepository {
	return &AdRepository{db: db}
}

const adSelect = `
	SELECT
		a.id, a.title, a.description, a.price, a.author_id, a.image, a.created_at, a.updated_at,
		u.id, u.email, u.first_name, u.last_name, u.phone, u.role, u.image
	FROM ads a
	JOIN users u ON u.id = a.author_id
`

func scanAd(row pgx.Row) (*models.Ad, error) {
	ad := &models.Ad{Author: &models.User{}}
	var role string
	err := row.Scan(
		&ad.ID,
		&ad.Title,
		&ad.Description,
		&ad.Price,
		&ad.AuthorID,
		&ad.Image,
		&ad.CreatedAt,
		&ad.UpdatedAt,
		&ad.Author.ID,
		&ad.Author.Email,
		&ad.Author.FirstName,
		&ad.Author.LastName,
		&ad.Author.Phone,
		&role,
		&ad.Author.Image,
	)
	if err != nil {
		return nil, notFound(err)
	}
	ad.Author.Role = models.Role(role)
	return ad, nil
}

func (r *AdRepository) collect(ctx context.Context, query string, args ...any) ([]models.Ad, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ads := []models.Ad{}
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, *ad)
	}
	return ads, rows.Err()
}

func (r *AdRepository) Create(ctx context.Context, ad *models.Ad) error {
	query := `
		INSERT INTO ads (title, description, price, author_id, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(ctx, query,
		ad.Title, ad.Description, ad.Price, ad.AuthorID, ad.Image, now, now,
	).Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
}

func (r *AdRepository) FindByID(ctx context.Context, id int) (*models.Ad, error) {
	return scanAd(r.db.QueryRow(ctx, adSelect+` WHERE a.id = $1`, id))
}

func (r *AdRepository) FindAll(ctx context.Context) ([]models.Ad, error) {
	return r.collect(ctx, adSelect+` ORDER BY a.id`)
}

func (r *AdRepository) FindByAuthorID(ctx context.Context, authorID int) ([]models.Ad, error) {
	return r.collect(ctx, adSelect+` WHERE a.author_id = $1 ORDER BY a.id`, authorID)
}

func (r *AdRepository) Update(ctx context.Context, ad *models.Ad) error {
	query := `UPDATE ads SET title = $1, description = $2, price = $3, updated_at = $4
	          WHERE id = $5 RETURNING updated_at`
	return notFound(r.db.QueryRow(ctx, query,
		ad.Title, ad.Description, ad.Price, time.Now(), ad.ID,
	).Scan(&ad.UpdatedAt))
}

func (r *AdRepository) UpdateImage(ctx context.Context, id int, image string) error {
	result, err := r.db.Exec(ctx, `UPDATE ads SET image = $1, updated_at = $2 WHERE id = $3`, image, time.Now(), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AdRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
