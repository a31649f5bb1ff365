package services

import (
	"classifieds/models"
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int, hashedPassword string) error
	UpdateImage(ctx context.Context, userID int, image string) error
}

type AdRepository interface {
	Create(ctx context.Context, ad *models.Ad) error
	FindByID(ctx context.Context, id int) (*models.Ad, error)
	FindAll(ctx context.Context) ([]models.Ad, error)
	FindByAuthorID(ctx context.Context, authorID int) ([]models.Ad, error)
	Update(ctx context.Context, ad *models.Ad) error
	UpdateImage(ctx context.Context, id int, image string) error
	Delete(ctx context.Context, id int) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id int) (*models.Comment, error)
	FindByAdID(ctx context.Context, adID int) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int) error
	DeleteByAdID(ctx context.Context, adID int) (int64, error)
}

// ImageStore keeps image bytes under flat names generated by the services.
// Read of a missing name returns an error wrapping fs.ErrNotExist; Delete of a
// missing name succeeds.
type ImageStore interface {
	Save(ctx context.Context, name string, data []byte) error
	Read(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
}

type AdsListCache interface {
	Get(ctx context.Context) (*models.AdsDto, bool)
	Set(ctx context.Context, ads *models.AdsDto)
	Invalidate(ctx context.Context)
}

type PasswordEncoder interface {
	Encode(raw string) (string, error)
	Matches(raw, encoded string) bool
}

type PasswordChangeNotifier interface {
	NotifyPasswordChanged(ctx context.Context, user *models.User) error
}

type TokenIssuer interface {
	Generate(user *models.User) (string, error)
}
