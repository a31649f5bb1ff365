// Package memrepo keeps users, ads and comments in process memory. It
// satisfies the same contracts as the PostgreSQL repositories, including
// ErrNotFound translation and author joins, and backs DB_DRIVER=memory.
package memrepo

import (
	"classifieds/models"
	"classifieds/repositories"
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

type Store struct {
	mu       sync.RWMutex
	users    map[int]models.User
	ads      map[int]models.Ad
	comments map[int]models.Comment
	nextID   int
	now      func() time.Time
}

func New() *Store {
	return &Store{
		users:    map[int]models.User{},
		ads:      map[int]models.Ad{},
		comments: map[int]models.Comment{},
		now:      time.Now,
	}
}

func (s *Store) Users() *UserRepository       { return &UserRepository{s} }
func (s *Store) Ads() *AdRepository           { return &AdRepository{s} }
func (s *Store) Comments() *CommentRepository { return &CommentRepository{s} }

func (s *Store) id() int {
	s.nextID++
	return s.nextID
}

func (s *Store) author(id int) *models.User {
	user, ok := s.users[id]
	if !ok {
		return nil
	}
	user.Password = ""
	return &user
}

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	now := r.s.now()
	user.ID = r.s.id()
	user.CreatedAt, user.UpdatedAt = now, now
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id int) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *UserRepository) update(id int, fn func(*models.User)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	fn(&user)
	user.UpdatedAt = r.s.now()
	r.s.users[id] = user
	return nil
}

func (r *UserRepository) UpdateProfile(_ context.Context, user *models.User) error {
	return r.update(user.ID, func(u *models.User) {
		u.FirstName = user.FirstName
		u.LastName = user.LastName
		u.Phone = user.Phone
	})
}

func (r *UserRepository) UpdatePassword(_ context.Context, userID int, hashedPassword string) error {
	return r.update(userID, func(u *models.User) { u.Password = hashedPassword })
}

func (r *UserRepository) UpdateImage(_ context.Context, userID int, image string) error {
	return r.update(userID, func(u *models.User) { u.Image = &image })
}

type AdRepository struct{ s *Store }

func (r *AdRepository) Create(_ context.Context, ad *models.Ad) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[ad.AuthorID]; !ok {
		return repositories.ErrNotFound
	}
	now := r.s.now()
	ad.ID = r.s.id()
	ad.CreatedAt, ad.UpdatedAt = now, now
	stored := *ad
	stored.Author = nil
	r.s.ads[ad.ID] = stored
	return nil
}

func (r *AdRepository) joined(ad models.Ad) models.Ad {
	ad.Author = r.s.author(ad.AuthorID)
	return ad
}

func (r *AdRepository) FindByID(_ context.Context, id int) (*models.Ad, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ad, ok := r.s.ads[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	ad = r.joined(ad)
	return &ad, nil
}

func (r *AdRepository) list(keep func(models.Ad) bool) []models.Ad {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ads := []models.Ad{}
	for _, ad := range r.s.ads {
		if keep(ad) {
			ads = append(ads, r.joined(ad))
		}
	}
	sort.Slice(ads, func(i, j int) bool { return ads[i].ID < ads[j].ID })
	return ads
}

func (r *AdRepository) FindAll(context.Context) ([]models.Ad, error) {
	return r.list(func(models.Ad) bool { return true }), nil
}

func (r *AdRepository) FindByAuthorID(_ context.Context, authorID int) ([]models.Ad, error) {
	return r.list(func(ad models.Ad) bool { return ad.AuthorID == authorID }), nil
}

func (r *AdRepository) Update(_ context.Context, ad *models.Ad) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.ads[ad.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	stored.Title = ad.Title
	stored.Description = ad.Description
	stored.Price = ad.Price
	stored.UpdatedAt = r.s.now()
	ad.UpdatedAt = stored.UpdatedAt
	r.s.ads[ad.ID] = stored
	return nil
}

func (r *AdRepository) UpdateImage(_ context.Context, id int, image string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.ads[id]
	if !ok {
		return repositories.ErrNotFound
	}
	stored.Image = &image
	stored.UpdatedAt = r.s.now()
	r.s.ads[id] = stored
	return nil
}

func (r *AdRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.ads[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.s.ads, id)
	return nil
}

type CommentRepository struct{ s *Store }

func (r *CommentRepository) Create(_ context.Context, comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[comment.AuthorID]; !ok {
		return repositories.ErrNotFound
	}
	if _, ok := r.s.ads[comment.AdID]; !ok {
		return repositories.ErrNotFound
	}
	comment.ID = r.s.id()
	stored := *comment
	stored.Author = nil
	r.s.comments[comment.ID] = stored
	return nil
}

func (r *CommentRepository) FindByID(_ context.Context, id int) (*models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comment, ok := r.s.comments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	comment.Author = r.s.author(comment.AuthorID)
	return &comment, nil
}

func (r *CommentRepository) FindByAdID(_ context.Context, adID int) ([]models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comments := []models.Comment{}
	for _, comment := range r.s.comments {
		if comment.AdID == adID {
			comment.Author = r.s.author(comment.AuthorID)
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (r *CommentRepository) Update(_ context.Context, comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.comments[comment.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	stored.Text = comment.Text
	r.s.comments[comment.ID] = stored
	return nil
}

func (r *CommentRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.s.comments, id)
	return nil
}

func (r *CommentRepository) DeleteByAdID(_ context.Context, adID int) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, comment := range r.s.comments {
		if comment.AdID == adID {
			delete(r.s.comments, id)
			n++
		}
	}
	return n, nil
}
