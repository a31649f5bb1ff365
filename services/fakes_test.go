package services

import (
	"classifieds/mappers"
	"classifieds/models"
	"classifieds/repositories/memrepo"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"testing"
)

// memStore is an ImageStore backed by a map. failSave and failDelete make
// the matching operation return errStore.
type memStore struct {
	mu         sync.Mutex
	files      map[string][]byte
	failSave   bool
	failDelete bool
}

var errStore = errors.New("store unavailable")

func newMemStore() *memStore { return &memStore{files: map[string][]byte{}} }

func (s *memStore) Save(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return errStore
	}
	s.files[name] = data
	return nil
}

func (s *memStore) Read(_ context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
	}
	return data, nil
}

func (s *memStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failDelete {
		return errStore
	}
	delete(s.files, name)
	return nil
}

func (s *memStore) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	return names
}

// plainEncoder marks hashes with a prefix so tests can tell hashed from raw.
type plainEncoder struct{}

func (plainEncoder) Encode(raw string) (string, error) { return "hashed:" + raw, nil }
func (plainEncoder) Matches(raw, encoded string) bool {
	return strings.HasPrefix(encoded, "hashed:") && encoded == "hashed:"+raw
}

type countingCache struct {
	stored      *models.AdsDto
	gets        int
	invalidated int
}

func (c *countingCache) Get(context.Context) (*models.AdsDto, bool) {
	c.gets++
	return c.stored, c.stored != nil
}
func (c *countingCache) Set(_ context.Context, ads *models.AdsDto) { c.stored = ads }
func (c *countingCache) Invalidate(context.Context) {
	c.invalidated++
	c.stored = nil
}

type recordingNotifier struct {
	notified []string
	err      error
}

func (n *recordingNotifier) NotifyPasswordChanged(_ context.Context, user *models.User) error {
	n.notified = append(n.notified, user.Email)
	return n.err
}

type fixture struct {
	store    *memrepo.Store
	images   *memStore
	avatars  *memStore
	cache    *countingCache
	notifier *recordingNotifier
	ads      *AdService
	users    *UserService
	comments *CommentService
	auth     *AuthService
	export   *ExportService
}

type staticTokens struct{}

func (staticTokens) Generate(user *models.User) (string, error) { return "token-for-" + user.Email, nil }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memrepo.New()
	f := &fixture{
		store:    store,
		images:   newMemStore(),
		avatars:  newMemStore(),
		cache:    &countingCache{},
		notifier: &recordingNotifier{},
	}
	f.ads = NewAdService(store.Ads(), store.Comments(), store.Users(), f.images, mappers.NewAdMapper("/images"), f.cache)
	f.users = NewUserService(store.Users(), f.avatars, mappers.NewUserMapper("/avatars"), plainEncoder{}, f.notifier)
	f.comments = NewCommentService(store.Comments(), store.Ads(), store.Users(), mappers.NewCommentMapper("/avatars"))
	f.auth = NewAuthService(store.Users(), plainEncoder{}, staticTokens{}, true)
	f.export = NewExportService(store.Ads(), store.Users())
	return f
}

func (f *fixture) user(t *testing.T, email string, role models.Role) models.Principal {
	t.Helper()
	user := &models.User{
		Email:     email,
		Password:  "hashed:password1",
		FirstName: "Ann",
		LastName:  "Lee",
		Phone:     "+7 (900) 123-45-67",
		Role:      role,
	}
	if err := f.store.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return models.Principal{UserID: user.ID, Email: user.Email, Role: role}
}

func (f *fixture) ad(t *testing.T, owner models.Principal, withImage bool) *models.AdDto {
	t.Helper()
	var image models.UploadedFile
	if withImage {
		image = models.NewMemoryFile("photo.png", []byte("png-bytes"))
	}
	dto, err := f.ads.Create(context.Background(), owner, models.CreateOrUpdateAdRequest{
		Title:       "Bicycle",
		Description: "Red city bicycle",
		Price:       1500,
	}, image)
	if err != nil {
		t.Fatalf("create ad: %v", err)
	}
	return dto
}
