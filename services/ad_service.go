package services

import (
	"classifieds/mappers"
	"classifieds/models"
	"context"
	"fmt"
	"log/slog"
)

type AdService struct {
	ads      AdRepository
	comments CommentRepository
	users    UserRepository
	images   ImageStore
	mapper   *mappers.AdMapper
	cache    AdsListCache
}

// NewAdService wires the ad lifecycle. cache may be nil.
func NewAdService(ads AdRepository, comments CommentRepository, users UserRepository, images ImageStore, mapper *mappers.AdMapper, cache AdsListCache) *AdService {
	return &AdService{
		ads:      ads,
		comments: comments,
		users:    users,
		images:   images,
		mapper:   mapper,
		cache:    cache,
	}
}

func (s *AdService) GetCurrentUser(ctx context.Context, principal models.Principal) (*models.User, error) {
	return currentUser(ctx, s.users, principal)
}

func (s *AdService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// Create stores a new ad owned by the caller and attaches image when given.
// If the image cannot be attached the new row is removed again.
func (s *AdService) Create(ctx context.Context, principal models.Principal, input models.CreateOrUpdateAdRequest, image models.UploadedFile) (*models.AdDto, error) {
	user, err := s.GetCurrentUser(ctx, principal)
	if err != nil {
		return nil, err
	}

	ad := &models.Ad{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		AuthorID:    user.ID,
		Author:      user,
	}
	if err := s.ads.Create(ctx, ad); err != nil {
		return nil, fmt.Errorf("failed to create ad: %w", err)
	}

	if image != nil {
		name, err := s.attachImage(ctx, ad, image)
		if err != nil {
			if delErr := s.ads.Delete(ctx, ad.ID); delErr != nil {
				slog.ErrorContext(ctx, "failed to roll back ad after image failure", "ad_id", ad.ID, "error", delErr)
			}
			s.invalidate(ctx)
			return nil, err
		}
		ad.Image = &name
	}
	s.invalidate(ctx)

	dto := s.mapper.ToDto(ad)
	return &dto, nil
}

func (s *AdService) Get(ctx context.Context, id int) (*models.ExtendedAdDto, error) {
	ad, err := s.ads.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "ad")
	}
	dto := s.mapper.ToExtendedDto(ad)
	return &dto, nil
}

func (s *AdService) GetAll(ctx context.Context) (*models.AdsDto, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	ads, err := s.ads.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ads: %w", err)
	}
	dto := s.mapper.ToAdsDto(ads)

	if s.cache != nil {
		s.cache.Set(ctx, &dto)
	}
	return &dto, nil
}

func (s *AdService) GetAuthorizedUserAds(ctx context.Context, principal models.Principal) (*models.AdsDto, error) {
	user, err := s.GetCurrentUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	ads, err := s.ads.FindByAuthorID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user ads: %w", err)
	}
	dto := s.mapper.ToAdsDto(ads)
	return &dto, nil
}

func (s *AdService) FindAdByID(ctx context.Context, id int) (*models.AdDto, error) {
	ad, err := s.ads.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "ad")
	}
	dto := s.mapper.ToDto(ad)
	return &dto, nil
}

// loadModifiable returns the ad with id after checking that the caller may
// change it.
func (s *AdService) loadModifiable(ctx context.Context, principal models.Principal, id int) (*models.Ad, error) {
	user, err := s.GetCurrentUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	ad, err := s.ads.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "ad")
	}
	if !CanModify(user, ad.AuthorID) {
		return nil, ErrForbidden
	}
	return ad, nil
}

func (s *AdService) Update(ctx context.Context, principal models.Principal, id int, input models.CreateOrUpdateAdRequest) (*models.AdDto, error) {
	ad, err := s.loadModifiable(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	ad.Title = input.Title
	ad.Description = input.Description
	ad.Price = input.Price
	if err := s.ads.Update(ctx, ad); err != nil {
		return nil, translateNotFound(err, "ad")
	}
	s.invalidate(ctx)

	dto := s.mapper.ToDto(ad)
	return &dto, nil
}

// Delete removes the ad's comments, then its image file, then the ad row.
func (s *AdService) Delete(ctx context.Context, principal models.Principal, ad *models.AdDto) error {
	entity, err := s.loadModifiable(ctx, principal, ad.Pk)
	if err != nil {
		return err
	}

	removed, err := s.comments.DeleteByAdID(ctx, entity.ID)
	if err != nil {
		return fmt.Errorf("failed to delete comments of ad %d: %w", entity.ID, err)
	}

	if entity.Image != nil && *entity.Image != "" {
		if err := s.images.Delete(ctx, *entity.Image); err != nil {
			return imageError("delete", *entity.Image, err)
		}
	}

	if err := s.ads.Delete(ctx, entity.ID); err != nil {
		return translateNotFound(err, "ad")
	}
	s.invalidate(ctx)

	slog.InfoContext(ctx, "ad deleted", "ad_id", entity.ID, "comments_removed", removed)
	return nil
}

func (s *AdService) UpdateImage(ctx context.Context, principal models.Principal, id int, file models.UploadedFile) (string, error) {
	ad, err := s.loadModifiable(ctx, principal, id)
	if err != nil {
		return "", err
	}
	name, err := s.attachImage(ctx, ad, file)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return name, nil
}

func (s *AdService) attachImage(ctx context.Context, ad *models.Ad, file models.UploadedFile) (string, error) {
	return replaceImage(ctx, s.images, file, ad.Image, func(name string) error {
		if err := s.ads.UpdateImage(ctx, ad.ID, name); err != nil {
			return translateNotFound(err, "ad")
		}
		return nil
	})
}

func (s *AdService) GetImage(ctx context.Context, fileName string) ([]byte, error) {
	data, err := s.images.Read(ctx, fileName)
	if err != nil {
		return nil, imageError("read", fileName, err)
	}
	return data, nil
}
