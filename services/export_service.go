package services

import (
	"classifieds/models"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const adsSheet = "Ads"

var adsSheetHeader = []interface{}{"ID", "Title", "Price", "Description", "Image"}

type ExportService struct {
	ads   AdRepository
	users UserRepository
}

func NewExportService(ads AdRepository, users UserRepository) *ExportService {
	return &ExportService{ads: ads, users: users}
}

// ExportUserAds builds a workbook with one row per ad of the caller. The
// caller must close the returned file.
func (s *ExportService) ExportUserAds(ctx context.Context, principal models.Principal) (*excelize.File, error) {
	user, err := currentUser(ctx, s.users, principal)
	if err != nil {
		return nil, err
	}
	ads, err := s.ads.FindByAuthorID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user ads: %w", err)
	}

	f := excelize.NewFile()
	if err := writeAdsSheet(f, ads); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeAdsSheet(f *excelize.File, ads []models.Ad) error {
	if err := f.SetSheetName(f.GetSheetName(0), adsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(adsSheet, "A1", &adsSheetHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, ad := range ads {
		image := ""
		if ad.Image != nil {
			image = *ad.Image
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{ad.ID, ad.Title, ad.Price, ad.Description, image}
		if err := f.SetSheetRow(adsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return nil
}
