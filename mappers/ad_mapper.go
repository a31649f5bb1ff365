package mappers

import "classifieds/models"

type AdMapper struct {
	imagesURL string
}

func NewAdMapper(imagesURL string) *AdMapper {
	return &AdMapper{imagesURL: normalizeBase(imagesURL)}
}

func (m *AdMapper) ToDto(ad *models.Ad) models.AdDto {
	return models.AdDto{
		Pk:     ad.ID,
		Author: ad.AuthorID,
		Image:  imageURL(m.imagesURL, ad.Image),
		Price:  ad.Price,
		Title:  ad.Title,
	}
}

// ToExtendedDto flattens the author's contact fields into the ad view.
func (m *AdMapper) ToExtendedDto(ad *models.Ad) models.ExtendedAdDto {
	dto := models.ExtendedAdDto{
		Pk:          ad.ID,
		Description: ad.Description,
		Image:       imageURL(m.imagesURL, ad.Image),
		Price:       ad.Price,
		Title:       ad.Title,
	}
	if ad.Author != nil {
		dto.AuthorFirstName = ad.Author.FirstName
		dto.AuthorLastName = ad.Author.LastName
		dto.Email = ad.Author.Email
		dto.Phone = ad.Author.Phone
	}
	return dto
}

func (m *AdMapper) ToAdsDto(ads []models.Ad) models.AdsDto {
	results := make([]models.AdDto, 0, len(ads))
	for i := range ads {
		results = append(results, m.ToDto(&ads[i]))
	}
	return models.AdsDto{Count: len(results), Results: results}
}
