package mappers

import "classifieds/models"

type UserMapper struct {
	avatarsURL string
}

func NewUserMapper(avatarsURL string) *UserMapper {
	return &UserMapper{avatarsURL: normalizeBase(avatarsURL)}
}

func (m *UserMapper) ToDto(user *models.User) models.UserDto {
	return models.UserDto{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      user.Role,
		Image:     imageURL(m.avatarsURL, user.Image),
	}
}
