package models

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=16"`
	FirstName string `json:"firstName" binding:"required,min=2,max=16"`
	LastName  string `json:"lastName" binding:"required,min=2,max=16"`
	Phone     string `json:"phone" binding:"required,phone"`
	Role      string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=16"`
	LastName  string `json:"lastName" binding:"required,min=2,max=16"`
	Phone     string `json:"phone" binding:"required,phone"`
}

type NewPasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8,max=16"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=16"`
}

type CreateOrUpdateAdRequest struct {
	Title       string `json:"title" binding:"required,min=4,max=32"`
	Price       int    `json:"price" binding:"gte=0,lte=10000000"`
	Description string `json:"description" binding:"required,min=8,max=64"`
}

type CreateOrUpdateCommentRequest struct {
	Text string `json:"text" binding:"required,min=8,max=64"`
}

// AdDto is the compact projection used in listings.
type AdDto struct {
	Pk     int     `json:"pk"`
	Author int     `json:"author"`
	Image  *string `json:"image"`
	Price  int     `json:"price"`
	Title  string  `json:"title"`
}

type ExtendedAdDto struct {
	Pk              int     `json:"pk"`
	AuthorFirstName string  `json:"authorFirstName"`
	AuthorLastName  string  `json:"authorLastName"`
	Description     string  `json:"description"`
	Email           string  `json:"email"`
	Image           *string `json:"image"`
	Phone           string  `json:"phone"`
	Price           int     `json:"price"`
	Title           string  `json:"title"`
}

type AdsDto struct {
	Count   int     `json:"count"`
	Results []AdDto `json:"results"`
}

type UserDto struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Role      Role    `json:"role"`
	Image     *string `json:"image"`
}

type CommentDto struct {
	Author          int     `json:"author"`
	AuthorImage     *string `json:"authorImage"`
	AuthorFirstName string  `json:"authorFirstName"`
	CreatedAt       int64   `json:"createdAt"`
	Pk              int     `json:"pk"`
	Text            string  `json:"text"`
}

type CommentsDto struct {
	Count   int          `json:"count"`
	Results []CommentDto `json:"results"`
}
