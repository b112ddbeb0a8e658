package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username   string `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email      string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password   string `json:"-" gorm:"not null"`
	IsRetailer bool   `json:"isRetailer"`
}

type SignupData struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	IsRetailer bool   `json:"isRetailer"`
}

// Form-encoded, OAuth2 password-flow style.
type LoginData struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
