package models

import "gorm.io/gorm"

type CartItem struct {
	gorm.Model
	UserID    uint `json:"userId" gorm:"index;not null"`
	ProductID uint `json:"productId" gorm:"index;not null"`
	Quantity  int  `json:"quantity" gorm:"not null"`
}

type CartItemCreate struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}
