package models

import "gorm.io/gorm"

// Orders are append-only: no handler mutates or deletes them once created.
type Order struct {
	gorm.Model
	UserID     uint        `json:"userId" gorm:"index;not null"`
	Reference  string      `json:"reference" gorm:"uniqueIndex;size:64"`
	TotalPrice float64     `json:"totalPrice"`
	OrderItems []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"orderId" gorm:"index"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}
