package service

import (
	"context"

	models "phone-store/model"
)

type ServiceInterface interface {
	ListPhones(filter PhoneFilter) []models.Phone
	GetPhone(id int64) (models.Phone, error)
	CreatePhone(name, brand string, price float64, stock int) (models.Phone, error)
	UpdatePhone(id int64, upd PhoneUpdate) (models.Phone, error)
	DeletePhone(id int64) (models.Phone, error)

	Reserve(ctx context.Context, phoneID int64, qty int) ([]models.CartItem, error)
	ViewCart(ctx context.Context) ([]models.CartItemDetail, error)
	Release(ctx context.Context, phoneID int64) ([]models.CartItem, error)
	Checkout(ctx context.Context) error
}
