package service

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	models "phone-store/model"
	"phone-store/store"
)

// Service owns the catalog and cart stores and implements both the
// catalog operations and the reservation engine. The mutex makes every
// operation a single read-modify-write scope, so a reservation can
// never oversell even with requests served on separate goroutines.
type Service struct {
	mu      sync.Mutex
	catalog store.CatalogStore
	cart    store.CartStore
	logger  *zap.Logger
	tracer  trace.Tracer
}

func NewService(catalog store.CatalogStore, cart store.CartStore, logger *zap.Logger) *Service {
	return &Service{
		catalog: catalog,
		cart:    cart,
		logger:  logger,
		tracer:  otel.Tracer("phone-store/service"),
	}
}

// PhoneFilter narrows ListPhones. Zero values mean "no constraint".
type PhoneFilter struct {
	Brand    string
	MaxPrice *float64
}

// PhoneUpdate carries a partial catalog update. A nil field is absent;
// a non-nil field is applied even when it holds a zero value.
type PhoneUpdate struct {
	Name  *string
	Brand *string
	Price *float64
	Stock *int
}

func (f PhoneFilter) matches(p models.Phone) bool {
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

// ListPhones returns the phones matching every supplied filter, in
// insertion order.
func (s *Service) ListPhones(filter PhoneFilter) []models.Phone {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Phone{}
	for _, p := range s.catalog.List() {
		if filter.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) GetPhone(id int64) (models.Phone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.catalog.Get(id)
	if !ok {
		return models.Phone{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) CreatePhone(name, brand string, price float64, stock int) (models.Phone, error) {
	if name == "" {
		return models.Phone{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if brand == "" {
		return models.Phone{}, fmt.Errorf("%w: brand is required", ErrValidation)
	}
	if price < 0 {
		return models.Phone{}, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if stock < 0 {
		return models.Phone{}, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Phone{
		ID:    s.catalog.NextID(),
		Name:  name,
		Brand: brand,
		Price: price,
		Stock: stock,
	}
	s.catalog.Add(p)
	s.logger.Info("phone created", zap.Int64("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (s *Service) UpdatePhone(id int64, upd PhoneUpdate) (models.Phone, error) {
	if upd.Name == nil && upd.Brand == nil && upd.Price == nil && upd.Stock == nil {
		return models.Phone{}, fmt.Errorf("%w: at least one field must be updated", ErrValidation)
	}
	if upd.Name != nil && *upd.Name == "" {
		return models.Phone{}, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if upd.Brand != nil && *upd.Brand == "" {
		return models.Phone{}, fmt.Errorf("%w: brand must not be empty", ErrValidation)
	}
	if upd.Price != nil && *upd.Price < 0 {
		return models.Phone{}, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if upd.Stock != nil && *upd.Stock < 0 {
		return models.Phone{}, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.catalog.Get(id)
	if !ok {
		return models.Phone{}, ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Brand != nil {
		p.Brand = *upd.Brand
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	s.catalog.Replace(p)
	return p, nil
}

// DeletePhone removes the phone and cascade-removes any cart line that
// references it. The released line restores nothing: the record its
// stock lived on is gone.
func (s *Service) DeletePhone(id int64) (models.Phone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.catalog.Remove(id)
	if !ok {
		return models.Phone{}, ErrNotFound
	}
	if s.cart.Remove(id) {
		s.logger.Warn("deleted phone had a cart reservation, line dropped",
			zap.Int64("id", id))
	}
	return p, nil
}

// Reserve adds qty units of a phone to the cart, decrementing stock in
// the same critical section. Each call reserves additional units on top
// of any existing line; it is not an absolute set.
func (s *Service) Reserve(ctx context.Context, phoneID int64, qty int) ([]models.CartItem, error) {
	_, span := s.tracer.Start(ctx, "cart_reserve")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("phone.id", phoneID),
		attribute.Int("reserve.quantity", qty),
	)

	if qty <= 0 {
		span.SetStatus(codes.Error, "invalid quantity")
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.catalog.Get(phoneID)
	if !ok {
		span.SetStatus(codes.Error, "phone not found")
		return nil, ErrNotFound
	}
	if p.Stock < qty {
		span.SetStatus(codes.Error, "insufficient stock")
		return nil, ErrInsufficientStock
	}

	p.Stock -= qty
	s.catalog.Replace(p)

	line, _ := s.cart.Get(phoneID)
	line.PhoneID = phoneID
	line.Quantity += qty
	s.cart.Set(line)

	span.SetAttributes(attribute.Int("phone.stock_remaining", p.Stock))
	span.SetStatus(codes.Ok, "reserved")
	s.logger.Info("stock reserved",
		zap.Int64("phone_id", phoneID),
		zap.Int("quantity", qty),
		zap.Int("stock_remaining", p.Stock))
	return s.cart.Items(), nil
}

// ViewCart prices every line against the current catalog, so a price
// change is reflected immediately.
func (s *Service) ViewCart(ctx context.Context) ([]models.CartItemDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.CartItemDetail{}
	for _, line := range s.cart.Items() {
		p, ok := s.catalog.Get(line.PhoneID)
		if !ok {
			return nil, fmt.Errorf("%w: phone %d", ErrInconsistentState, line.PhoneID)
		}
		out = append(out, models.CartItemDetail{
			PhoneID:    line.PhoneID,
			Quantity:   line.Quantity,
			TotalPrice: p.Price * float64(line.Quantity),
		})
	}
	return out, nil
}

// Release removes the whole cart line for a phone and restores its
// reserved quantity to stock. There is no partial release.
func (s *Service) Release(ctx context.Context, phoneID int64) ([]models.CartItem, error) {
	_, span := s.tracer.Start(ctx, "cart_release")
	defer span.End()
	span.SetAttributes(attribute.Int64("phone.id", phoneID))

	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.cart.Get(phoneID)
	if !ok {
		span.SetStatus(codes.Error, "not in cart")
		return nil, ErrNotInCart
	}
	s.cart.Remove(phoneID)

	if p, ok := s.catalog.Get(phoneID); ok {
		p.Stock += line.Quantity
		s.catalog.Replace(p)
	}

	span.SetStatus(codes.Ok, "released")
	s.logger.Info("reservation released",
		zap.Int64("phone_id", phoneID),
		zap.Int("quantity", line.Quantity))
	return s.cart.Items(), nil
}

// Checkout finalizes the current reservations. Stock was already
// deducted when each line was reserved, so checkout only verifies the
// cart still references live phones and then clears it.
func (s *Service) Checkout(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "checkout")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Len() == 0 {
		span.SetStatus(codes.Error, "cart empty")
		return ErrEmptyCart
	}

	items := s.cart.Items()
	for _, line := range items {
		if _, ok := s.catalog.Get(line.PhoneID); !ok {
			span.SetStatus(codes.Error, "inconsistent cart")
			return fmt.Errorf("%w: phone %d", ErrInconsistentState, line.PhoneID)
		}
	}

	s.cart.Clear()
	span.SetAttributes(attribute.Int("checkout.lines", len(items)))
	span.SetStatus(codes.Ok, "order placed")
	s.logger.Info("checkout completed", zap.Int("lines", len(items)))
	return nil
}
