package store

import models "phone-store/model"

// CatalogStore holds the phone catalog. It is a plain container: all
// validation and stock bookkeeping rules live in the service layer.
type CatalogStore interface {
	// List returns every phone in insertion order.
	List() []models.Phone
	Get(id int64) (models.Phone, bool)
	Add(p models.Phone)
	// Replace overwrites the phone with the same id, keeping its
	// position. Reports whether the id existed.
	Replace(p models.Phone) bool
	// Remove deletes and returns the phone for id.
	Remove(id int64) (models.Phone, bool)
	// NextID returns max existing id + 1, or 1 for an empty catalog.
	NextID() int64
}

// CartStore holds the lines of the single active cart, one per phone.
type CartStore interface {
	// Items returns every line in insertion order.
	Items() []models.CartItem
	Get(phoneID int64) (models.CartItem, bool)
	// Set inserts the line, or overwrites the line with the same
	// phone id in place.
	Set(item models.CartItem)
	Remove(phoneID int64) bool
	Clear()
	Len() int
}
