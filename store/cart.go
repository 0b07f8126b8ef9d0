package store

import models "phone-store/model"

// Cart is the in-memory CartStore for the single active cart.
type Cart struct {
	items []models.CartItem
	index map[int64]int
}

func NewCart() *Cart {
	return &Cart{index: make(map[int64]int)}
}

func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Get(phoneID int64) (models.CartItem, bool) {
	i, ok := c.index[phoneID]
	if !ok {
		return models.CartItem{}, false
	}
	return c.items[i], true
}

func (c *Cart) Set(item models.CartItem) {
	if i, ok := c.index[item.PhoneID]; ok {
		c.items[i] = item
		return
	}
	c.index[item.PhoneID] = len(c.items)
	c.items = append(c.items, item)
}

func (c *Cart) Remove(phoneID int64) bool {
	i, ok := c.index[phoneID]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, phoneID)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].PhoneID] = j
	}
	return true
}

func (c *Cart) Clear() {
	c.items = nil
	c.index = make(map[int64]int)
}

func (c *Cart) Len() int { return len(c.items) }
