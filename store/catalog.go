package store

import models "phone-store/model"

// Catalog is the in-memory CatalogStore. A slice keeps insertion order
// for listing; the index maps id -> slice position.
type Catalog struct {
	phones []models.Phone
	index  map[int64]int
}

func NewCatalog() *Catalog {
	return &Catalog{index: make(map[int64]int)}
}

func (c *Catalog) List() []models.Phone {
	out := make([]models.Phone, len(c.phones))
	copy(out, c.phones)
	return out
}

func (c *Catalog) Get(id int64) (models.Phone, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Phone{}, false
	}
	return c.phones[i], true
}

func (c *Catalog) Add(p models.Phone) {
	c.index[p.ID] = len(c.phones)
	c.phones = append(c.phones, p)
}

func (c *Catalog) Replace(p models.Phone) bool {
	i, ok := c.index[p.ID]
	if !ok {
		return false
	}
	c.phones[i] = p
	return true
}

func (c *Catalog) Remove(id int64) (models.Phone, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Phone{}, false
	}
	removed := c.phones[i]
	c.phones = append(c.phones[:i], c.phones[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.phones); j++ {
		c.index[c.phones[j].ID] = j
	}
	return removed, true
}

func (c *Catalog) NextID() int64 {
	var max int64
	for id := range c.index {
		if id > max {
			max = id
		}
	}
	return max + 1
}
