package models

// Phone is a catalog record. Stock counts units still available for
// reservation; units already in the cart are not included.
type Phone struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// CartItem is one reserved line of the cart, unique per phone.
type CartItem struct {
	PhoneID  int64 `json:"phoneId"`
	Quantity int   `json:"quantity"`
}

// CartItemDetail is a cart line with its total priced at read time.
type CartItemDetail struct {
	PhoneID    int64   `json:"phoneId"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}
