package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"phone-store/service"
)

// Handler is the HTTP layer that talks to service.ServiceInterface.
type Handler struct {
	svc service.ServiceInterface
}

func NewHandler(s service.ServiceInterface) *Handler {
	return &Handler{svc: s}
}

// RegisterRoutes registers all routes on the provided router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Phones
	r.HandleFunc("/phones", h.ListPhones).Methods("GET")
	r.HandleFunc("/phones", h.CreatePhone).Methods("POST")
	r.HandleFunc("/phones/{id}", h.GetPhone).Methods("GET")
	r.HandleFunc("/phones/{id}", h.UpdatePhone).Methods("PUT")
	r.HandleFunc("/phones/{id}", h.DeletePhone).Methods("DELETE")

	// Cart
	r.HandleFunc("/cart", h.AddToCart).Methods("POST")
	r.HandleFunc("/cart", h.ViewCart).Methods("GET")
	r.HandleFunc("/cart", h.RemoveFromCart).Methods("DELETE")

	// Checkout
	r.HandleFunc("/checkout", h.Checkout).Methods("POST")

	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(notFound)
}

// --- request shapes ---
// Pointer fields distinguish "key absent" from a legitimate zero value.

type createPhoneReq struct {
	Name  *string  `json:"name"`
	Brand *string  `json:"brand"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

type updatePhoneReq struct {
	Name  *string  `json:"name"`
	Brand *string  `json:"brand"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

type addToCartReq struct {
	PhoneID  *int64 `json:"phoneId"`
	Quantity *int   `json:"quantity"`
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeErr(w, http.StatusNotFound, "Not Found")
}

// writeServiceErr maps the service error taxonomy to HTTP statuses.
func writeServiceErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrEmptyCart):
		writeErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrNotInCart):
		writeErr(w, http.StatusNotFound, err.Error())
	default:
		// includes ErrInconsistentState: internal faults say little
		writeErr(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// pathID parses the {id} route variable. A non-integer id names no
// resource, so callers treat a false return as 404.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil
}

// --- phones ---

// ListPhones handles GET /phones?brand=...&maxPrice=...
func (h *Handler) ListPhones(w http.ResponseWriter, r *http.Request) {
	filter := service.PhoneFilter{Brand: r.URL.Query().Get("brand")}
	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "maxPrice must be a number")
			return
		}
		filter.MaxPrice = &maxPrice
	}
	writeJSON(w, http.StatusOK, h.svc.ListPhones(filter))
}

// GetPhone handles GET /phones/{id}
func (h *Handler) GetPhone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErr(w, http.StatusNotFound, "Phone not found")
		return
	}
	p, err := h.svc.GetPhone(id)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreatePhone handles POST /phones
func (h *Handler) CreatePhone(w http.ResponseWriter, r *http.Request) {
	var req createPhoneReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == nil || req.Brand == nil || req.Price == nil || req.Stock == nil {
		writeErr(w, http.StatusBadRequest, "All fields are required")
		return
	}
	p, err := h.svc.CreatePhone(*req.Name, *req.Brand, *req.Price, *req.Stock)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdatePhone handles PUT /phones/{id}
func (h *Handler) UpdatePhone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErr(w, http.StatusNotFound, "Phone not found")
		return
	}
	var req updatePhoneReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.svc.UpdatePhone(id, service.PhoneUpdate{
		Name:  req.Name,
		Brand: req.Brand,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePhone handles DELETE /phones/{id}
func (h *Handler) DeletePhone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErr(w, http.StatusNotFound, "Phone not found")
		return
	}
	p, err := h.svc.DeletePhone(id)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// --- cart ---

// AddToCart handles POST /cart
// body: { "phoneId": 1, "quantity": 2 }
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.PhoneID == nil || req.Quantity == nil {
		writeErr(w, http.StatusBadRequest, "phoneId and quantity are required")
		return
	}
	cart, err := h.svc.Reserve(r.Context(), *req.PhoneID, *req.Quantity)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// ViewCart handles GET /cart
func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.ViewCart(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// RemoveFromCart handles DELETE /cart?phoneId=...
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("phoneId")
	if raw == "" {
		writeErr(w, http.StatusBadRequest, "phoneId is required")
		return
	}
	phoneID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "phoneId must be an integer")
		return
	}
	cart, err := h.svc.Release(r.Context(), phoneID)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// --- checkout ---

// Checkout handles POST /checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Checkout(r.Context()); err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order placed successfully"})
}
