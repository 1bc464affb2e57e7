package checkout

import (
	"errors"
	"sync"

	"kasirpos-backend/internal/models"
)

var (
	ErrOutOfStock          = errors.New("product is out of stock")
	ErrInsufficientPayment = errors.New("paid amount is less than the total")
	ErrEmptyCart           = errors.New("cart is empty")
)

type CartItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Price     float64 `json:"price"`
	Quantity  float64 `json:"quantity"`
	Subtotal  float64 `json:"subtotal"` // always Price * Quantity
}

// Cart: in-memory state of one cashier's checkout in progress. Everything
// here is transient until checkout or save-order persists it.
type Cart struct {
	Items        []CartItem
	DiscountPct  float64
	CustomerID   *uint
	CustomerName string
}

// EnsureInStock gates adding a product to the cart; checkout re-checks
// per line inside its transaction.
func EnsureInStock(p models.Product) error {
	if p.CurrentStock <= 0 {
		return ErrOutOfStock
	}
	return nil
}

// AddItem appends a line or increments an existing one.
func (c *Cart) AddItem(p models.Product, qty float64) {
	if qty <= 0 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity += qty
			c.Items[i].Subtotal = c.Items[i].Price * c.Items[i].Quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		Quantity:  qty,
		Subtotal:  p.Price * qty,
	})
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// removes the line, same as RemoveItem.
func (c *Cart) UpdateQuantity(productID uint, qty float64) {
	if qty <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			c.Items[i].Subtotal = c.Items[i].Price * qty
			return
		}
	}
}

func (c *Cart) RemoveItem(productID uint) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
	c.DiscountPct = 0
	c.CustomerID = nil
	c.CustomerName = ""
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.Price * it.Quantity
	}
	return sum
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// SelectCustomer attaches or detaches (nil) a customer reference.
func (c *Cart) SelectCustomer(customer *models.Customer) {
	if customer == nil {
		c.CustomerID = nil
		c.CustomerName = ""
		return
	}
	id := customer.ID
	c.CustomerID = &id
	c.CustomerName = customer.Name
}

// Store holds one cart per authenticated user. Carts live only in this
// process; two tabs of the same cashier share one cart.
type Store struct {
	mu    sync.Mutex
	carts map[uint]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[uint]*Cart)}
}

// Get returns the user's cart, creating it on first use. Callers mutate
// the cart under With to stay race-free.
func (s *Store) Get(userID uint) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = &Cart{}
		s.carts[userID] = c
	}
	return c
}

// With runs fn while holding the store lock, handing it the user's cart.
func (s *Store) With(userID uint, fn func(*Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = &Cart{}
		s.carts[userID] = c
	}
	return fn(c)
}

// Drop removes the user's cart entirely (checkout success or explicit clear).
func (s *Store) Drop(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}
