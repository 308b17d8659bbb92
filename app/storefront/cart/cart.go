package cart

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ProductSnapshot is the frozen view of a product a line item carries. The
// live product row may change or disappear without touching stored carts.
type ProductSnapshot struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	Image        string          `json:"image"`
	HoverImage   string          `json:"hoverImage"`
	GoldKarat    int             `json:"goldKarat"`
	GoldWeight   decimal.Decimal `json:"goldWeight"`
	DiamondCarat decimal.Decimal `json:"diamondCarat"`
}

type Item struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is a single-writer state machine: mutations come from one UI goroutine
// only, so there is no locking. Every mutation recomputes the derived totals
// and synchronously persists the full item list.
type Cart struct {
	items       map[string]*Item
	order       []string
	totalItems  int
	totalAmount decimal.Decimal
	storage     Storage
}

func New(storage Storage) *Cart {
	c := &Cart{
		items:       make(map[string]*Item),
		totalAmount: decimal.Zero,
		storage:     storage,
	}
	return c
}

// Load builds a cart rehydrated from storage. A missing, corrupt or
// version-mismatched stored value yields an empty cart and the stored value
// is discarded.
func Load(storage Storage) *Cart {
	c := New(storage)
	if storage == nil {
		return c
	}
	items, err := loadItems(storage)
	if err != nil {
		logrus.Warnf("Discarding unreadable cart state: %v", err)
		if clearErr := storage.Clear(); clearErr != nil {
			logrus.Warnf("Failed to clear corrupt cart state: %v", clearErr)
		}
		return c
	}
	c.SetCart(items)
	return c
}

// AddToCart merges by product id: an existing line gains the given quantity,
// a new product is inserted with it. Quantities below one count as one.
func (c *Cart) AddToCart(product ProductSnapshot, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if item, ok := c.items[product.ID]; ok {
		item.Quantity += quantity
		item.Product = product
	} else {
		c.items[product.ID] = &Item{Product: product, Quantity: quantity}
		c.order = append(c.order, product.ID)
	}
	c.recompute()
	c.persist()
}

// RemoveFromCart drops the whole line regardless of quantity.
func (c *Cart) RemoveFromCart(productID string) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.recompute()
	c.persist()
}

// UpdateQuantity sets the quantity directly. Zero or negative values are
// ignored; removal is a separate explicit action.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		return
	}
	item, ok := c.items[productID]
	if !ok {
		return
	}
	item.Quantity = quantity
	c.recompute()
	c.persist()
}

func (c *Cart) ClearCart() {
	c.items = make(map[string]*Item)
	c.order = nil
	c.recompute()
	if c.storage != nil {
		if err := c.storage.Clear(); err != nil {
			logrus.Warnf("Failed to clear persisted cart: %v", err)
		}
	}
}

// SetCart bulk-replaces the state; used during startup rehydration.
func (c *Cart) SetCart(items []Item) {
	c.items = make(map[string]*Item, len(items))
	c.order = c.order[:0]
	for i := range items {
		item := items[i]
		if item.Quantity < 1 {
			continue
		}
		if existing, ok := c.items[item.Product.ID]; ok {
			existing.Quantity += item.Quantity
			continue
		}
		c.items[item.Product.ID] = &item
		c.order = append(c.order, item.Product.ID)
	}
	c.recompute()
	c.persist()
}

// Items returns lines in insertion order.
func (c *Cart) Items() []Item {
	items := make([]Item, 0, len(c.items))
	for _, id := range c.order {
		items = append(items, *c.items[id])
	}
	return items
}

func (c *Cart) Quantity(productID string) int {
	if item, ok := c.items[productID]; ok {
		return item.Quantity
	}
	return 0
}

func (c *Cart) TotalItems() int { return c.totalItems }

func (c *Cart) TotalAmount() decimal.Decimal { return c.totalAmount }

func (c *Cart) recompute() {
	total := 0
	amount := decimal.Zero
	for _, item := range c.items {
		total += item.Quantity
		amount = amount.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.totalItems = total
	c.totalAmount = amount
}

func (c *Cart) persist() {
	if c.storage == nil {
		return
	}
	if err := saveItems(c.storage, c.Items()); err != nil {
		logrus.Warnf("Failed to persist cart state: %v", err)
	}
}
