package cart

import (
	"github.com/sirupsen/logrus"
)

// Wishlist is the quantity-less variant of the cart: a set of product
// snapshots keyed by id. Same single-writer and persistence model.
type Wishlist struct {
	items   map[string]ProductSnapshot
	order   []string
	storage Storage
}

func NewWishlist(storage Storage) *Wishlist {
	return &Wishlist{
		items:   make(map[string]ProductSnapshot),
		storage: storage,
	}
}

func LoadWishlist(storage Storage) *Wishlist {
	w := NewWishlist(storage)
	if storage == nil {
		return w
	}
	items, err := loadItems(storage)
	if err != nil {
		logrus.Warnf("Discarding unreadable wishlist state: %v", err)
		if clearErr := storage.Clear(); clearErr != nil {
			logrus.Warnf("Failed to clear corrupt wishlist state: %v", clearErr)
		}
		return w
	}
	snapshots := make([]ProductSnapshot, 0, len(items))
	for _, item := range items {
		snapshots = append(snapshots, item.Product)
	}
	w.Set(snapshots)
	return w
}

// Add is a no-op when the product is already present.
func (w *Wishlist) Add(product ProductSnapshot) {
	if _, ok := w.items[product.ID]; ok {
		return
	}
	w.items[product.ID] = product
	w.order = append(w.order, product.ID)
	w.persist()
}

func (w *Wishlist) Remove(productID string) {
	if _, ok := w.items[productID]; !ok {
		return
	}
	delete(w.items, productID)
	for i, id := range w.order {
		if id == productID {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	w.persist()
}

func (w *Wishlist) Clear() {
	w.items = make(map[string]ProductSnapshot)
	w.order = nil
	if w.storage != nil {
		if err := w.storage.Clear(); err != nil {
			logrus.Warnf("Failed to clear persisted wishlist: %v", err)
		}
	}
}

func (w *Wishlist) Set(products []ProductSnapshot) {
	w.items = make(map[string]ProductSnapshot, len(products))
	w.order = w.order[:0]
	for _, p := range products {
		if _, ok := w.items[p.ID]; ok {
			continue
		}
		w.items[p.ID] = p
		w.order = append(w.order, p.ID)
	}
	w.persist()
}

func (w *Wishlist) Contains(productID string) bool {
	_, ok := w.items[productID]
	return ok
}

func (w *Wishlist) Items() []ProductSnapshot {
	items := make([]ProductSnapshot, 0, len(w.items))
	for _, id := range w.order {
		items = append(items, w.items[id])
	}
	return items
}

func (w *Wishlist) Len() int { return len(w.items) }

func (w *Wishlist) persist() {
	if w.storage == nil {
		return
	}
	items := make([]Item, 0, len(w.items))
	for _, id := range w.order {
		items = append(items, Item{Product: w.items[id], Quantity: 1})
	}
	if err := saveItems(w.storage, items); err != nil {
		logrus.Warnf("Failed to persist wishlist state: %v", err)
	}
}
