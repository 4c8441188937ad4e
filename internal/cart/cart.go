package cart

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Item is a configured menu product before it enters the cart. Size and
// Style are variant attributes; both participate in line identity.
type Item struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Size      string `json:"size,omitempty"`
	Style     string `json:"style,omitempty"`
}

// Line is one cart entry. Quantity is always > 0; a line reduced to 0 is
// removed from the cart.
type Line struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Size      string `json:"size,omitempty"`
	Style     string `json:"style,omitempty"`
	Quantity  int    `json:"quantity"`
}

// LineID derives the deterministic identity key for an item: name, then any
// non-empty variant attributes, then the unit price. Adding the same
// configured item twice therefore merges into one line.
func LineID(item Item) string {
	parts := []string{item.Name}
	if item.Size != "" {
		parts = append(parts, item.Size)
	}
	if item.Style != "" {
		parts = append(parts, item.Style)
	}
	parts = append(parts, strconv.FormatInt(item.UnitPrice, 10))
	return strings.Join(parts, "-")
}

// Store holds the in-session line list and writes it through to Storage on
// every mutation. Line order is insertion order, for display only.
type Store struct {
	storage Storage
	tax     TaxCalculator
	lines   []Line
	logger  *zap.Logger
}

// NewStore rehydrates the cart from storage. A read failure falls back to an
// empty cart rather than failing session startup.
func NewStore(storage Storage, logger ...*zap.Logger) *Store {
	l := zap.L().Named("cart.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.store")
	}
	if storage == nil {
		storage = NewMemoryStorage()
	}

	lines, err := storage.Load()
	if err != nil {
		l.Warn("failed to load saved cart, starting empty", zap.Error(err))
		lines = nil
	}

	return &Store{
		storage: storage,
		tax:     NewTaxCalculator(),
		lines:   lines,
		logger:  l,
	}
}

// AddItem merges into an existing line with the same identity or appends a
// new one. Quantities below 1 are treated as 1.
func (s *Store) AddItem(item Item, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	id := LineID(item)
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity += quantity
			s.persist()
			return
		}
	}

	s.lines = append(s.lines, Line{
		ID:        id,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Size:      item.Size,
		Style:     item.Style,
		Quantity:  quantity,
	})
	s.persist()
}

// RemoveItem deletes the line with the given identity key. Removing an
// absent line is a no-op.
func (s *Store) RemoveItem(lineID string) {
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateQuantity sets the line quantity, clamped at 0. A resulting quantity
// of 0 removes the line.
func (s *Store) UpdateQuantity(lineID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	for i := range s.lines {
		if s.lines[i].ID != lineID {
			continue
		}
		if quantity == 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		s.persist()
		return
	}
}

func (s *Store) Clear() {
	s.lines = nil
	s.persist()
}

// Lines returns a copy of the current line list in insertion order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) TotalItems() int {
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

func (s *Store) TotalPrice() int64 {
	var total int64
	for _, line := range s.lines {
		total += line.UnitPrice * int64(line.Quantity)
	}
	return total
}

// TotalWithTax adds VAT on top of TotalPrice, split by category (see
// TaxCalculator).
func (s *Store) TotalWithTax() int64 {
	return s.TotalPrice() + s.tax.TaxTotal(s.lines)
}

// persist overwrites the stored line list. Mutations never fail; a write
// error is logged and the in-memory state stays authoritative.
func (s *Store) persist() {
	if err := s.storage.Save(s.lines); err != nil {
		s.logger.Warn("failed to persist cart", zap.Error(err))
	}
}
