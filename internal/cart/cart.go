// Package cart implements the shopping cart aggregate. A cart holds at
// most one line per (product, size) pair; adding an existing combination
// increments the quantity instead of duplicating the line. Every mutation
// is persisted through a Repository before the in-memory state changes,
// so a failed write leaves the cart untouched.
package cart

import (
	"errors"
	"fmt"

	"storefront-service/internal/model"
)

var (
	// ErrInvalidQuantity is returned when an add is attempted with a
	// non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrLineNotFound is returned when a line index is out of range.
	ErrLineNotFound = errors.New("cart line not found")
)

// Line is one (product, size, quantity) entry. ID is the repository
// assigned identifier; guest lines get session-local identifiers.
type Line struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
}

// Repository persists cart lines. Save assigns Line.ID on first save.
type Repository interface {
	Load() ([]Line, error)
	Save(line *Line) error
	Remove(id uint) error
	Clear() error
}

// Cart is the per-identity cart aggregate
type Cart struct {
	lines []Line
	repo  Repository
}

// Open loads the persisted cart state into a new aggregate
func Open(repo Repository) (*Cart, error) {
	lines, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &Cart{lines: lines, repo: repo}, nil
}

// Lines returns a copy of the current cart lines
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines in the cart
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal returns the sum of price times quantity over all lines
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// AddLine adds qty of the product in the given size. An existing
// (product, size) line is incremented; otherwise a new line is created
// with the product's name, price and image captured at add time. Size
// membership in the product's size set is validated by the caller.
func (c *Cart) AddLine(product *model.Product, size string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	if i := c.findLine(product.ID, size); i >= 0 {
		updated := c.lines[i]
		updated.Quantity += qty
		if err := c.repo.Save(&updated); err != nil {
			return err
		}
		c.lines[i] = updated
		return nil
	}

	line := Line{
		ProductID: product.ID,
		Name:      product.Name,
		Size:      size,
		Quantity:  qty,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
	}
	if err := c.repo.Save(&line); err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

// SetQuantity sets the quantity of the line at index. A quantity below 1
// removes the line.
func (c *Cart) SetQuantity(index, qty int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineNotFound
	}
	if qty < 1 {
		return c.RemoveLine(index)
	}

	updated := c.lines[index]
	updated.Quantity = qty
	if err := c.repo.Save(&updated); err != nil {
		return err
	}
	c.lines[index] = updated
	return nil
}

// RemoveLine removes the line at index
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineNotFound
	}
	if err := c.repo.Remove(c.lines[index].ID); err != nil {
		return err
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Clear removes all lines from the cart and its repository
func (c *Cart) Clear() error {
	if err := c.repo.Clear(); err != nil {
		return err
	}
	c.lines = nil
	return nil
}

func (c *Cart) findLine(productID uint, size string) int {
	for i, l := range c.lines {
		if l.ProductID == productID && l.Size == size {
			return i
		}
	}
	return -1
}
