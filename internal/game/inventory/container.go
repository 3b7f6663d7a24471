package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// Item errors. All are recoverable and reported to the player.
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrDuplicateItem   = errors.New("item already present")
	ErrItemNotTakeable = errors.New("item cannot be taken")
)

// EmptyList is rendered in place of an empty item list.
const EmptyList = "n/a"

// Container holds items keyed by name. Iteration follows insertion order.
type Container struct {
	items map[string]*Item
	order []string
}

// NewContainer creates an empty Container.
//
// Postcondition: Len() == 0.
func NewContainer() *Container {
	return &Container{items: make(map[string]*Item)}
}

// AddItem inserts item under its name. An existing item with the same
// name is never overwritten.
//
// Precondition: item must be non-nil.
// Postcondition: GetItem(item.Name()) returns item, or ErrDuplicateItem is returned and the container is unchanged.
func (c *Container) AddItem(item *Item) error {
	if _, exists := c.items[item.Name()]; exists {
		return fmt.Errorf("adding %q: %w", item.Name(), ErrDuplicateItem)
	}
	c.items[item.Name()] = item
	c.order = append(c.order, item.Name())
	return nil
}

// RemoveItem removes and returns the item with the given name.
//
// Postcondition: On success the name is no longer present; on error the container is unchanged.
func (c *Container) RemoveItem(name string) (*Item, error) {
	item, ok := c.items[name]
	if !ok {
		return nil, fmt.Errorf("removing %q: %w", name, ErrItemNotFound)
	}
	delete(c.items, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return item, nil
}

// GetItem returns the item with the given name without removing it.
func (c *Container) GetItem(name string) (*Item, error) {
	item, ok := c.items[name]
	if !ok {
		return nil, fmt.Errorf("looking up %q: %w", name, ErrItemNotFound)
	}
	return item, nil
}

// Has reports whether an item with the given name is present.
func (c *Container) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

// Len returns the number of items held.
func (c *Container) Len() int {
	return len(c.order)
}

// ItemNames returns the held item names in insertion order.
//
// Postcondition: returned slice is a copy; mutations do not affect the container.
func (c *Container) ItemNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Items returns the held items in insertion order.
func (c *Container) Items() []*Item {
	out := make([]*Item, 0, len(c.order))
	for _, n := range c.order {
		out = append(out, c.items[n])
	}
	return out
}

// TotalWeight returns the summed weight of all held items.
//
// Postcondition: result >= 0.
func (c *Container) TotalWeight() float64 {
	var total float64
	for _, it := range c.Items() {
		total += it.Weight()
	}
	return total
}

// ItemList renders the item names as a comma separated phrase, or
// EmptyList when the container is empty.
func (c *Container) ItemList() string {
	if len(c.order) == 0 {
		return EmptyList
	}
	return strings.Join(c.order, ", ")
}
