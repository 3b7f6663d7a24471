package inventory

import "fmt"

// Transfer moves the named item from one container to another. Every
// failure condition is checked before either container is touched, so a
// failed transfer leaves both unchanged.
//
// Precondition: from and to are non-nil and distinct.
// Postcondition: On success the item is owned by to and absent from from.
// On error (ErrItemNotFound, ErrItemNotTakeable, ErrDuplicateItem) neither container changed.
func Transfer(from, to *Container, name string) (*Item, error) {
	item, err := from.GetItem(name)
	if err != nil {
		return nil, err
	}
	if !item.IsTakeable() {
		return nil, fmt.Errorf("moving %q: %w", name, ErrItemNotTakeable)
	}
	if to.Has(name) {
		return nil, fmt.Errorf("moving %q: %w", name, ErrDuplicateItem)
	}
	if _, err := from.RemoveItem(name); err != nil {
		return nil, err
	}
	if err := to.AddItem(item); err != nil {
		// Unreachable while to.Has(name) was false; put the item back regardless.
		_ = from.AddItem(item)
		return nil, err
	}
	return item, nil
}
