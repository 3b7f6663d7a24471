// Package inventory provides items and the containers that own them.
package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the variant of an Item.
type Kind string

// Item kinds.
const (
	KindFood    Kind = "food"
	KindClothes Kind = "clothes"
	KindScenery Kind = "scenery"
	KindUseless Kind = "useless"
)

// Takeable flags, named for readability at construction sites.
const (
	Takeable    = true
	NotTakeable = false
)

// validKinds is the set of valid item kinds.
var validKinds = map[Kind]bool{
	KindFood:    true,
	KindClothes: true,
	KindScenery: true,
	KindUseless: true,
}

// ParseKind converts s to a Kind.
//
// Postcondition: Returns (kind, true) for a known kind, or ("", false).
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !validKinds[k] {
		return "", false
	}
	return k, true
}

// Item is a named, describable, weighted thing. The Kind tags which
// variant it is; variants share every field and differ only in behavior.
type Item struct {
	name        string
	description string
	weight      float64
	kind        Kind
	takeable    bool
}

// NewItem creates a validated Item. Scenery is never takeable, whatever
// takeable says.
//
// Precondition: name is non-empty and contains no whitespace; kind is valid; weight >= 0.
// Postcondition: Returns a non-nil Item or an error describing every violation.
func NewItem(name, description string, weight float64, kind Kind, takeable bool) (*Item, error) {
	var errs []error
	if name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	} else if strings.ContainsAny(name, " \t\r\n") {
		errs = append(errs, fmt.Errorf("name %q must not contain whitespace", name))
	}
	if !validKinds[kind] {
		errs = append(errs, fmt.Errorf("kind must be one of food, clothes, scenery, useless; got %q", kind))
	}
	if weight < 0 {
		errs = append(errs, errors.New("weight must be >= 0"))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("item validation failed: %v", errs)
	}
	if kind == KindScenery {
		takeable = NotTakeable
	}
	return &Item{
		name:        name,
		description: description,
		weight:      weight,
		kind:        kind,
		takeable:    takeable,
	}, nil
}

// Name returns the item's name, its key within a container.
func (i *Item) Name() string { return i.name }

// Description returns the text shown when the item is examined.
func (i *Item) Description() string { return i.description }

// Weight returns the item's weight.
func (i *Item) Weight() float64 { return i.weight }

// Kind returns the item's variant tag.
func (i *Item) Kind() Kind { return i.kind }

// IsTakeable reports whether the item may be moved into a player's inventory.
func (i *Item) IsTakeable() bool { return i.takeable }

// Edible reports whether the item can be eaten.
func (i *Item) Edible() bool { return i.kind == KindFood }
