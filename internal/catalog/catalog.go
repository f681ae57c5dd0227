package catalog

import (
	"context"
	"errors"
)

// ErrNotApplicable is returned by actions that found nothing to clean.
// Callers treat it as a successful run that freed zero bytes.
var ErrNotApplicable = errors.New("nothing to clean")

// Kind classifies a cleaned entry.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindCache
	KindPackage
	KindLog
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindCache:
		return "cache"
	case KindPackage:
		return "package"
	case KindLog:
		return "log"
	}
	return "unknown"
}

// Entry is one removed path reported by an action.
type Entry struct {
	Path string
	Size uint64
	Kind Kind
}

// Result contains cleaning action results.
type Result struct {
	BytesFreed uint64
	Entries    []Entry
}

// Action performs a cleanup operation. It may block on filesystem walks or
// external commands; callers that need a timeout wrap the context themselves.
type Action func(ctx context.Context) (Result, error)

// Item is one cleanable unit. Immutable after catalog construction.
type Item struct {
	Name              string
	Description       string
	Kind              Kind
	RequiresPrivilege bool
	Action            Action
}

// Category is a named ordered group of items.
type Category struct {
	Name        string
	Description string
	Items       []Item
}

// Catalog is the ordered list of cleanable categories.
type Catalog []Category

// Find returns the item with the given name, searching categories in order.
func (c Catalog) Find(name string) (Item, bool) {
	for _, cat := range c {
		for _, item := range cat.Items {
			if item.Name == name {
				return item, true
			}
		}
	}
	return Item{}, false
}

// ItemNames returns all item names in catalog order.
func (c Catalog) ItemNames() []string {
	var names []string
	for _, cat := range c {
		for _, item := range cat.Items {
			names = append(names, item.Name)
		}
	}
	return names
}
