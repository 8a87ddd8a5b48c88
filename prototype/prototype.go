// Package prototype creates objects by copying a prototypical instance.
package prototype

import (
	"fmt"
	"maps"
	"slices"
)

// Prototype is implemented by types that can produce an independent copy
// of themselves.
type Prototype[T any] interface {
	Clone() T
}

// Book is a catalog entry.
type Book struct {
	Author string
	Name   string
	Price  float64
	Tags   []string
	Meta   map[string]string
}

// NewBook creates a book without tags or metadata.
func NewBook(author, name string, price float64) *Book {
	return &Book{Author: author, Name: name, Price: price}
}

// Render formats the book as <Author> "Name", Price$ with the price in
// three significant digits.
func (b *Book) Render() string {
	return fmt.Sprintf("<%s> %q, %.3g$", b.Author, b.Name, b.Price)
}

// Clone returns a deep copy. Changing the clone's tags or metadata leaves
// b untouched.
func (b *Book) Clone() *Book {
	c := *b
	c.Tags = slices.Clone(b.Tags)
	c.Meta = maps.Clone(b.Meta)
	return &c
}

// Registry keeps named prototypes and hands out clones of them.
type Registry[T Prototype[T]] struct {
	items map[string]T
}

// NewRegistry creates an empty registry.
func NewRegistry[T Prototype[T]]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Register stores a clone of p under name, replacing any previous entry.
func (r *Registry[T]) Register(name string, p T) {
	r.items[name] = p.Clone()
}

// New returns a fresh clone of the prototype stored under name.
func (r *Registry[T]) New(name string) (T, bool) {
	p, ok := r.items[name]
	if !ok {
		var zero T
		return zero, false
	}
	return p.Clone(), true
}
