package entity

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownType is returned when a record's type tag has no constructor.
var ErrUnknownType = errors.New("entity: unknown type")

// Constructor builds an entity from its saved record.
type Constructor func(rec Record) (Entity, error)

// Registry maps record type tags to constructors.
type Registry struct {
	ctors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds a constructor for tag. Registering a tag twice panics.
func (r *Registry) Register(tag string, ctor Constructor) {
	if tag == "" || ctor == nil {
		panic("entity: register requires a tag and a constructor")
	}
	if _, ok := r.ctors[tag]; ok {
		panic(fmt.Sprintf("entity: type %q already registered", tag))
	}
	r.ctors[tag] = ctor
}

func (r *Registry) Has(tag string) bool {
	_, ok := r.ctors[tag]
	return ok
}

// Tags returns the registered tags sorted by name.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.ctors))
	for tag := range r.ctors {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Build constructs the entity a record describes.
func (r *Registry) Build(rec Record) (Entity, error) {
	ctor, ok := r.ctors[rec.Type]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, rec.Type)
	}
	e, err := ctor(rec)
	if err != nil {
		return nil, fmt.Errorf("entity: build %s: %w", rec.Type, err)
	}
	return e, nil
}
