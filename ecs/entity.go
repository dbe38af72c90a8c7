package ecs

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

// Entity is a node in the world tree. It carries an identifier, at most one
// component per kind, and an ordered list of children it exclusively owns.
type Entity struct {
	id         string
	components *intmap.Map[Kind, Component]
	kinds      []Kind
	children   []*Entity
	owned      bool
}

// NewEntity creates an entity and links children into it.
// It returns a *SchemaError if two components share a kind, if a component is
// nil or not a pointer, or if a child is nil, repeated, or already owned by
// another entity.
func NewEntity(id string, components []Component, children ...*Entity) (*Entity, error) {
	e := &Entity{
		id:         id,
		components: intmap.New[Kind, Component](len(components)),
		kinds:      make([]Kind, 0, len(components)),
	}

	for _, comp := range components {
		if comp == nil {
			return nil, &SchemaError{Entity: id, Reason: "nil component"}
		}
		val := reflect.ValueOf(comp)
		if val.Kind() != reflect.Ptr {
			return nil, &SchemaError{Entity: id, Kind: comp.Kind(), Reason: fmt.Sprintf("component %T must be a pointer", comp)}
		}
		if val.IsNil() {
			return nil, &SchemaError{Entity: id, Reason: fmt.Sprintf("nil %T component", comp)}
		}

		kind := comp.Kind()
		if _, exists := e.components.Get(kind); exists {
			return nil, &SchemaError{Entity: id, Kind: kind, Reason: fmt.Sprintf("duplicate component kind %d (%T)", kind, comp)}
		}
		e.components.Put(kind, comp)
		e.kinds = append(e.kinds, kind)
	}

	for i, child := range children {
		if child == nil {
			return nil, &SchemaError{Entity: id, Reason: "nil child"}
		}
		if child.owned {
			return nil, &SchemaError{Entity: id, Reason: fmt.Sprintf("child %q already has a parent", child.id)}
		}
		if slices.Contains(children[:i], child) {
			return nil, &SchemaError{Entity: id, Reason: fmt.Sprintf("child %q listed more than once", child.id)}
		}
	}
	for _, child := range children {
		child.owned = true
	}
	e.children = slices.Clone(children)

	return e, nil
}

// MustNewEntity is like NewEntity but panics on error.
// It is meant for static world literals.
func MustNewEntity(id string, components []Component, children ...*Entity) *Entity {
	e, err := NewEntity(id, components, children...)
	if err != nil {
		panic(err)
	}
	return e
}

// ID returns the entity's identifier. Identifiers are not required to be unique.
func (e *Entity) ID() string {
	return e.id
}

// Has reports whether the entity carries a component of kind.
func (e *Entity) Has(kind Kind) bool {
	_, ok := e.components.Get(kind)
	return ok
}

// Get returns the stored component of kind, or nil.
// The returned value aliases the entity's storage; mutations are visible to
// every later reader.
func (e *Entity) Get(kind Kind) Component {
	comp, _ := e.components.Get(kind)
	return comp
}

// Kinds returns the entity's component kinds in declaration order.
func (e *Entity) Kinds() []Kind {
	return slices.Clone(e.kinds)
}

// Components returns the entity's components in declaration order.
func (e *Entity) Components() []Component {
	comps := make([]Component, 0, len(e.kinds))
	for _, kind := range e.kinds {
		comp, _ := e.components.Get(kind)
		comps = append(comps, comp)
	}
	return comps
}

// Children returns the entity's children in declaration order.
func (e *Entity) Children() []*Entity {
	return slices.Clone(e.children)
}

// Walk returns a pre-order iterator over the entity and its descendants:
// parents before children, children in declaration order.
func (e *Entity) Walk() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		if e == nil {
			return
		}
		e.walk(yield)
	}
}

func (e *Entity) walk(yield func(*Entity) bool) bool {
	if !yield(e) {
		return false
	}
	for _, child := range e.children {
		if !child.walk(yield) {
			return false
		}
	}
	return true
}

func (e *Entity) String() string {
	if e == nil {
		return "Entity(<nil>)"
	}
	return "Entity(" + e.id + ")"
}

// ReadComponent returns the entity's component of type T, or nil if absent.
//
//	pos := ecs.ReadComponent[Position](ball)
func ReadComponent[T any, PT ComponentPtr[T]](e *Entity) *T {
	kind := PT(new(T)).Kind()
	comp := e.Get(kind)
	if comp == nil {
		return nil
	}
	typed, ok := comp.(PT)
	if !ok {
		return nil
	}
	return (*T)(typed)
}
