package ecs

import (
	"errors"
	"slices"
)

// EntitySpec describes an entity and its subtree.
// Build assembles children first and validates each node before linking it
// into its parent, so a failure never leaves a partially linked tree.
type EntitySpec struct {
	ID         string
	Components []Component
	Children   []EntitySpec
}

// Build constructs the described tree. Schema errors raised by a descendant
// carry the ids of its ancestors in SchemaError.Path.
func (s EntitySpec) Build() (*Entity, error) {
	children := make([]*Entity, 0, len(s.Children))
	for _, childSpec := range s.Children {
		child, err := childSpec.Build()
		if err != nil {
			var schemaErr *SchemaError
			if errors.As(err, &schemaErr) {
				schemaErr.Path = slices.Insert(schemaErr.Path, 0, s.ID)
			}
			return nil, err
		}
		children = append(children, child)
	}
	return NewEntity(s.ID, s.Components, children...)
}

// MustBuild is like Build but panics on error.
func (s EntitySpec) MustBuild() *Entity {
	e, err := s.Build()
	if err != nil {
		panic(err)
	}
	return e
}
