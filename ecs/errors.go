package ecs

import (
	"fmt"
	"reflect"
	"strings"
)

// SchemaError reports an entity that violates the component store's
// invariants at construction time.
type SchemaError struct {
	// Entity is the id of the entity that failed to build.
	Entity string
	// Path holds the ids of the enclosing specs, outermost first, when the
	// entity was assembled through EntitySpec.Build.
	Path   []string
	Kind   Kind
	Reason string
}

func (e *SchemaError) Error() string {
	where := e.Entity
	if len(e.Path) > 0 {
		where = strings.Join(e.Path, "/") + "/" + e.Entity
	}
	return fmt.Sprintf("schema error on entity %q: %s", where, e.Reason)
}

// FieldAccessError reports a HasValue or HasValues criterion naming a field
// the matched component does not have.
type FieldAccessError struct {
	Entity string
	Kind   Kind
	Field  string
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("entity %q: component kind %d has no field %q", e.Entity, e.Kind, e.Field)
}

// FieldTypeError reports a HasValue or HasValues criterion whose value has a
// different type than the field it is compared with.
type FieldTypeError struct {
	Entity string
	Kind   Kind
	Field  string
	Want   reflect.Type
	Got    reflect.Type
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("entity %q: component kind %d field %q is %v, compared with %v", e.Entity, e.Kind, e.Field, e.Got, e.Want)
}
