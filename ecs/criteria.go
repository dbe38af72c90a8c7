package ecs

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Criterion is a predicate over a single entity.
// A non-nil error aborts the query that is evaluating the criterion.
type Criterion interface {
	Evaluate(e *Entity) (bool, error)
}

// Criteria is a list of criteria joined by logical AND.
// An empty list matches every entity.
type Criteria []Criterion

// Evaluate reports whether every criterion holds, stopping at the first
// false result or error.
func (c Criteria) Evaluate(e *Entity) (bool, error) {
	for _, criterion := range c {
		ok, err := criterion.Evaluate(e)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (c Criteria) String() string {
	parts := make([]string, len(c))
	for i, criterion := range c {
		parts[i] = fmt.Sprint(criterion)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// PredicateFunc adapts a function to the Criterion interface.
type PredicateFunc func(e *Entity) (bool, error)

func (f PredicateFunc) Evaluate(e *Entity) (bool, error) {
	return f(e)
}

func (f PredicateFunc) String() string {
	return "Has(func)"
}

type hasId struct {
	id string
}

// HasId matches entities whose id equals id.
func HasId(id string) Criterion {
	return hasId{id: id}
}

func (c hasId) Evaluate(e *Entity) (bool, error) {
	return e.id == c.id, nil
}

func (c hasId) String() string {
	return fmt.Sprintf("HasId(%q)", c.id)
}

type hasComponent struct {
	kind Kind
}

// HasComponent matches entities carrying a component of kind.
func HasComponent(kind Kind) Criterion {
	return hasComponent{kind: kind}
}

func (c hasComponent) Evaluate(e *Entity) (bool, error) {
	return e.Has(c.kind), nil
}

func (c hasComponent) String() string {
	return fmt.Sprintf("HasComponent(%d)", c.kind)
}

type hasNotComponent struct {
	kind Kind
}

// HasNotComponent matches entities without a component of kind.
func HasNotComponent(kind Kind) Criterion {
	return hasNotComponent{kind: kind}
}

func (c hasNotComponent) Evaluate(e *Entity) (bool, error) {
	return !e.Has(c.kind), nil
}

func (c hasNotComponent) String() string {
	return fmt.Sprintf("HasNotComponent(%d)", c.kind)
}

type hasValues struct {
	kind   Kind
	fields []string
	values []any
}

// HasValue matches entities that carry a component of kind whose field
// equals value. Equality is structural, so value must have the field's type;
// a value of another type returns a *FieldTypeError. A nil value matches a
// nil field. Evaluating against a component without that field returns a
// *FieldAccessError.
func HasValue(kind Kind, field string, value any) Criterion {
	return hasValues{kind: kind, fields: []string{field}, values: []any{value}}
}

// HasValues is the conjunction of HasValue over every field/value pair.
// All named fields are checked for existence, then for type, before any
// value is compared.
func HasValues(kind Kind, values map[string]any) Criterion {
	fields := slices.Sorted(maps.Keys(values))
	c := hasValues{kind: kind, fields: fields, values: make([]any, len(fields))}
	for i, field := range fields {
		c.values[i] = values[field]
	}
	return c
}

func (c hasValues) Evaluate(e *Entity) (bool, error) {
	comp := e.Get(c.kind)
	if comp == nil {
		return false, nil
	}

	accessor, _ := comp.(FieldAccessor)
	actual := make([]any, len(c.fields))
	for i, field := range c.fields {
		if accessor == nil {
			return false, &FieldAccessError{Entity: e.id, Kind: c.kind, Field: field}
		}
		v, ok := accessor.Field(field)
		if !ok {
			return false, &FieldAccessError{Entity: e.id, Kind: c.kind, Field: field}
		}
		actual[i] = v
	}

	for i, want := range c.values {
		if want == nil {
			continue
		}
		if got := reflect.TypeOf(actual[i]); got != reflect.TypeOf(want) {
			return false, &FieldTypeError{Entity: e.id, Kind: c.kind, Field: c.fields[i], Want: reflect.TypeOf(want), Got: got}
		}
	}

	for i, want := range c.values {
		if want == nil {
			if !isNil(actual[i]) {
				return false, nil
			}
			continue
		}
		if !reflect.DeepEqual(actual[i], want) {
			return false, nil
		}
	}
	return true, nil
}

// isNil matches a nil interface as well as a nil pointer, map, slice, func
// or channel held in one.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func (c hasValues) String() string {
	if len(c.fields) == 1 {
		return fmt.Sprintf("HasValue(%d, %q, %v)", c.kind, c.fields[0], c.values[0])
	}
	pairs := make([]string, len(c.fields))
	for i, field := range c.fields {
		pairs[i] = fmt.Sprintf("%q: %v", field, c.values[i])
	}
	return fmt.Sprintf("HasValues(%d, {%s})", c.kind, strings.Join(pairs, ", "))
}

// Has wraps a caller-supplied predicate. Errors it returns reach the caller
// of Get or Filter unchanged.
func Has(predicate func(e *Entity) (bool, error)) Criterion {
	return PredicateFunc(predicate)
}

// HasComponentWhere matches entities carrying a component of type T for
// which predicate holds. Entities without the component do not match and
// the predicate is not called for them.
func HasComponentWhere[T any, PT ComponentPtr[T]](predicate func(c *T) (bool, error)) Criterion {
	return PredicateFunc(func(e *Entity) (bool, error) {
		comp := ReadComponent[T, PT](e)
		if comp == nil {
			return false, nil
		}
		return predicate(comp)
	})
}

type not struct {
	criterion Criterion
}

// Not inverts criterion. Errors pass through.
func Not(criterion Criterion) Criterion {
	return not{criterion: criterion}
}

func (c not) Evaluate(e *Entity) (bool, error) {
	ok, err := c.criterion.Evaluate(e)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (c not) String() string {
	return fmt.Sprintf("Not(%v)", c.criterion)
}

type or struct {
	criteria []Criterion
}

// Or matches when any criterion holds, evaluated left to right.
// Or with no criteria matches nothing.
func Or(criteria ...Criterion) Criterion {
	return or{criteria: criteria}
}

func (c or) Evaluate(e *Entity) (bool, error) {
	for _, criterion := range c.criteria {
		ok, err := criterion.Evaluate(e)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (c or) String() string {
	parts := make([]string, len(c.criteria))
	for i, criterion := range c.criteria {
		parts[i] = fmt.Sprint(criterion)
	}
	return "Or(" + strings.Join(parts, ", ") + ")"
}

// And matches when every criterion holds. It is Criteria in single-criterion form.
func And(criteria ...Criterion) Criterion {
	return Criteria(criteria)
}

// All matches every entity.
func All() Criterion {
	return Criteria{}
}
