package ecs

import (
	"reflect"
	"slices"
	"strconv"

	"github.com/kamstrup/intmap"
)

// Kind identifies a component type. Applications enumerate their own kinds,
// typically as iota constants, and every component type reports its kind.
type Kind uint32

// Component is a typed data record attached to an entity.
// Components are stored by pointer, so implement Kind on the pointer receiver.
type Component interface {
	Kind() Kind
}

// FieldAccessor exposes a component's fields by name. Implementations are
// generated by cmd/ecs-fieldgen and back the HasValue and HasValues criteria.
type FieldAccessor interface {
	Field(name string) (any, bool)
	FieldNames() []string
}

// ComponentPtr constrains a type parameter to a pointer to T that is a Component.
type ComponentPtr[T any] interface {
	*T
	Component
}

// ComponentRegistry maps component kinds to names and prototypes.
// Entities do not need a registry; it serves tooling that names kinds,
// like the criteria language, the debug UI and logging.
type ComponentRegistry struct {
	names  *intmap.Map[Kind, string]
	protos *intmap.Map[Kind, Component]
	kinds  map[string]Kind
	order  []Kind
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		names:  intmap.New[Kind, string](16),
		protos: intmap.New[Kind, Component](16),
		kinds:  make(map[string]Kind),
	}
}

// RegisterComponent registers T under its Go type name and returns its kind.
// Registering two types that share a kind panics.
func RegisterComponent[T any, PT ComponentPtr[T]](r *ComponentRegistry) Kind {
	proto := PT(new(T))
	kind := proto.Kind()
	name := reflect.TypeFor[T]().Name()

	if existing, ok := r.names.Get(kind); ok {
		if existing == name {
			return kind
		}
		panic("component kind already registered as " + existing + ": " + name)
	}
	if _, ok := r.kinds[name]; ok {
		panic("component name already registered: " + name)
	}

	r.names.Put(kind, name)
	r.protos.Put(kind, proto)
	r.kinds[name] = kind
	r.order = append(r.order, kind)
	return kind
}

// Lookup returns the kind registered under name.
func (r *ComponentRegistry) Lookup(name string) (Kind, bool) {
	kind, ok := r.kinds[name]
	return kind, ok
}

// Name returns the registered name of kind, or an empty string.
func (r *ComponentRegistry) Name(kind Kind) string {
	name, _ := r.names.Get(kind)
	return name
}

// Prototype returns a zero-valued instance of the component registered for kind.
// Callers must not mutate it.
func (r *ComponentRegistry) Prototype(kind Kind) Component {
	proto, _ := r.protos.Get(kind)
	return proto
}

// Kinds returns the registered kinds in registration order.
func (r *ComponentRegistry) Kinds() []Kind {
	return slices.Clone(r.order)
}

// KindName formats kind with its registered name when a registry is available.
func KindName(r *ComponentRegistry, kind Kind) string {
	if r != nil {
		if name := r.Name(kind); name != "" {
			return name
		}
	}
	return "kind(" + strconv.FormatUint(uint64(kind), 10) + ")"
}
