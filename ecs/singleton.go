package ecs

// Singleton provides access to a component of type T stored on the root
// entity of a tree. Use this for world-wide state such as arena bounds or
// configuration.
type Singleton[T any] struct {
	query *Query
	kind  Kind
	ptr   *T
}

// NewSingleton creates a Singleton accessor for the root of query.
// It panics if *T does not implement Component.
func NewSingleton[T any](query *Query) *Singleton[T] {
	s := &Singleton[T]{}
	s.Init(query)
	return s
}

// Init initializes the Singleton with a query reference.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(query *Query) {
	comp, ok := any(new(T)).(Component)
	if !ok {
		panic("singleton type must implement ecs.Component on its pointer")
	}
	s.query = query
	s.kind = comp.Kind()
	s.ptr = nil
	s.updateCache()
}

// Get returns a pointer to the root's component of type T.
// Returns nil if the root does not carry one.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.updateCache()
	}
	return s.ptr
}

// Exists returns true if the root carries a component of type T.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

// updateCache refreshes the cached pointer from the root
func (s *Singleton[T]) updateCache() {
	if s.query == nil || s.query.Root() == nil {
		return
	}
	comp := s.query.Root().Get(s.kind)
	if comp == nil {
		s.ptr = nil
		return
	}
	s.ptr, _ = any(comp).(*T)
}
