package ecs

import (
	"github.com/rs/zerolog"
)

// Query evaluates criteria over an entity tree.
// Every call walks the whole tree in pre-order; there is no index, so
// results always reflect the current component values.
type Query struct {
	root   *Entity
	logger zerolog.Logger
}

// QueryOption configures a Query.
type QueryOption func(*Query)

// WithLogger sets the logger used to report failed evaluations.
func WithLogger(logger zerolog.Logger) QueryOption {
	return func(q *Query) {
		q.logger = logger
	}
}

// NewQuery creates a query over the tree rooted at root.
// The query shares the tree; it does not copy it.
func NewQuery(root *Entity, opts ...QueryOption) *Query {
	q := &Query{
		root:   root,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Root returns the entity the query walks from.
func (q *Query) Root() *Entity {
	return q.root
}

// Get returns the first entity in pre-order that satisfies every criterion,
// or nil if none does.
func (q *Query) Get(criteria ...Criterion) (*Entity, error) {
	var found *Entity
	err := q.Each(criteria, func(e *Entity) bool {
		found = e
		return false
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Filter returns every entity that satisfies all criteria, in pre-order.
// The result is a snapshot; it is safe to iterate pairwise over it while
// mutating component values.
func (q *Query) Filter(criteria ...Criterion) ([]*Entity, error) {
	matches := make([]*Entity, 0)
	err := q.Each(criteria, func(e *Entity) bool {
		matches = append(matches, e)
		return true
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Each calls fn for every matching entity in pre-order until fn returns false.
// The first evaluation error stops the walk and is returned as is.
func (q *Query) Each(criteria []Criterion, fn func(e *Entity) bool) error {
	match := Criteria(criteria)
	for e := range q.root.Walk() {
		ok, err := match.Evaluate(e)
		if err != nil {
			q.logger.Debug().Err(err).Str("entity", e.id).Stringer("criteria", match).Msg("criteria evaluation failed")
			return err
		}
		if ok && !fn(e) {
			return nil
		}
	}
	return nil
}

// Count returns the number of entities matching criteria.
func (q *Query) Count(criteria ...Criterion) (int, error) {
	n := 0
	err := q.Each(criteria, func(*Entity) bool {
		n++
		return true
	})
	return n, err
}
