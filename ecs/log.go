package ecs

import (
	"github.com/rs/zerolog"
)

func kindsArray(r *ComponentRegistry, kinds []Kind) *zerolog.Array {
	arr := zerolog.Arr()
	for _, kind := range kinds {
		arr = arr.Dict(zerolog.Dict().
			Uint32("kind", uint32(kind)).
			Str("name", KindName(r, kind)))
	}
	return arr
}

// MarshalZerologObject lets an entity be logged with Event.Object.
// Kinds are logged by number since an entity does not know its registry.
func (e *Entity) MarshalZerologObject(event *zerolog.Event) {
	if e == nil {
		return
	}
	kinds := zerolog.Arr()
	for _, kind := range e.kinds {
		kinds = kinds.Uint32(uint32(kind))
	}
	event.Str("id", e.id).
		Array("kinds", kinds).
		Int("children", len(e.children))
}

func (s *TreeStats) MarshalZerologObject(event *zerolog.Event) {
	event.Int("entities", s.EntityCount).
		Int("components", s.ComponentCount).
		Int("max_depth", s.MaxDepth)
}

// LogRegistry logs every registered kind with its name.
func LogRegistry(logger *zerolog.Logger, r *ComponentRegistry, level zerolog.Level) {
	kinds := r.Kinds()
	logger.WithLevel(level).
		Int("total_components", len(kinds)).
		Array("components", kindsArray(r, kinds)).
		Send()
}

// LogEntity logs an entity with its component names resolved through r.
func LogEntity(logger *zerolog.Logger, level zerolog.Level, e *Entity, r *ComponentRegistry) {
	logger.WithLevel(level).
		Str("entity", e.ID()).
		Array("components", kindsArray(r, e.Kinds())).
		Int("children", len(e.Children())).
		Send()
}
