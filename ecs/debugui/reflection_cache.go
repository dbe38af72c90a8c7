package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes an exported struct field as shown by the inspector.
type FieldInfo struct {
	Name string
	// Label is the field's criteria name from its `ecs` tag, or Name when untagged.
	Label     string
	Type      reflect.Type
	Index     int
	IsPointer bool
}

type ReflectionCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fields: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields returns the exported fields of struct type t. Other types have none.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fields[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fields[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			label := field.Tag.Get("ecs")
			if label == "" || label == "-" {
				label = field.Name
			}

			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Label:     label,
				Type:      field.Type,
				Index:     i,
				IsPointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}

	rc.fields[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()
