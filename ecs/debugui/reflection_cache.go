package debugui

import (
	"reflect"

	"github.com/plus3/ecsman/ecs"
)

// FieldInfo describes one exported field shown by the component inspector.
// Fields promoted from embedded structs are listed in place of the embed.
type FieldInfo struct {
	Name     string
	Type     reflect.Type // pointer types are dereferenced
	Index    []int
	Pointer  bool
	Editable bool
}

// Value returns the field of v described by f, following a non-nil pointer
// field. It reports false when an embedded pointer on the way is nil.
func (f FieldInfo) Value(v reflect.Value) (reflect.Value, bool) {
	field, err := v.FieldByIndexErr(f.Index)
	if err != nil {
		return reflect.Value{}, false
	}
	if f.Pointer && !field.IsNil() {
		field = field.Elem()
	}
	return field, true
}

// ReflectionCache remembers the inspectable fields of each struct type. It is
// used from the render loop only and is not safe for concurrent use.
type ReflectionCache struct {
	byType map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{byType: make(map[reflect.Type][]FieldInfo)}
}

// The ecs base types only carry ids and the Manager back-reference.
var hiddenEmbeds = map[reflect.Type]bool{
	reflect.TypeFor[ecs.BaseComponent](): true,
	reflect.TypeFor[ecs.BaseEntity]():    true,
	reflect.TypeFor[ecs.BaseSystem]():    true,
}

// GetFields returns the fields of t in declaration order. Non-struct types have
// none.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	if fields, ok := rc.byType[t]; ok {
		return fields
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for _, sf := range reflect.VisibleFields(t) {
			if sf.Anonymous || !sf.IsExported() || underHiddenEmbed(t, sf.Index) {
				continue
			}

			ft := sf.Type
			pointer := ft.Kind() == reflect.Pointer
			if pointer {
				ft = ft.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:     sf.Name,
				Type:     ft,
				Index:    sf.Index,
				Pointer:  pointer,
				Editable: editableKind(ft.Kind()),
			})
		}
	}

	rc.byType[t] = fields
	return fields
}

func underHiddenEmbed(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		sf := t.Field(i)
		if hiddenEmbeds[sf.Type] {
			return true
		}
		t = sf.Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
	}
	return false
}

func editableKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Bool, reflect.String:
		return true
	}
	return false
}

var globalReflectionCache = NewReflectionCache()
