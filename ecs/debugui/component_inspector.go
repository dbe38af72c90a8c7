package debugui

import (
	"fmt"
	"math"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/entree/ecs"
)

var entityPtrType = reflect.TypeFor[*ecs.Entity]()

func NewComponentInspector(registry *ecs.ComponentRegistry, browser *EntityBrowser) *ComponentInspector {
	return &ComponentInspector{registry: registry, browser: browser}
}

// Render shows the components of the browser's selected entity. Components
// are stored by pointer, so edits write straight into the tree.
func (ci *ComponentInspector) Render(frame *ecs.UpdateFrame) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	entity := ci.browser.Selected()
	if entity == nil {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	imgui.Text("Entity: " + entity.ID())
	imgui.Text(fmt.Sprintf("Children: %d", len(entity.Children())))
	imgui.Separator()

	for _, kind := range entity.Kinds() {
		name := ecs.KindName(ci.registry, kind)
		if imgui.TreeNodeStr(name) {
			ci.renderComponent(name, entity.Get(kind))
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ci *ComponentInspector) renderComponent(name string, component ecs.Component) {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("%v", val.Interface()))
		return
	}

	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		ci.renderField(name, field.Label, val.Field(field.Index), field)
	}
}

func (ci *ComponentInspector) renderField(scope, name string, val reflect.Value, field FieldInfo) {
	id := "##" + scope + "." + name

	if val.Type() == entityPtrType {
		target := "nil"
		if e := val.Interface().(*ecs.Entity); e != nil {
			target = e.ID()
		}
		imgui.Text(fmt.Sprintf("%s: -> %s", name, target))
		return
	}

	if field.IsPointer {
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
			return
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, ok := int32Value(val)
		if !ok {
			// Out of the editor's range; show it read-only.
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
			break
		}
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(id, &v) {
			setNumber(val, float64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(id, &v) {
			setNumber(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name+id, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(id, "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name + id) {
			for _, nf := range globalReflectionCache.GetFields(val.Type()) {
				ci.renderField(scope+"."+name, nf.Label, val.Field(nf.Index), nf)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

// setNumber stores x into a numeric field, truncating toward zero for
// integers and clamping to the range of the field's type.
func setNumber(val reflect.Value, x float64) bool {
	if !val.CanSet() {
		return false
	}
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := int64(x)
		if val.OverflowInt(i) {
			bits := val.Type().Bits()
			if i < 0 {
				i = -1 << (bits - 1)
			} else {
				i = 1<<(bits-1) - 1
			}
		}
		val.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var u uint64
		if x > 0 {
			u = uint64(x)
		}
		if val.OverflowUint(u) {
			u = 1<<val.Type().Bits() - 1
		}
		val.SetUint(u)
	case reflect.Float32, reflect.Float64:
		if val.OverflowFloat(x) {
			x = math.Copysign(math.MaxFloat32, x)
		}
		val.SetFloat(x)
	default:
		return false
	}
	return true
}

// int32Value returns an integer field's value when it fits the int32 the
// editor works with.
func int32Value(val reflect.Value) (int32, bool) {
	if val.CanUint() {
		u := val.Uint()
		return int32(u), u <= math.MaxInt32
	}
	i := val.Int()
	return int32(i), i >= math.MinInt32 && i <= math.MaxInt32
}
