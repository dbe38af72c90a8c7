// Package cql parses a small textual criteria language into ecs criteria.
//
//	ID("ball") & HAS(Position, Velocity)
//	!HAS(Velocity) | VALUE(Collision.layer == 2)
//
// Operators fold left to right without precedence; use parentheses to group.
package cql

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/rotisserie/eris"

	"github.com/plus3/entree/ecs"
)

type cqlOperator int

const (
	opAnd cqlOperator = iota
	opOr
)

var operatorMap = map[string]cqlOperator{"&": opAnd, "|": opOr}

// Capture tells the parser how to turn an operator token into a cqlOperator.
func (o *cqlOperator) Capture(s []string) error {
	if len(s) == 0 {
		return eris.New("invalid operator")
	}
	operator, ok := operatorMap[s[0]]
	if !ok {
		return eris.New("invalid operator")
	}
	*o = operator
	return nil
}

type cqlComponent struct {
	Name string `@Ident`
}

type cqlNot struct {
	SubExpression *cqlValue `"!" @@`
}

type cqlID struct {
	ID string `"ID" "(" @String ")"`
}

type cqlHas struct {
	Components []*cqlComponent `"HAS" "(" (@@ ",")* @@ ")"`
}

type cqlAtom struct {
	Float  *string `  @Float`
	Int    *string `| @Int`
	String *string `| @String`
	Bool   *string `| @("true" | "false")`
}

type cqlLiteral struct {
	Negative bool     `@"-"?`
	Atom     *cqlAtom `@@`
}

type cqlFieldValue struct {
	Component string      `"VALUE" "(" @Ident "."`
	Field     string      `@Ident "=" "="?`
	Literal   *cqlLiteral `@@ ")"`
}

type cqlValue struct {
	All           bool           `@("ALL" "(" ")")`
	ID            *cqlID         `| @@`
	Has           *cqlHas        `| @@`
	Value         *cqlFieldValue `| @@`
	Not           *cqlNot        `| @@`
	Subexpression *cqlTerm       `| "(" @@ ")"`
}

type cqlFactor struct {
	Base *cqlValue `@@`
}

type cqlOpFactor struct {
	Operator cqlOperator `@("&" | "|")`
	Factor   *cqlFactor  `@@`
}

type cqlTerm struct {
	Left  *cqlFactor     `@@`
	Right []*cqlOpFactor `@@*`
}

var internalCQLParser = participle.MustBuild[cqlTerm]()

// Parse compiles text into a criterion. Component names resolve through
// registry, and VALUE literals are converted to the field's type using the
// registered prototype.
func Parse(text string, registry *ecs.ComponentRegistry) (ecs.Criterion, error) {
	term, err := internalCQLParser.ParseString("", text)
	if err != nil {
		return nil, eris.Wrap(err, "parsing criteria")
	}
	return termToCriterion(term, registry)
}

// MustParse is like Parse but panics on error.
func MustParse(text string, registry *ecs.ComponentRegistry) ecs.Criterion {
	criterion, err := Parse(text, registry)
	if err != nil {
		panic(err)
	}
	return criterion
}

func termToCriterion(term *cqlTerm, registry *ecs.ComponentRegistry) (ecs.Criterion, error) {
	if term.Left == nil {
		return nil, eris.New("not enough values in expression")
	}
	acc, err := valueToCriterion(term.Left.Base, registry)
	if err != nil {
		return nil, err
	}
	for _, opFactor := range term.Right {
		next, err := valueToCriterion(opFactor.Factor.Base, registry)
		if err != nil {
			return nil, err
		}
		switch opFactor.Operator {
		case opAnd:
			acc = ecs.And(acc, next)
		case opOr:
			acc = ecs.Or(acc, next)
		default:
			return nil, eris.New("invalid operator")
		}
	}
	return acc, nil
}

func valueToCriterion(value *cqlValue, registry *ecs.ComponentRegistry) (ecs.Criterion, error) {
	switch {
	case value.Not != nil:
		inner, err := valueToCriterion(value.Not.SubExpression, registry)
		if err != nil {
			return nil, err
		}
		return ecs.Not(inner), nil
	case value.All:
		return ecs.All(), nil
	case value.ID != nil:
		id, err := unquote(value.ID.ID)
		if err != nil {
			return nil, err
		}
		return ecs.HasId(id), nil
	case value.Has != nil:
		if len(value.Has.Components) == 0 {
			return nil, eris.New("HAS cannot have zero parameters")
		}
		criteria := make(ecs.Criteria, 0, len(value.Has.Components))
		for _, comp := range value.Has.Components {
			kind, err := lookup(registry, comp.Name)
			if err != nil {
				return nil, err
			}
			criteria = append(criteria, ecs.HasComponent(kind))
		}
		return criteria, nil
	case value.Value != nil:
		return fieldValueToCriterion(value.Value, registry)
	case value.Subexpression != nil:
		return termToCriterion(value.Subexpression, registry)
	default:
		return nil, eris.New("unknown error during conversion from CQL AST to criterion")
	}
}

func fieldValueToCriterion(fv *cqlFieldValue, registry *ecs.ComponentRegistry) (ecs.Criterion, error) {
	kind, err := lookup(registry, fv.Component)
	if err != nil {
		return nil, err
	}

	accessor, ok := registry.Prototype(kind).(ecs.FieldAccessor)
	if !ok {
		return nil, eris.Errorf("component %s does not expose fields", fv.Component)
	}
	zero, ok := accessor.Field(fv.Field)
	if !ok {
		return nil, eris.Errorf("component %s has no field %q", fv.Component, fv.Field)
	}

	literal, err := fv.Literal.value()
	if err != nil {
		return nil, err
	}
	converted, err := convertLiteral(literal, reflect.TypeOf(zero))
	if err != nil {
		return nil, eris.Wrapf(err, "VALUE(%s.%s)", fv.Component, fv.Field)
	}
	return ecs.HasValue(kind, fv.Field, converted), nil
}

func lookup(registry *ecs.ComponentRegistry, name string) (ecs.Kind, error) {
	if registry == nil {
		return 0, eris.New("no component registry")
	}
	kind, ok := registry.Lookup(name)
	if !ok {
		return 0, eris.Errorf("unknown component %q", name)
	}
	return kind, nil
}

func (l *cqlLiteral) value() (any, error) {
	a := l.Atom
	switch {
	case a.Float != nil:
		f, err := strconv.ParseFloat(*a.Float, 64)
		if err != nil {
			return nil, eris.Wrap(err, "invalid float literal")
		}
		if l.Negative {
			f = -f
		}
		return f, nil
	case a.Int != nil:
		i, err := strconv.Atoi(*a.Int)
		if err != nil {
			return nil, eris.Wrap(err, "invalid int literal")
		}
		if l.Negative {
			i = -i
		}
		return i, nil
	case l.Negative:
		return nil, eris.New("only numbers can be negated")
	case a.String != nil:
		return unquote(*a.String)
	case a.Bool != nil:
		return *a.Bool == "true", nil
	default:
		return nil, eris.New("missing literal")
	}
}

// convertLiteral converts a parsed literal to target when both are of the
// same family (numeric, string, bool) and rejects any other combination.
// Numbers must be representable in the target type.
func convertLiteral(literal any, target reflect.Type) (any, error) {
	if target == nil {
		return literal, nil
	}
	v := reflect.ValueOf(literal)
	if v.Type() == target {
		return literal, nil
	}
	if family(v.Kind()) == "" || family(v.Kind()) != family(target.Kind()) {
		return nil, eris.Errorf("cannot compare %s literal with %s field", v.Type(), target)
	}
	if family(v.Kind()) == "number" && !representable(v, target) {
		return nil, eris.Errorf("literal %v does not fit %s field", literal, target)
	}
	return v.Convert(target).Interface(), nil
}

// representable reports whether the int or float64 in v converts to target
// without truncation, wrap-around or overflow. Floats narrowed to float32
// round to the nearest value, as the field's own literals do.
func representable(v reflect.Value, target reflect.Type) bool {
	dst := reflect.New(target).Elem()
	if v.CanInt() {
		i := v.Int()
		switch {
		case dst.CanInt():
			return !dst.OverflowInt(i)
		case dst.CanUint():
			return i >= 0 && !dst.OverflowUint(uint64(i))
		default:
			return v.Convert(target).Convert(v.Type()).Int() == i
		}
	}

	f := v.Float()
	switch {
	case dst.CanInt():
		return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 && !dst.OverflowInt(int64(f))
	case dst.CanUint():
		return f == math.Trunc(f) && f >= 0 && f < math.MaxUint64 && !dst.OverflowUint(uint64(f))
	default:
		return !dst.OverflowFloat(f)
	}
}

func family(k reflect.Kind) string {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	}
	return ""
}

func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}
	out, err := strconv.Unquote(s)
	if err != nil {
		return "", eris.Wrap(err, "invalid string literal")
	}
	return out, nil
}
