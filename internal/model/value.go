package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValueKind identifies the variant held by a Value
type ValueKind int

const (
	KindInvalid ValueKind = iota // zero Value; every comparison is false
	KindString
	KindNumber
	KindBool
	KindStringList
	KindNumberList
)

// Value is the tagged union for answer and condition operands.
// Answers arrive untyped (wizard forms, YAML files); Value pins each one to
// exactly one of string, number, bool or a homogeneous list so comparison and
// stringification are exhaustive switches instead of implicit coercion.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	strs []string
	nums []float64
}

// String builds a string Value
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number builds a numeric Value
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool builds a boolean Value
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// StringList builds a list-of-strings Value
func StringList(elems ...string) Value { return Value{kind: KindStringList, strs: elems} }

// NumberList builds a list-of-numbers Value
func NumberList(elems ...float64) Value { return Value{kind: KindNumberList, nums: elems} }

// Kind reports which variant the Value holds
func (v Value) Kind() ValueKind { return v.kind }

// IsValid reports whether the Value holds any variant at all
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// IsList reports whether the Value is one of the list variants
func (v Value) IsList() bool { return v.kind == KindStringList || v.kind == KindNumberList }

// Number coerces the Value to a number. Booleans coerce to 1/0 and numeric
// strings are parsed; lists and non-numeric strings do not coerce.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Bool returns the boolean variant, if that is what the Value holds
func (v Value) Bool() (bool, bool) {
	if v.kind == KindBool {
		return v.b, true
	}
	return false, false
}

// Truthy reports whether the Value counts as present for required-field
// checks: empty strings, zero, false, empty lists and the zero Value do not.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindString:
		return v.str != ""
	case KindNumber:
		return v.num != 0
	case KindBool:
		return v.b
	case KindStringList:
		return len(v.strs) > 0
	case KindNumberList:
		return len(v.nums) > 0
	}
	return false
}

// List returns the elements of a list Value as scalar Values, nil otherwise
func (v Value) List() []Value {
	switch v.kind {
	case KindStringList:
		out := make([]Value, len(v.strs))
		for i, s := range v.strs {
			out[i] = String(s)
		}
		return out
	case KindNumberList:
		out := make([]Value, len(v.nums))
		for i, n := range v.nums {
			out[i] = Number(n)
		}
		return out
	default:
		return nil
	}
}

// Contains reports list membership. Membership is kind-sensitive: the number
// 5 is not a member of ["5"] and vice versa.
func (v Value) Contains(x Value) bool {
	switch v.kind {
	case KindStringList:
		if x.kind != KindString {
			return false
		}
		for _, s := range v.strs {
			if s == x.str {
				return true
			}
		}
	case KindNumberList:
		if x.kind != KindNumber {
			return false
		}
		for _, n := range v.nums {
			if n == x.num {
				return true
			}
		}
	}
	return false
}

// Equal is strict equality: same kind, same content. Lists compare
// elementwise in order.
func (v Value) Equal(x Value) bool {
	if v.kind != x.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == x.str
	case KindNumber:
		return v.num == x.num
	case KindBool:
		return v.b == x.b
	case KindStringList:
		if len(v.strs) != len(x.strs) {
			return false
		}
		for i := range v.strs {
			if v.strs[i] != x.strs[i] {
				return false
			}
		}
		return true
	case KindNumberList:
		if len(v.nums) != len(x.nums) {
			return false
		}
		for i := range v.nums {
			if v.nums[i] != x.nums[i] {
				return false
			}
		}
		return true
	}
	return false
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// String renders the Value as text. Lists join with "," (substring tests);
// placeholder rendering joins with ", " via Render.
func (v Value) String() string {
	return v.join(",")
}

// Render renders the Value for placeholder substitution: lists join with
// ", ", scalars render as String does.
func (v Value) Render() string {
	return v.join(", ")
}

func (v Value) join(sep string) string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindStringList:
		return strings.Join(v.strs, sep)
	case KindNumberList:
		parts := make([]string, len(v.nums))
		for i, n := range v.nums {
			parts[i] = formatNumber(n)
		}
		return strings.Join(parts, sep)
	}
	return ""
}

// FromAny converts a dynamically-typed value (JSON/YAML decode output) into a
// Value. Mixed-type lists degrade to string lists.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Value{}, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case int:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case float64:
		return Number(t), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("parse number %q: %w", t.String(), err)
		}
		return Number(n), nil
	case []any:
		return listFromAny(t)
	default:
		return Value{}, fmt.Errorf("unsupported answer value type %T", x)
	}
}

func listFromAny(elems []any) (Value, error) {
	allNumbers := len(elems) > 0
	for _, e := range elems {
		switch e.(type) {
		case int, int64, float64, json.Number:
		default:
			allNumbers = false
		}
	}
	if allNumbers {
		nums := make([]float64, len(elems))
		for i, e := range elems {
			v, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			nums[i], _ = v.Number()
		}
		return NumberList(nums...), nil
	}
	strs := make([]string, len(elems))
	for i, e := range elems {
		v, err := FromAny(e)
		if err != nil {
			return Value{}, err
		}
		if v.IsList() {
			return Value{}, fmt.Errorf("nested lists are not valid answer values")
		}
		strs[i] = v.String()
	}
	return StringList(strs...), nil
}

// UnmarshalYAML decodes a scalar or flat sequence into the matching variant
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}
			*v = Bool(b)
		case "!!int", "!!float":
			var n float64
			if err := node.Decode(&n); err != nil {
				return err
			}
			*v = Number(n)
		case "!!null":
			*v = Value{}
		default:
			*v = String(node.Value)
		}
		return nil
	case yaml.SequenceNode:
		var raw []any
		if err := node.Decode(&raw); err != nil {
			return err
		}
		parsed, err := listFromAny(raw)
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	default:
		return fmt.Errorf("line %d: value must be a scalar or a list", node.Line)
	}
}

// MarshalYAML emits the underlying variant
func (v Value) MarshalYAML() (any, error) {
	return v.native(), nil
}

// MarshalJSON emits the underlying variant
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.native())
}

// UnmarshalJSON decodes any JSON scalar or flat array
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Value) native() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindStringList:
		return v.strs
	case KindNumberList:
		return v.nums
	}
	return nil
}
