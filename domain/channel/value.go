package channel

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Value is a channel value together with the rules for formatting it.
// Raw holds a scalar (numbers, bool, string) or a slice (typed numeric,
// []string or []any).
type Value struct {
	Raw       any
	Precision int // digits after the point; negative means shortest form
	Units     string
	Form      DisplayForm
	Choices   []string // enum labels, Raw is then the index
}

// NewValue wraps raw with the formatting rules from d (which may be nil).
func NewValue(raw any, d *Display) *Value {
	v := &Value{Raw: raw, Precision: -1}
	if d != nil {
		v.Precision = d.Precision
		v.Units = d.Units
		v.Form = d.Form
		v.Choices = d.Choices
	}
	return v
}

// IsArray reports whether the value holds a sequence.
func (v Value) IsArray() bool {
	if v.Raw == nil {
		return false
	}
	k := reflect.TypeOf(v.Raw).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Float returns the value as a float64. ok is false for arrays and for
// strings that do not parse as numbers.
func (v Value) Float() (f float64, ok bool) {
	return toFloat(v.Raw)
}

// String formats the value, optionally followed by its units.
func (v Value) String(withUnits bool) string {
	var s string
	if v.IsArray() {
		parts, _ := v.StringArray(0)
		s = "[" + strings.Join(parts, ", ") + "]"
	} else {
		s = v.formatScalar(v.Raw)
	}
	if withUnits && v.Units != "" {
		s += " " + v.Units
	}
	return s
}

// StringArray formats each element of an array value. length limits the
// number of elements returned, 0 means all. ok is false for scalars.
func (v Value) StringArray(length int) (out []string, ok bool) {
	if !v.IsArray() {
		return nil, false
	}
	rv := reflect.ValueOf(v.Raw)
	n := rv.Len()
	if length > 0 && length < n {
		n = length
	}
	out = make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = v.formatScalar(rv.Index(i).Interface())
	}
	return out, true
}

// Base64Array packs a numeric array value. It returns nil when the value is
// not numeric. length limits the number of elements, 0 means all.
func (v Value) Base64Array(length int) (*Base64Array, error) {
	if !v.IsArray() {
		return nil, nil
	}
	raw := v.Raw
	if items, isAny := raw.([]any); isAny {
		floats := make([]float64, len(items))
		for i, item := range items {
			f, ok := toFloat(item)
			if !ok {
				return nil, nil
			}
			floats[i] = f
		}
		raw = floats
	}
	if _, numeric := NumberTypeOf(raw); !numeric {
		return nil, nil
	}
	rv := reflect.ValueOf(raw)
	if length > 0 && length < rv.Len() {
		raw = rv.Slice(0, length).Interface()
	}
	b, err := EncodeArray(raw)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (v Value) formatScalar(raw any) string {
	switch x := raw.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return v.formatFloat(float64(x), 32)
	case float64:
		return v.formatFloat(x, 64)
	}
	if i, ok := toInt(raw); ok {
		if len(v.Choices) > 0 && i >= 0 && i < int64(len(v.Choices)) {
			return v.Choices[i]
		}
		switch v.Form {
		case FormHex:
			return fmt.Sprintf("0x%X", i)
		case FormBinary:
			return "0b" + strconv.FormatInt(i, 2)
		}
		return strconv.FormatInt(i, 10)
	}
	return fmt.Sprint(raw)
}

func (v Value) formatFloat(f float64, bits int) string {
	switch v.Form {
	case FormExponential, FormEngineering:
		return strconv.FormatFloat(f, 'e', v.Precision, bits)
	case FormHex:
		return fmt.Sprintf("0x%X", int64(f))
	case FormBinary:
		return "0b" + strconv.FormatInt(int64(f), 2)
	}
	if v.Precision >= 0 {
		return strconv.FormatFloat(f, 'f', v.Precision, bits)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

func toFloat(raw any) (float64, bool) {
	switch x := raw.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	}
	if i, ok := toInt(raw); ok {
		return float64(i), true
	}
	return 0, false
}

func toInt(raw any) (int64, bool) {
	switch x := raw.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	default:
		return 0, false
	}
}
