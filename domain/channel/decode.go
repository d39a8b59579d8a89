package channel

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"
)

// NumberType names a fixed-width numeric element type of a packed array.
type NumberType string

// Supported element types. Arrays are packed little-endian.
const (
	Int8    NumberType = "INT8"
	Uint8   NumberType = "UINT8"
	Int16   NumberType = "INT16"
	Uint16  NumberType = "UINT16"
	Int32   NumberType = "INT32"
	Uint32  NumberType = "UINT32"
	Int64   NumberType = "INT64"
	Uint64  NumberType = "UINT64"
	Float32 NumberType = "FLOAT32"
	Float64 NumberType = "FLOAT64"
)

// NumberTypes lists every supported element type.
var NumberTypes = []NumberType{Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64, Float32, Float64}

// ParseNumberType parses an element type tag, ignoring case.
func ParseNumberType(s string) (NumberType, error) {
	nt := NumberType(strings.ToUpper(strings.TrimSpace(s)))
	if nt.Size() == 0 {
		return "", fmt.Errorf("%w: unsupported numberType %q", ErrInvalidValue, s)
	}
	return nt, nil
}

// Size returns the element width in bytes, or 0 for an unknown type.
func (nt NumberType) Size() int {
	switch nt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// Number is the set of element types a packed array can hold.
type Number interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// Base64Array is a packed numeric array as carried on the wire.
type Base64Array struct {
	NumberType NumberType `json:"numberType"`
	Base64     string     `json:"base64"`
}

// ValueKind tells how a mutation value was encoded.
type ValueKind int

const (
	KindString ValueKind = iota // opaque scalar string
	KindJSON                    // parsed JSON array
	KindArray                   // typed slice unpacked from Base64Array
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindJSON:
		return "json"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// DecodedValue is one mutation value after wire decoding.
// Raw is a string for KindString, []any for KindJSON and a typed slice
// (for example []float32) for KindArray.
type DecodedValue struct {
	Kind    ValueKind
	Raw     any
	Encoded string
}

// DecodeValue interprets one wire-encoded mutation value.
//
// A value whose first character opens a JSON array or object is parsed as
// JSON. Objects must be of the form {"numberType": ..., "base64": ...} and
// are unpacked into a typed slice. Anything else is kept as a string.
func DecodeValue(encoded string) (DecodedValue, error) {
	trimmed := strings.TrimSpace(encoded)
	if trimmed == "" || (trimmed[0] != '[' && trimmed[0] != '{') {
		return DecodedValue{Kind: KindString, Raw: encoded, Encoded: encoded}, nil
	}

	if trimmed[0] == '[' {
		var arr []any
		if err := json.Unmarshal([]byte(trimmed), &arr); err != nil {
			return DecodedValue{}, fmt.Errorf("%w: parse json array: %v", ErrInvalidValue, err)
		}
		return DecodedValue{Kind: KindJSON, Raw: arr, Encoded: encoded}, nil
	}

	var packed struct {
		NumberType *string `json:"numberType"`
		Base64     *string `json:"base64"`
	}
	if err := json.Unmarshal([]byte(trimmed), &packed); err != nil {
		return DecodedValue{}, fmt.Errorf("%w: parse json object: %v", ErrInvalidValue, err)
	}
	if packed.NumberType == nil || packed.Base64 == nil {
		return DecodedValue{}, fmt.Errorf("%w: object needs numberType and base64", ErrInvalidValue)
	}
	arr, err := DecodeArray(Base64Array{NumberType: NumberType(*packed.NumberType), Base64: *packed.Base64})
	if err != nil {
		return DecodedValue{}, err
	}
	return DecodedValue{Kind: KindArray, Raw: arr, Encoded: encoded}, nil
}

// DecodeValues decodes each value independently, preserving order.
func DecodeValues(encoded []string) ([]DecodedValue, error) {
	out := make([]DecodedValue, 0, len(encoded))
	for i, e := range encoded {
		v, err := DecodeValue(e)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeArray unpacks a Base64Array into a typed slice.
func DecodeArray(b Base64Array) (any, error) {
	nt, err := ParseNumberType(string(b.NumberType))
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(b.Base64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad base64: %v", ErrInvalidValue, err)
	}
	if len(data)%nt.Size() != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %s elements",
			ErrInvalidValue, len(data), nt)
	}

	switch nt {
	case Int8:
		return unpack[int8](data, nt)
	case Uint8:
		return unpack[uint8](data, nt)
	case Int16:
		return unpack[int16](data, nt)
	case Uint16:
		return unpack[uint16](data, nt)
	case Int32:
		return unpack[int32](data, nt)
	case Uint32:
		return unpack[uint32](data, nt)
	case Int64:
		return unpack[int64](data, nt)
	case Uint64:
		return unpack[uint64](data, nt)
	case Float32:
		return unpack[float32](data, nt)
	default:
		return unpack[float64](data, nt)
	}
}

func unpack[T Number](data []byte, nt NumberType) (any, error) {
	out := make([]T, len(data)/nt.Size())
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, out); err != nil {
		return nil, fmt.Errorf("%w: unpack %s: %v", ErrInvalidValue, nt, err)
	}
	return out, nil
}

// EncodeArray packs a typed numeric slice into a Base64Array.
// Returns ErrInvalidValue when arr is not a supported slice type.
func EncodeArray(arr any) (Base64Array, error) {
	nt, ok := NumberTypeOf(arr)
	if !ok {
		return Base64Array{}, fmt.Errorf("%w: %T is not a numeric array", ErrInvalidValue, arr)
	}
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, arr); err != nil {
		return Base64Array{}, fmt.Errorf("%w: pack %s: %v", ErrInvalidValue, nt, err)
	}
	return Base64Array{NumberType: nt, Base64: base64.StdEncoding.EncodeToString(buf.Bytes())}, nil
}

// NumberTypeOf returns the element type of a typed numeric slice.
func NumberTypeOf(arr any) (NumberType, bool) {
	switch arr.(type) {
	case []int8:
		return Int8, true
	case []uint8:
		return Uint8, true
	case []int16:
		return Int16, true
	case []uint16:
		return Uint16, true
	case []int32:
		return Int32, true
	case []uint32:
		return Uint32, true
	case []int64:
		return Int64, true
	case []uint64:
		return Uint64, true
	case []float32:
		return Float32, true
	case []float64:
		return Float64, true
	default:
		return "", false
	}
}
