package channel_test

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/artpar/coniql/domain/channel"
)

func TestDecodeValue_Scalar(t *testing.T) {
	for _, in := range []string{"1.5", "hello", "", " 42", "true"} {
		v, err := channel.DecodeValue(in)
		if err != nil {
			t.Fatalf("DecodeValue(%q) error: %v", in, err)
		}
		if v.Kind != channel.KindString {
			t.Errorf("DecodeValue(%q).Kind = %s, want string", in, v.Kind)
		}
		if v.Raw != in {
			t.Errorf("DecodeValue(%q).Raw = %v, want the input unchanged", in, v.Raw)
		}
	}
}

func TestDecodeValue_JSONArray(t *testing.T) {
	v, err := channel.DecodeValue(`[1, 2.5, "x"]`)
	if err != nil {
		t.Fatalf("DecodeValue error: %v", err)
	}
	if v.Kind != channel.KindJSON {
		t.Fatalf("Kind = %s, want json", v.Kind)
	}
	want := []any{float64(1), 2.5, "x"}
	if !reflect.DeepEqual(v.Raw, want) {
		t.Errorf("Raw = %#v, want %#v", v.Raw, want)
	}
}

func TestDecodeValue_Float32RoundTrip(t *testing.T) {
	in := []float32{0, 1.5, -2.25, math.MaxFloat32, math.SmallestNonzeroFloat32, float32(math.Inf(-1))}

	packed, err := channel.EncodeArray(in)
	if err != nil {
		t.Fatalf("EncodeArray error: %v", err)
	}
	if packed.NumberType != channel.Float32 {
		t.Fatalf("NumberType = %s, want FLOAT32", packed.NumberType)
	}

	encoded := fmt.Sprintf(`{"numberType": "float32", "base64": %q}`, packed.Base64)
	v, err := channel.DecodeValue(encoded)
	if err != nil {
		t.Fatalf("DecodeValue error: %v", err)
	}
	if v.Kind != channel.KindArray {
		t.Fatalf("Kind = %s, want array", v.Kind)
	}
	got, ok := v.Raw.([]float32)
	if !ok {
		t.Fatalf("Raw is %T, want []float32", v.Raw)
	}
	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	for i := range in {
		if math.Float32bits(got[i]) != math.Float32bits(in[i]) {
			t.Errorf("element %d = %v, want %v (bit-exact)", i, got[i], in[i])
		}
	}
}

func TestDecodeValue_LittleEndian(t *testing.T) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint16(buf[0:], 0x0102)
	binary.LittleEndian.PutUint16(buf[2:], 0xFFFF)
	encoded := fmt.Sprintf(`{"numberType": "Int16", "base64": %q}`, base64.StdEncoding.EncodeToString(buf))

	v, err := channel.DecodeValue(encoded)
	if err != nil {
		t.Fatalf("DecodeValue error: %v", err)
	}
	want := []int16{0x0102, -1}
	if !reflect.DeepEqual(v.Raw, want) {
		t.Errorf("Raw = %v, want %v", v.Raw, want)
	}
}

func TestDecodeValue_AllNumberTypes(t *testing.T) {
	for _, nt := range channel.NumberTypes {
		t.Run(string(nt), func(t *testing.T) {
			data := make([]byte, nt.Size()*3)
			encoded := fmt.Sprintf(`{"numberType": %q, "base64": %q}`, nt, base64.StdEncoding.EncodeToString(data))
			v, err := channel.DecodeValue(encoded)
			if err != nil {
				t.Fatalf("DecodeValue error: %v", err)
			}
			got, ok := channel.NumberTypeOf(v.Raw)
			if !ok || got != nt {
				t.Errorf("NumberTypeOf(%T) = %s, want %s", v.Raw, got, nt)
			}
			if n := reflect.ValueOf(v.Raw).Len(); n != 3 {
				t.Errorf("len = %d, want 3", n)
			}
		})
	}
}

func TestDecodeValue_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown number type", `{"numberType": "complex64", "base64": ""}`},
		{"missing base64", `{"numberType": "float32"}`},
		{"missing number type", `{"base64": "AAAA"}`},
		{"bad base64", `{"numberType": "float32", "base64": "!!"}`},
		{"ragged length", `{"numberType": "float32", "base64": "AAAAAAA="}`},
		{"broken array", `[1, 2`},
		{"broken object", `{"numberType": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := channel.DecodeValue(tt.in)
			if !errors.Is(err, channel.ErrInvalidValue) {
				t.Errorf("DecodeValue(%q) error = %v, want ErrInvalidValue", tt.in, err)
			}
		})
	}
}

func TestDecodeValues_PreservesOrder(t *testing.T) {
	vals, err := channel.DecodeValues([]string{"a", "[1]", "b"})
	if err != nil {
		t.Fatalf("DecodeValues error: %v", err)
	}
	kinds := []channel.ValueKind{vals[0].Kind, vals[1].Kind, vals[2].Kind}
	want := []channel.ValueKind{channel.KindString, channel.KindJSON, channel.KindString}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}

	if _, err := channel.DecodeValues([]string{"a", "[oops"}); err == nil {
		t.Error("expected error for malformed second value")
	}
}

func TestParseNumberType(t *testing.T) {
	nt, err := channel.ParseNumberType(" uint32 ")
	if err != nil || nt != channel.Uint32 {
		t.Errorf("ParseNumberType = %s, %v; want UINT32", nt, err)
	}
	if _, err := channel.ParseNumberType("int128"); !errors.Is(err, channel.ErrInvalidValue) {
		t.Errorf("ParseNumberType(int128) error = %v, want ErrInvalidValue", err)
	}
}
