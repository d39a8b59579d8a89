package channel_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/artpar/coniql/domain/channel"
)

func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value *channel.Value
		units bool
		want  string
	}{
		{"precision", channel.NewValue(1.23456, &channel.Display{Precision: 2}), false, "1.23"},
		{"units", channel.NewValue(1.5, &channel.Display{Precision: 1, Units: "mm"}), true, "1.5 mm"},
		{"units suppressed", channel.NewValue(1.5, &channel.Display{Precision: 1, Units: "mm"}), false, "1.5"},
		{"shortest", channel.NewValue(0.1, nil), false, "0.1"},
		{"int", channel.NewValue(int32(42), nil), false, "42"},
		{"hex", channel.NewValue(int64(255), &channel.Display{Form: channel.FormHex}), false, "0xFF"},
		{"enum", channel.NewValue(int16(1), &channel.Display{Choices: []string{"Off", "On"}}), false, "On"},
		{"string", channel.NewValue("ready", nil), false, "ready"},
		{"array", channel.NewValue([]float64{1, 2.5}, &channel.Display{Precision: 1}), false, "[1.0, 2.5]"},
		{"exponential", channel.NewValue(1500.0, &channel.Display{Precision: 2, Form: channel.FormExponential}), false, "1.50e+03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(tt.units); got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.units, got, tt.want)
			}
		})
	}
}

func TestValue_Float(t *testing.T) {
	tests := []struct {
		raw    any
		want   float64
		wantOK bool
	}{
		{1.5, 1.5, true},
		{float32(2), 2, true},
		{int64(-3), -3, true},
		{uint8(7), 7, true},
		{true, 1, true},
		{"4.25", 4.25, true},
		{"abc", 0, false},
		{[]float64{1}, 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T", tt.raw), func(t *testing.T) {
			got, ok := channel.NewValue(tt.raw, nil).Float()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Float() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValue_StringArray(t *testing.T) {
	v := channel.NewValue([]int32{1, 2, 3}, nil)
	got, ok := v.StringArray(2)
	if !ok {
		t.Fatal("StringArray on array returned ok=false")
	}
	if !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("StringArray(2) = %v", got)
	}

	if _, ok := channel.NewValue(1.0, nil).StringArray(0); ok {
		t.Error("StringArray on scalar should return ok=false")
	}
}

func TestValue_Base64Array(t *testing.T) {
	v := channel.NewValue([]float64{1, 2, 3}, nil)
	b, err := v.Base64Array(2)
	if err != nil {
		t.Fatalf("Base64Array error: %v", err)
	}
	if b == nil || b.NumberType != channel.Float64 {
		t.Fatalf("Base64Array = %+v, want FLOAT64 array", b)
	}
	back, err := channel.DecodeArray(*b)
	if err != nil {
		t.Fatalf("DecodeArray error: %v", err)
	}
	if !reflect.DeepEqual(back, []float64{1, 2}) {
		t.Errorf("round trip = %v, want [1 2]", back)
	}

	j, err := channel.NewValue([]any{float64(1), float64(2)}, nil).Base64Array(0)
	if err != nil || j == nil || j.NumberType != channel.Float64 {
		t.Errorf("json array Base64Array = %+v, %v", j, err)
	}

	s, err := channel.NewValue([]string{"a"}, nil).Base64Array(0)
	if err != nil || s != nil {
		t.Errorf("string array Base64Array = %+v, %v; want nil, nil", s, err)
	}
}

func TestTime_Datetime(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 999_999_999, time.UTC)
	tm := channel.NewTime(at)
	if !tm.Datetime().Equal(at) {
		t.Errorf("Datetime() = %v, want %v", tm.Datetime(), at)
	}
	if tm.Nanoseconds != 999_999_999 {
		t.Errorf("Nanoseconds = %d", tm.Nanoseconds)
	}
}

func TestErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("resolve %q: %w", "x", channel.ErrUnknownTransport)
	if got := channel.ErrorCode(wrapped); got != channel.CodeUnknownTransport {
		t.Errorf("ErrorCode(wrapped) = %s", got)
	}
	if got := channel.ErrorCode(errors.New("boom")); got != channel.CodeInternal {
		t.Errorf("ErrorCode(other) = %s, want INTERNAL_ERROR", got)
	}
}
