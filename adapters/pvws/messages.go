package pvws

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/artpar/coniql/domain/channel"
)

// Client requests.
type subscribeRequest struct {
	Type string   `json:"type"` // "subscribe" or "clear"
	PVs  []string `json:"pvs"`
}

type writeRequest struct {
	Type  string `json:"type"` // "write"
	PV    string `json:"pv"`
	Value any    `json:"value"`
}

// update is a server push. Every field but Type and PV is optional and
// only present when it changed.
type update struct {
	Type string `json:"type"`
	PV   string `json:"pv"`

	Value  *float64 `json:"value"`
	Text   *string  `json:"text"`
	B64Dbl *string  `json:"b64dbl"`
	B64Flt *string  `json:"b64flt"`
	B64Int *string  `json:"b64int"`
	B64Sht *string  `json:"b64sht"`
	B64Byt *string  `json:"b64byt"`

	Severity    *string  `json:"severity"`
	Readonly    *bool    `json:"readonly"`
	Units       *string  `json:"units"`
	Precision   *int     `json:"precision"`
	Min         *float64 `json:"min"`
	Max         *float64 `json:"max"`
	WarnLow     *float64 `json:"warn_low"`
	WarnHigh    *float64 `json:"warn_high"`
	AlarmLow    *float64 `json:"alarm_low"`
	AlarmHigh   *float64 `json:"alarm_high"`
	Labels      []string `json:"labels"`
	Description *string  `json:"description"`
	Seconds     *int64   `json:"seconds"`
	Nanos       *int64   `json:"nanos"`
}

// pvState accumulates updates for one PV.
type pvState struct {
	seen bool

	value    any
	severity string
	readonly bool
	units    string
	prec     int
	hasPrec  bool
	min, max *float64
	warnLow  *float64
	warnHigh *float64
	almLow   *float64
	almHigh  *float64
	labels   []string
	desc     string
	at       time.Time
}

// merge folds u into the state. now stamps updates that carry no time.
func (s *pvState) merge(u update, now time.Time) error {
	s.seen = true

	packed := []struct {
		b64 *string
		nt  channel.NumberType
	}{
		{u.B64Dbl, channel.Float64},
		{u.B64Flt, channel.Float32},
		{u.B64Int, channel.Int32},
		{u.B64Sht, channel.Int16},
		{u.B64Byt, channel.Int8},
	}
	for _, p := range packed {
		if p.b64 == nil {
			continue
		}
		arr, err := channel.DecodeArray(channel.Base64Array{NumberType: p.nt, Base64: *p.b64})
		if err != nil {
			return fmt.Errorf("%s: %w", u.PV, err)
		}
		s.value = arr
	}
	switch {
	case u.Text != nil && u.Value == nil:
		s.value = *u.Text
	case u.Value != nil:
		s.value = *u.Value
	}

	if u.Severity != nil {
		s.severity = *u.Severity
	}
	if u.Readonly != nil {
		s.readonly = *u.Readonly
	}
	if u.Units != nil {
		s.units = *u.Units
	}
	if u.Precision != nil {
		s.prec, s.hasPrec = *u.Precision, true
	}
	if u.Description != nil {
		s.desc = *u.Description
	}
	if u.Labels != nil {
		s.labels = u.Labels
	}
	mergeFloat(&s.min, u.Min)
	mergeFloat(&s.max, u.Max)
	mergeFloat(&s.warnLow, u.WarnLow)
	mergeFloat(&s.warnHigh, u.WarnHigh)
	mergeFloat(&s.almLow, u.AlarmLow)
	mergeFloat(&s.almHigh, u.AlarmHigh)

	switch {
	case u.Seconds != nil:
		var nanos int64
		if u.Nanos != nil {
			nanos = *u.Nanos
		}
		s.at = time.Unix(*u.Seconds, nanos)
	case s.at.IsZero() || u.Value != nil || u.Text != nil:
		s.at = now
	}
	return nil
}

func mergeFloat(dst **float64, src *float64) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// quality maps an EPICS alarm severity onto channel quality.
func quality(severity string) channel.Quality {
	switch strings.ToUpper(severity) {
	case "", "NONE", "NO_ALARM":
		return channel.QualityValid
	case "MINOR":
		return channel.QualityWarning
	case "MAJOR":
		return channel.QualityAlarm
	case "INVALID":
		return channel.QualityInvalid
	default:
		return channel.QualityUndefined
	}
}

func pair(lo, hi *float64) *channel.Range {
	if lo == nil || hi == nil {
		return nil
	}
	return &channel.Range{Min: *lo, Max: *hi}
}

// snapshot renders the accumulated state with cfg display hints applied.
func (s *pvState) snapshot(cfg channel.Config) channel.Snapshot {
	d := channel.Display{
		Description:  s.desc,
		Role:         channel.RoleReadWrite,
		Widget:       channel.WidgetTextInput,
		ControlRange: pair(s.min, s.max),
		DisplayRange: pair(s.min, s.max),
		WarningRange: pair(s.warnLow, s.warnHigh),
		AlarmRange:   pair(s.almLow, s.almHigh),
		Units:        s.units,
		Precision:    -1,
		Form:         channel.FormDefault,
		Choices:      s.labels,
	}
	if s.hasPrec {
		d.Precision = s.prec
	}
	if s.readonly {
		d.Role = channel.RoleRead
		d.Widget = channel.WidgetTextUpdate
	}

	raw := s.value
	switch {
	case len(s.labels) > 0:
		d.Widget = channel.WidgetComboBox
		if f, ok := raw.(float64); ok {
			raw = int64(f)
		}
	case raw != nil && reflect.TypeOf(raw).Kind() == reflect.Slice:
		d.Widget = channel.WidgetPlot
	}
	d = cfg.ApplyDisplay(d)

	return channel.Snapshot{
		Value:   channel.NewValue(raw, &d),
		Time:    channel.NewTime(s.at),
		Status:  &channel.Status{Quality: quality(s.severity), Message: s.severity, Mutable: !s.readonly},
		Display: &d,
	}
}

// writeValue converts a decoded put into the JSON value sent to the gateway.
// Numeric strings are sent as numbers.
func writeValue(v channel.DecodedValue) any {
	if str, ok := v.Raw.(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			return json.Number(strconv.FormatFloat(f, 'g', -1, 64))
		}
		return str
	}
	return v.Raw
}
