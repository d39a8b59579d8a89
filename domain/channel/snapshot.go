package channel

import (
	"math"
	"time"
)

// Quality classifies how trustworthy a channel value is.
type Quality string

const (
	QualityValid     Quality = "VALID"     // known, valid, nothing is wrong
	QualityWarning   Quality = "WARNING"   // valid, in the warning range
	QualityAlarm     Quality = "ALARM"     // valid, in the alarm range
	QualityInvalid   Quality = "INVALID"   // known but not valid, e.g. RW before first put
	QualityUndefined Quality = "UNDEFINED" // unknown, e.g. disconnected
	QualityChanging  Quality = "CHANGING"  // in the process of being changed
)

// Widget suggests how a client should render a channel.
type Widget string

const (
	WidgetTextInput   Widget = "TEXTINPUT"
	WidgetTextUpdate  Widget = "TEXTUPDATE"
	WidgetPlot        Widget = "PLOT"
	WidgetLED         Widget = "LED"
	WidgetComboBox    Widget = "COMBO"
	WidgetCheckBox    Widget = "CHECKBOX"
	WidgetTable       Widget = "TABLE"
	WidgetImage       Widget = "IMAGE"
	WidgetProgressBar Widget = "PROGRESSBAR"
)

// Role tells whether a channel is a readback, a setpoint or both.
type Role string

const (
	RoleRead      Role = "RO"
	RoleWrite     Role = "WO"
	RoleReadWrite Role = "RW"
)

// DisplayForm selects how numbers are turned into strings.
type DisplayForm string

const (
	FormDefault     DisplayForm = "DEFAULT"
	FormString      DisplayForm = "STRING"
	FormBinary      DisplayForm = "BINARY"
	FormDecimal     DisplayForm = "DECIMAL"
	FormHex         DisplayForm = "HEX"
	FormExponential DisplayForm = "EXPONENTIAL"
	FormEngineering DisplayForm = "ENGINEERING"
)

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Time is the timestamp attached to a value.
type Time struct {
	Seconds     float64 // seconds since the Unix epoch
	Nanoseconds int     // nanosecond part of Seconds, at full precision
	UserTag     int     // transport-defined, deliberately uninterpreted
}

// NewTime builds a Time from a wall-clock instant.
func NewTime(t time.Time) *Time {
	return &Time{
		Seconds:     float64(t.UnixNano()) / 1e9,
		Nanoseconds: t.Nanosecond(),
	}
}

// Datetime returns the timestamp as a time.Time in UTC.
func (t Time) Datetime() time.Time {
	sec := int64(math.Round(t.Seconds - float64(t.Nanoseconds)/1e9))
	return time.Unix(sec, int64(t.Nanoseconds)).UTC()
}

// Status describes the connection and alarm state of a channel.
type Status struct {
	Quality Quality
	Message string
	Mutable bool // whether the channel currently accepts writes
}

// Display carries the metadata clients need to render a channel.
type Display struct {
	Description  string
	Role         Role
	Widget       Widget
	ControlRange *Range
	DisplayRange *Range
	AlarmRange   *Range
	WarningRange *Range
	Units        string
	Precision    int
	Form         DisplayForm
	Choices      []string
}

// Snapshot is the state of a channel at one point in time.
// A nil section means "unknown" on a get, or "unchanged" on a subscription
// update. Snapshots are never modified after construction.
type Snapshot struct {
	Value   *Value
	Time    *Time
	Status  *Status
	Display *Display
}
