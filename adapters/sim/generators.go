package sim

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/artpar/coniql/domain/channel"
)

// generator produces read-only simulated values from the clock.
type generator interface {
	// sample computes the value at instant now.
	sample(now time.Time) channel.Snapshot
	// interval is the update period for subscriptions.
	interval() time.Duration
}

type generatorSpec struct {
	defaults []float64
	build    func(args []float64) (generator, error)
}

// Positional parameters and their defaults, in order.
var generators = map[string]generatorSpec{
	// min, max, steps, update_seconds, warning_percent, alarm_percent
	"sine": {[]float64{-5, 5, 10, 1, 80, 90}, newSine},
	// period_seconds, sample_wavelength, size, update_seconds, min_value, max_value
	"sinewave": {[]float64{1, 10, 50, 1, -5, 5}, newSineWave},
	// period_seconds, size, update_seconds
	"rampwave": {[]float64{10, 10, 1}, newRampWave},
	// min, max, update_seconds
	"random": {[]float64{0, 1, 1}, newRandom},
}

// isGeneratorName reports whether name uses the generator call syntax.
func isGeneratorName(name string) bool {
	return strings.Contains(name, "(")
}

// parseGenerator parses "fn(a, b, ...)". Missing trailing arguments take
// their defaults.
func parseGenerator(name string) (generator, error) {
	open := strings.Index(name, "(")
	if open <= 0 || !strings.HasSuffix(name, ")") {
		return nil, fmt.Errorf("%w: malformed sim channel %q", channel.ErrUnknownChannel, name)
	}
	fn := strings.TrimSpace(name[:open])
	spec, ok := generators[fn]
	if !ok {
		return nil, fmt.Errorf("%w: no sim generator %q", channel.ErrUnknownChannel, fn)
	}

	args := append([]float64(nil), spec.defaults...)
	body := strings.TrimSpace(name[open+1 : len(name)-1])
	if body != "" {
		parts := strings.Split(body, ",")
		if len(parts) > len(args) {
			return nil, fmt.Errorf("%w: %s takes at most %d arguments", channel.ErrUnknownChannel, fn, len(args))
		}
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s argument %d: %v", channel.ErrUnknownChannel, fn, i+1, err)
			}
			args[i] = f
		}
	}
	gen, err := spec.build(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", channel.ErrUnknownChannel, fn, err)
	}
	return gen, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func checkUpdate(s float64) error {
	if s <= 0 {
		return fmt.Errorf("update_seconds must be positive")
	}
	return nil
}

// step returns how many whole update periods have elapsed at now.
func step(now time.Time, every time.Duration) int64 {
	return now.UnixNano() / int64(every)
}

func validStatus() *channel.Status {
	return &channel.Status{Quality: channel.QualityValid, Mutable: false}
}

// sine is a scalar stepping round a sine wave with warning and alarm bands.
type sine struct {
	min, max   float64
	steps      float64
	update     time.Duration
	warn, alrm float64 // band half-widths
}

func newSine(a []float64) (generator, error) {
	if a[1] <= a[0] {
		return nil, fmt.Errorf("max must exceed min")
	}
	if a[2] < 1 {
		return nil, fmt.Errorf("steps must be at least 1")
	}
	if err := checkUpdate(a[3]); err != nil {
		return nil, err
	}
	half := (a[1] - a[0]) / 2
	return &sine{
		min: a[0], max: a[1], steps: a[2], update: seconds(a[3]),
		warn: half * a[4] / 100, alrm: half * a[5] / 100,
	}, nil
}

func (g *sine) interval() time.Duration { return g.update }

func (g *sine) sample(now time.Time) channel.Snapshot {
	half := (g.max - g.min) / 2
	mid := g.min + half
	x := 2 * math.Pi * float64(step(now, g.update)) / g.steps
	v := mid + half*math.Sin(x)

	status := validStatus()
	switch dev := math.Abs(v - mid); {
	case dev > g.alrm:
		status.Quality = channel.QualityAlarm
		status.Message = "alarm"
	case dev > g.warn:
		status.Quality = channel.QualityWarning
		status.Message = "warning"
	}

	d := &channel.Display{
		Description:  "Sine wave",
		Role:         channel.RoleRead,
		Widget:       channel.WidgetTextUpdate,
		ControlRange: &channel.Range{Min: g.min, Max: g.max},
		DisplayRange: &channel.Range{Min: g.min, Max: g.max},
		WarningRange: &channel.Range{Min: mid - g.warn, Max: mid + g.warn},
		AlarmRange:   &channel.Range{Min: mid - g.alrm, Max: mid + g.alrm},
		Precision:    5,
		Form:         channel.FormDefault,
	}
	return channel.Snapshot{
		Value:   channel.NewValue(v, d),
		Time:    channel.NewTime(now),
		Status:  status,
		Display: d,
	}
}

// sineWave is an array holding a sampled sine wave that moves with time.
type sineWave struct {
	period     float64
	wavelength float64
	size       int
	update     time.Duration
	min, max   float64
}

func newSineWave(a []float64) (generator, error) {
	if a[0] <= 0 || a[1] <= 0 {
		return nil, fmt.Errorf("period_seconds and sample_wavelength must be positive")
	}
	if a[2] < 1 {
		return nil, fmt.Errorf("size must be at least 1")
	}
	if err := checkUpdate(a[3]); err != nil {
		return nil, err
	}
	if a[5] <= a[4] {
		return nil, fmt.Errorf("max_value must exceed min_value")
	}
	return &sineWave{
		period: a[0], wavelength: a[1], size: int(a[2]), update: seconds(a[3]),
		min: a[4], max: a[5],
	}, nil
}

func (g *sineWave) interval() time.Duration { return g.update }

func (g *sineWave) sample(now time.Time) channel.Snapshot {
	half := (g.max - g.min) / 2
	mid := g.min + half
	t := float64(step(now, g.update)) * g.update.Seconds()
	phase := 2 * math.Pi * t / g.period

	out := make([]float64, g.size)
	for i := range out {
		out[i] = mid + half*math.Sin(2*math.Pi*float64(i)/g.wavelength+phase)
	}

	d := &channel.Display{
		Description:  "Sine wave array",
		Role:         channel.RoleRead,
		Widget:       channel.WidgetPlot,
		DisplayRange: &channel.Range{Min: g.min, Max: g.max},
		Precision:    5,
		Form:         channel.FormDefault,
	}
	return channel.Snapshot{
		Value:   channel.NewValue(out, d),
		Time:    channel.NewTime(now),
		Status:  validStatus(),
		Display: d,
	}
}

// rampWave is an array ramping 0..size-1, rotated once per period.
type rampWave struct {
	period float64
	size   int
	update time.Duration
}

func newRampWave(a []float64) (generator, error) {
	if a[0] <= 0 {
		return nil, fmt.Errorf("period_seconds must be positive")
	}
	if a[1] < 1 {
		return nil, fmt.Errorf("size must be at least 1")
	}
	if err := checkUpdate(a[2]); err != nil {
		return nil, err
	}
	return &rampWave{period: a[0], size: int(a[1]), update: seconds(a[2])}, nil
}

func (g *rampWave) interval() time.Duration { return g.update }

func (g *rampWave) sample(now time.Time) channel.Snapshot {
	t := float64(step(now, g.update)) * g.update.Seconds()
	shift := int(math.Mod(t/g.period, 1) * float64(g.size))

	out := make([]float64, g.size)
	for i := range out {
		out[i] = float64((i + shift) % g.size)
	}

	d := &channel.Display{
		Description:  "Ramp wave array",
		Role:         channel.RoleRead,
		Widget:       channel.WidgetPlot,
		DisplayRange: &channel.Range{Min: 0, Max: float64(g.size - 1)},
		Precision:    0,
		Form:         channel.FormDefault,
	}
	return channel.Snapshot{
		Value:   channel.NewValue(out, d),
		Time:    channel.NewTime(now),
		Status:  validStatus(),
		Display: d,
	}
}

// random is a uniformly distributed scalar.
type random struct {
	min, max float64
	update   time.Duration
}

func newRandom(a []float64) (generator, error) {
	if a[1] <= a[0] {
		return nil, fmt.Errorf("max must exceed min")
	}
	if err := checkUpdate(a[2]); err != nil {
		return nil, err
	}
	return &random{min: a[0], max: a[1], update: seconds(a[2])}, nil
}

func (g *random) interval() time.Duration { return g.update }

func (g *random) sample(now time.Time) channel.Snapshot {
	v := g.min + rand.Float64()*(g.max-g.min)
	d := &channel.Display{
		Description:  "Random value",
		Role:         channel.RoleRead,
		Widget:       channel.WidgetTextUpdate,
		DisplayRange: &channel.Range{Min: g.min, Max: g.max},
		Precision:    5,
		Form:         channel.FormDefault,
	}
	return channel.Snapshot{
		Value:   channel.NewValue(v, d),
		Time:    channel.NewTime(now),
		Status:  validStatus(),
		Display: d,
	}
}
