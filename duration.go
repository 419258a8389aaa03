package chrono

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Designator identifies one of the hour/minute/second components of an ISO 8601 duration,
// for use with Duration.Format.
type Designator int

// The components of the time portion of an ISO 8601 duration.
const (
	Hours Designator = iota
	Minutes
	Seconds
)

const (
	nanosPerSecond = int64(1e9)
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
)

type Duration struct {
	secs uint64
	nsec uint32
}

// DurationOf returns the Duration spanning v nanoseconds. Extent (and the Nanosecond,
// Microsecond, Second, ... constants) is defined in extent.go.
//
// Negative v is represented by storing secs as the two's-complement encoding of the
// corresponding negative second count, recovered by Compare and the other methods below
// that need signed semantics; this keeps the wire-compatible {secs uint64, nsec uint32}
// layout while still round-tripping negative durations exactly.
func DurationOf(v Extent) Duration {
	nanos := int64(v)
	secs := nanos / 1e9
	nsec := nanos % 1e9
	if nsec < 0 {
		nsec += 1e9
		secs--
	}
	return Duration{secs: uint64(secs), nsec: uint32(nsec)}
}

// Compare compares d with d2 as signed durations. If d is shorter than d2, it returns -1;
// if d is longer, it returns 1; if they're equal, it returns 0.
func (d Duration) Compare(d2 Duration) int {
	dn := d.signedNanos()
	d2n := d2.signedNanos()
	switch {
	case dn < d2n:
		return -1
	case dn > d2n:
		return 1
	default:
		return 0
	}
}

// Add returns the duration d+d2.
// This function panics if the resulting duration would fall outside of the allowed range.
func (d Duration) Add(d2 Duration) Duration {
	out, err := d.add(d2)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// CanAdd returns false if Add would panic if passed the same argument.
func (d Duration) CanAdd(d2 Duration) bool {
	_, err := d.add(d2)
	return err == nil
}

func (d Duration) add(d2 Duration) (Duration, error) {
	a := d.signedNanos()
	b := d2.signedNanos()
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return Duration{}, fmt.Errorf("duration out of range")
	}
	return DurationOf(Extent(sum)), nil
}

// signedNanos reconstructs d's total nanosecond count as a signed value, recovering the
// negative encoding DurationOf stores in secs (see DurationOf).
func (d Duration) signedNanos() int64 {
	return int64(d.secs)*nanosPerSecond + int64(d.nsec)
}

func (d Duration) Nanoseconds() float64 {
	return float64(d.signedNanos())
}

func (d Duration) Microseconds() float64 {
	return float64(d.signedNanos()) / 1e3
}

func (d Duration) Milliseconds() float64 {
	return float64(d.signedNanos()) / 1e6
}

func (d Duration) Seconds() float64 {
	return float64(d.signedNanos()) / 1e9
}

func (d Duration) Minutes() float64 {
	return float64(d.signedNanos()) / float64(nanosPerMinute)
}

func (d Duration) Hours() float64 {
	return float64(d.signedNanos()) / float64(nanosPerHour)
}

// String renders d as an ISO 8601 duration, e.g. "PT1H15M30.5S", using whichever of the
// hour, minute, and second designators span its nonzero components. It is equivalent to
// Format called with no exclusive designators.
func (d Duration) String() string {
	return d.Format()
}

// Format renders d as an ISO 8601 duration. With no arguments, the hour, minute, and second
// components are computed independently and only the designators needed to span the nonzero
// ones are printed (a zero minute component between nonzero hours and seconds is still shown,
// e.g. "PT12H0M30.5S").
//
// When one or more designators are given, exactly those designators are printed, in
// hour/minute/second order, regardless of the order passed in. Every designator coarser than
// the smallest one given is printed as a whole number; the smallest given designator absorbs
// the remaining duration, including any finer-grained component that has no designator of its
// own, as a fractional value.
func (d Duration) Format(exclusive ...Designator) string {
	nanos := d.signedNanos()

	neg := nanos < 0
	if neg {
		nanos = -nanos
	}

	var body string
	if len(exclusive) == 0 {
		body = formatDurationDefault(nanos)
	} else {
		body = formatDurationExclusive(nanos, exclusive)
	}

	if neg {
		return "-PT" + body
	}
	return "PT" + body
}

func formatDurationDefault(nanos int64) string {
	hours := nanos / nanosPerHour
	rem := nanos % nanosPerHour
	mins := rem / nanosPerMinute
	secNanos := rem % nanosPerMinute

	incH := hours != 0
	incS := secNanos != 0
	incM := mins != 0 || (incH && incS)
	if !incH && !incM && !incS {
		incS = true
	}

	var out string
	if incH {
		out += strconv.FormatInt(hours, 10) + "H"
	}
	if incM {
		out += strconv.FormatInt(mins, 10) + "M"
	}
	if incS {
		out += formatFractionalUnit(secNanos, nanosPerSecond) + "S"
	}
	return out
}

func formatDurationExclusive(nanos int64, exclusive []Designator) string {
	include := map[Designator]bool{}
	for _, d := range exclusive {
		include[d] = true
	}

	type step struct {
		designator Designator
		unitNanos  int64
		letter     byte
	}
	steps := []step{
		{Hours, nanosPerHour, 'H'},
		{Minutes, nanosPerMinute, 'M'},
		{Seconds, nanosPerSecond, 'S'},
	}

	var included []step
	for _, s := range steps {
		if include[s.designator] {
			included = append(included, s)
		}
	}

	var out string
	remaining := nanos
	for i, s := range included {
		if i == len(included)-1 {
			out += formatFractionalUnit(remaining, s.unitNanos) + string(s.letter)
			continue
		}
		whole := remaining / s.unitNanos
		remaining -= whole * s.unitNanos
		out += strconv.FormatInt(whole, 10) + string(s.letter)
	}
	return out
}

// formatFractionalUnit renders valueNanos, expressed as a count of unitNanos-sized units, as
// the shortest decimal string that reproduces the same value, e.g. 500ms over a 1s unit yields
// "0.5", and an exact multiple yields a bare integer.
func formatFractionalUnit(valueNanos, unitNanos int64) string {
	whole := valueNanos / unitNanos
	frac := valueNanos % unitNanos
	if frac == 0 {
		return strconv.FormatInt(whole, 10)
	}
	value := float64(whole) + float64(frac)/float64(unitNanos)
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Parse the time portion of an ISO 8601 duration, e.g. "PT5H3M1S" or "-PT4.5H3,25M".
// A leading sign before the 'P' negates the whole duration; the decimal separator within
// a component may be either '.' or ','. Parse reports an error if the parsed value falls
// outside the range spanned by MinDuration and MaxDuration.
func (d *Duration) Parse(s string) error {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	s = strings.ReplaceAll(s, ",", ".")

	_, dur, err := ParseDuration(s)
	if err != nil {
		return err
	}

	secs := int64(dur.secs)
	total := float64(secs)*1e9 + float64(dur.nsec)
	if total > math.MaxInt64 {
		return fmt.Errorf("duration overflows")
	}
	if total < math.MinInt64 {
		return fmt.Errorf("duration underflows")
	}

	nanos := secs*nanosPerSecond + int64(dur.nsec)
	if neg {
		nanos = -nanos
	}

	*d = DurationOf(Extent(nanos))
	return nil
}

// Units decomposes d into its hour, minute, second, and nanosecond components.
func (d Duration) Units() (hours, mins, secs, nsec int64) {
	nanos := d.signedNanos()
	neg := nanos < 0
	if neg {
		nanos = -nanos
	}

	hours = nanos / nanosPerHour
	nanos %= nanosPerHour
	mins = nanos / nanosPerMinute
	nanos %= nanosPerMinute
	secs = nanos / nanosPerSecond
	nsec = nanos % nanosPerSecond

	if neg {
		hours, mins, secs, nsec = -hours, -mins, -secs, -nsec
	}
	return
}

// MinDuration returns the smallest Duration representable by DurationOf,
// spanning math.MinInt64 nanoseconds (roughly -292 years).
func MinDuration() Duration {
	return minDuration
}

// MaxDuration returns the largest Duration representable by DurationOf,
// spanning math.MaxInt64 nanoseconds (roughly 292 years).
func MaxDuration() Duration {
	return maxDuration
}

var (
	minDuration = DurationOf(Extent(math.MinInt64))
	maxDuration = DurationOf(Extent(math.MaxInt64))
)
