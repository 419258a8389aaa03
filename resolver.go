package chrono

import "fmt"

// ResolverStyle controls how aggressively a Resolver accepts out-of-range or redundant
// field combinations when turning Bindings into a concrete value.
type ResolverStyle int

const (
	// ResolveStrict requires every bound field to be exactly valid; 2012-13-01 is an error.
	ResolveStrict ResolverStyle = iota
	// ResolveSmart allows a resolver to apply reasonable, non-lossy adjustments (e.g.
	// clamping a day-of-month produced by combining a reduced year with other fields).
	ResolveSmart
	// ResolveLenient allows arithmetic overflow - month 13 becomes January of the next year.
	ResolveLenient
)

// ResolverFields optionally restricts which bound fields participate in resolution; a nil
// filter means every bound field is considered. This lets a formatter focus resolution on,
// say, only date fields even if a shared pattern also bound time fields.
type ResolverFields map[Field]bool

func (f ResolverFields) includes(field Field) bool {
	if f == nil {
		return true
	}
	return f[field]
}

// Chronology is the external calendar system collaborator. The core formatting engine
// never implements calendar arithmetic itself; it asks the chronology to turn
// year/month/day fields into a concrete date and defers all resolution policy to it.
type Chronology interface {
	// Name identifies the chronology, e.g. "ISO".
	Name() string
	// DateFromFields turns a proleptic year, month-of-year and day-of-month into the
	// number of days since the Unix epoch, applying style to decide how strictly the
	// fields must already be in range.
	DateFromFields(year, month, day int64, style ResolverStyle) (epochDay int64, err error)
}

// Resolved is the concrete result of combining a Bindings set into calendar and clock
// values. Each Has* flag indicates whether the corresponding group of input fields was
// present; a formatter built purely from time fields, for instance, never sets HasDate.
type Resolved struct {
	HasDate bool
	Date    int64 // days since the Unix epoch (compatible with LocalDate's encoding)

	HasTime bool
	Time    int64 // nanoseconds since midnight (compatible with LocalTime's encoding)

	HasOffset bool
	Offset    int64 // seconds east of UTC

	HasZoneID bool
	ZoneID    string

	ExcessDays int64
	LeapSecond bool
}

// Resolver consumes the raw binding set produced by a parse and produces a concrete
// result, or an error. The formatting engine calls this exactly once, at the end of
// Formatter.Parse/ParseUnresolved-then-resolve; it never reimplements resolver policy.
type Resolver interface {
	Resolve(bindings *Bindings, style ResolverStyle, fields ResolverFields) (Resolved, error)
}

// ISOResolver is the default Resolver, grounded in the proleptic Gregorian calendar that
// the rest of this module's date/time value types already use. It is the resolver every
// well-known formatter in this package (ISOLocalDate and friends) is built with, and it is
// perfectly reusable for custom patterns that only ever bind ISO calendar fields.
var ISOResolver Resolver = isoResolver{}

type isoResolver struct{}

func (isoResolver) Resolve(b *Bindings, style ResolverStyle, fields ResolverFields) (Resolved, error) {
	var out Resolved

	if year, hasYear := lookupYear(b, fields); hasYear {
		month, hasMonth := b.Get(MonthOfYear)
		day, hasDay := b.Get(DayOfMonth)

		dayOfYear, hasDayOfYear := b.Get(DayOfYear)

		switch {
		case hasMonth && hasDay && fields.includes(MonthOfYear) && fields.includes(DayOfMonth):
			switch style {
			case ResolveStrict:
				if err := MonthOfYear.checkValidValue(month); err != nil {
					return out, err
				}
				if err := DayOfMonth.checkValidValue(day); err != nil {
					return out, err
				}
			case ResolveSmart:
				// SMART rejects a month outside the calendar's range, just like STRICT, but
				// clamps an out-of-range day-of-month to the last valid day of that month
				// instead of erroring - e.g. 2012-04-31 resolves to 2012-04-30.
				if err := MonthOfYear.checkValidValue(month); err != nil {
					return out, err
				}
				if last := int64(daysInMonth(int(year), int(month))); day > last {
					day = last
				} else if day < 1 {
					day = 1
				}
			}

			epochDay, err := makeDate(int(year), int(month), int(day))
			if err != nil {
				return out, fmt.Errorf("invalid date %04d-%02d-%02d: %w", year, month, day, err)
			}
			out.HasDate = true
			out.Date = epochDay

		case hasDayOfYear && fields.includes(DayOfYear):
			epochDay, err := ofDayOfYear(int(year), int(dayOfYear))
			if err != nil {
				return out, err
			}
			out.HasDate = true
			out.Date = epochDay
		}

		if err := checkDateConsistency(b, fields, &out); err != nil {
			return out, err
		}
	}

	if err := resolveTime(b, fields, &out); err != nil {
		return out, err
	}

	if offset, ok := b.Get(OffsetSeconds); ok && fields.includes(OffsetSeconds) {
		out.HasOffset = true
		out.Offset = offset
	}

	if zoneID, ok := b.ZoneID(); ok {
		out.HasZoneID = true
		out.ZoneID = zoneID
	}

	out.LeapSecond = b.LeapSecond()
	out.ExcessDays += b.ExcessDays()

	return out, nil
}

func lookupYear(b *Bindings, fields ResolverFields) (int64, bool) {
	if y, ok := b.Get(Year); ok && fields.includes(Year) {
		return y, true
	}
	if y, ok := b.Get(YearOfEra); ok && fields.includes(YearOfEra) {
		return y, true
	}
	return 0, false
}

// checkDateConsistency cross-validates a resolved date against any independently bound
// day-of-year field: redundant fields must agree.
func checkDateConsistency(b *Bindings, fields ResolverFields, out *Resolved) error {
	if !out.HasDate {
		return nil
	}

	if dayOfYear, ok := b.Get(DayOfYear); ok && fields.includes(DayOfYear) {
		year, _, _, err := fromDate(out.Date)
		if err != nil {
			return err
		}

		doyDate, err := ofDayOfYear(year, int(dayOfYear))
		if err != nil {
			return err
		}

		if doyDate != out.Date {
			return fmt.Errorf("day-of-year %d does not agree with resolved date", dayOfYear)
		}
	}

	return nil
}

func resolveTime(b *Bindings, fields ResolverFields, out *Resolved) error {
	hour, hasHour := b.Get(HourOfDay)
	min, hasMin := b.Get(MinuteOfHour)
	sec, hasSec := b.Get(SecondOfMinute)
	nsec, hasNsec := b.Get(NanoOfSecond)

	if clockHour, ok := b.Get(ClockHourOfDay); ok && fields.includes(ClockHourOfDay) {
		hour, hasHour = clockHour%24, true
	}

	if hourAmPm, ok := b.Get(HourOfAmPm); ok && fields.includes(HourOfAmPm) {
		hour, hasHour = hourAmPm, true
	}

	if clockHourAmPm, ok := b.Get(ClockHourOfAmPm); ok && fields.includes(ClockHourOfAmPm) {
		hour, hasHour = clockHourAmPm%12, true
	}

	if !hasHour && !hasMin && !hasSec && !hasNsec {
		if milliOfDay, ok := b.Get(MilliOfDay); ok && fields.includes(MilliOfDay) {
			nanos := milliOfDay * 1_000_000
			out.HasTime = true
			out.Time = nanos
			return nil
		}

		if nanoOfDay, ok := b.Get(NanoOfDay); ok && fields.includes(NanoOfDay) {
			out.HasTime = true
			out.Time = nanoOfDay
			return nil
		}

		return nil
	}

	var excessDays int64
	if hasHour && hour == 24 && (!hasMin || min == 0) && (!hasSec || sec == 0) && (!hasNsec || nsec == 0) {
		hour = 0
		excessDays = 1
	}

	leapSecond := hasSec && sec == 60
	if leapSecond {
		sec = 59
	}

	t, err := makeTime(int(hour), int(min), int(sec), int(nsec))
	if err != nil {
		return err
	}

	out.HasTime = true
	out.Time = t
	out.ExcessDays += excessDays
	out.LeapSecond = out.LeapSecond || leapSecond
	return nil
}
