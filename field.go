package chrono

import "fmt"

// Field identifies a single temporal component that a formatter can print or parse,
// such as a year, a month-of-year, or an hour-of-day. Fields are comparable and are
// suitable for use as map keys, which is how parsed values are carried in a Bindings set.
type Field struct {
	name string

	min, max int64

	// fixedRange reports whether the field's range begins at 0 and has a known,
	// non-overflowing width, which is required for a field to participate in appendFraction.
	fixedRange bool
}

// Name returns the field's stable, human-readable identifier, e.g. "MonthOfYear".
func (f Field) Name() string {
	return f.name
}

// Range returns the inclusive range of values that f can legitimately hold.
func (f Field) Range() (min, max int64) {
	return f.min, f.max
}

func (f Field) String() string {
	return f.name
}

// checkValidValue returns an error if v does not fall within f's declared range.
func (f Field) checkValidValue(v int64) error {
	if v < f.min || v > f.max {
		return fmt.Errorf("invalid value for %s (valid values %d - %d): %d", f.name, f.min, f.max, v)
	}
	return nil
}

// The closed set of fields known to the formatting engine. Fields outside of this set
// (week-based-year, zone-name text, and era are explicitly out of scope) are not modeled.
var (
	Year                    = Field{name: "Year", min: -999999999, max: 999999999}
	YearOfEra               = Field{name: "YearOfEra", min: 1, max: 999999999}
	MonthOfYear             = Field{name: "MonthOfYear", min: 1, max: 12, fixedRange: true}
	DayOfMonth              = Field{name: "DayOfMonth", min: 1, max: 31}
	DayOfYear               = Field{name: "DayOfYear", min: 1, max: 366}
	QuarterOfYear           = Field{name: "QuarterOfYear", min: 1, max: 4, fixedRange: true}
	AlignedDayOfWeekInMonth = Field{name: "AlignedDayOfWeekInMonth", min: 1, max: 7, fixedRange: true}

	HourOfDay       = Field{name: "HourOfDay", min: 0, max: 23, fixedRange: true}
	ClockHourOfDay  = Field{name: "ClockHourOfDay", min: 1, max: 24}
	HourOfAmPm      = Field{name: "HourOfAmPm", min: 0, max: 11, fixedRange: true}
	ClockHourOfAmPm = Field{name: "ClockHourOfAmPm", min: 1, max: 12}
	MinuteOfHour    = Field{name: "MinuteOfHour", min: 0, max: 59, fixedRange: true}
	SecondOfMinute  = Field{name: "SecondOfMinute", min: 0, max: 59, fixedRange: true}
	NanoOfSecond    = Field{name: "NanoOfSecond", min: 0, max: 999999999, fixedRange: true}
	MilliOfDay      = Field{name: "MilliOfDay", min: 0, max: 86399999, fixedRange: true}
	NanoOfDay       = Field{name: "NanoOfDay", min: 0, max: 86399999999999, fixedRange: true}

	OffsetSeconds = Field{name: "OffsetSeconds", min: -64800, max: 64800, fixedRange: true}
)
