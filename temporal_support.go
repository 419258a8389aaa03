package chrono

// dateFieldValue returns the value of field given a calendar date, and whether field is
// one of the date-related fields this package understands at all. It is shared by every
// date-bearing temporal type's GetLong/IsSupported implementation.
func dateFieldValue(field Field, year, month, day int) (int64, bool) {
	switch field {
	case Year, YearOfEra:
		return int64(year), true
	case MonthOfYear:
		return int64(month), true
	case DayOfMonth:
		return int64(day), true
	case DayOfYear:
		return int64(getOrdinalDate(year, month, day)), true
	case QuarterOfYear:
		return int64((month-1)/3 + 1), true
	case AlignedDayOfWeekInMonth:
		return int64((day-1)%7 + 1), true
	default:
		return 0, false
	}
}

// timeFieldValue is the time-of-day equivalent of dateFieldValue.
func timeFieldValue(field Field, hour, min, sec, nsec int) (int64, bool) {
	switch field {
	case HourOfDay:
		return int64(hour), true
	case ClockHourOfDay:
		if hour == 0 {
			return 24, true
		}
		return int64(hour), true
	case HourOfAmPm:
		return int64(hour % 12), true
	case ClockHourOfAmPm:
		h := hour % 12
		if h == 0 {
			h = 12
		}
		return int64(h), true
	case MinuteOfHour:
		return int64(min), true
	case SecondOfMinute:
		return int64(sec), true
	case NanoOfSecond:
		return int64(nsec), true
	case MilliOfDay:
		return int64(hour)*3600_000 + int64(min)*60_000 + int64(sec)*1000 + int64(nsec)/1_000_000, true
	case NanoOfDay:
		return (int64(hour)*3600+int64(min)*60+int64(sec))*1_000_000_000 + int64(nsec), true
	default:
		return 0, false
	}
}

func errUnsupportedField(field Field) error {
	return &UnsupportedTemporalTypeError{Field: field}
}
