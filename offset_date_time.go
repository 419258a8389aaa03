package chrono

import (
	"math/big"
)

// OffsetDateTime has the same semantics as LocalDateTime, but with the addition of a timezone offset.
type OffsetDateTime struct {
	v big.Int
	o int64
}

// OffsetDateTimeOf returns an OffsetDateTime that represents the specified year, month, day,
// hour, minute, second, and nanosecond offset within the specified second.
// The supplied offset is applied to the returned OffsetDateTime in the same manner as OffsetOf.
// The same range of values as supported by LocalDateOf and LocalTimeOf are allowed here.
func OffsetDateTimeOf(year int, month Month, day, hour, min, sec, nsec, offsetHours, offsetMins int) OffsetDateTime {
	date, err := makeDate(year, int(month), day)
	if err != nil {
		panic(err.Error())
	}

	time, err := makeTime(hour, min, sec, nsec)
	if err != nil {
		panic(err.Error())
	}

	return OffsetDateTime{
		v: makeDateTime(date, time),
		o: makeOffset(offsetHours, offsetMins),
	}
}

// OfLocalDateOffsetTime combines a LocalDate and OffsetTime into an OffsetDateTime.
func OfLocalDateOffsetTime(date LocalDate, time OffsetTime) OffsetDateTime {
	return OffsetDateTime{
		v: makeDateTime(int64(date), time.v),
		o: time.o,
	}
}

// OfLocalDateTimeOffset combines a LocalDate, LocalTime, and Offset into an OffsetDateTime.
func OfLocalDateTimeOffset(date LocalDate, time LocalTime, offset Extent) OffsetDateTime {
	return OffsetDateTime{
		v: makeDateTime(int64(date), time.v),
		o: int64(offset),
	}
}

// Compare compares d with d2. If d is before d2, it returns -1;
// if d is after d2, it returns 1; if they're the same, it returns 0.
func (d OffsetDateTime) Compare(d2 OffsetDateTime) int {
	return d.v.Cmp(&d2.v)
}

// Offset returns the offset of d.
func (d OffsetDateTime) Offset() Offset {
	return Offset(d.o)
}

// Split returns separate a LocalDate and OffsetTime that together represent d.
func (d OffsetDateTime) Split() (LocalDate, OffsetTime) {
	date, time := splitDateAndTime(d.v)
	return LocalDate(date), OffsetTime{v: time, o: d.o}
}

// In returns a copy of t, adjusted to the supplied offset.
func (d OffsetDateTime) In(offset Offset) OffsetDateTime {
	return OffsetDateTime{
		v: bigDateToOffset(d.v, d.o, int64(offset)),
		o: int64(offset),
	}
}

// UTC is a shortcut for t.In(UTC).
func (d OffsetDateTime) UTC() OffsetDateTime {
	return OffsetDateTime{v: bigDateToOffset(d.v, d.o, 0)}
}

// Local returns the LocalDateTime represented by d.
func (d OffsetDateTime) Local() LocalDateTime {
	return LocalDateTime{d.v}
}

// Add returns the datetime d+v.
// This function panics if the resulting datetime would fall outside of the allowed range.
func (d OffsetDateTime) Add(v Duration) OffsetDateTime {
	out, err := addDurationToBigDate(d.v, v)
	if err != nil {
		panic(err.Error())
	}
	return OffsetDateTime{v: out, o: d.o}
}

// CanAdd returns false if Add would panic if passed the same arguments.
func (d OffsetDateTime) CanAdd(v Duration) bool {
	_, err := addDurationToBigDate(d.v, v)
	return err == nil
}

// AddDate returns the datetime corresponding to adding the given number of years, months, and days to d.
// This function panic if the resulting datetime would fall outside of the allowed date range.
func (d OffsetDateTime) AddDate(years, months, days int) OffsetDateTime {
	out, err := addDateToBigDate(d.v, years, months, days)
	if err != nil {
		panic(err.Error())
	}
	return OffsetDateTime{v: out, o: d.o}
}

// CanAddDate returns false if AddDate would panic if passed the same arguments.
func (d OffsetDateTime) CanAddDate(years, months, days int) bool {
	_, err := addDateToBigDate(d.v, years, months, days)
	return err == nil
}

// Sub returns the duration d-u.
func (d OffsetDateTime) Sub(u OffsetDateTime) Duration {
	out := new(big.Int).Set(&d.v)
	out.Sub(out, big.NewInt(d.o))
	out.Sub(out, &u.v)
	out.Add(out, big.NewInt(u.o))
	return DurationOf(Extent(out.Int64()))
}

func (d OffsetDateTime) String() string {
	date, time := splitDateAndTime(d.v)
	hour, min, sec, nsec := fromTime(time)
	year, month, day, err := fromDate(date)
	if err != nil {
		panic(err.Error())
	}
	return simpleDateStr(year, month, day) + " " + simpleTimeStr(hour, min, sec, nsec, &d.o)
}

// IsSupported reports whether field can be derived from an OffsetDateTime.
func (d OffsetDateTime) IsSupported(field Field) bool {
	if field == OffsetSeconds {
		return true
	}
	date, time := d.Split()
	return date.IsSupported(field) || time.Local().IsSupported(field)
}

// GetLong returns the value of field for d.
func (d OffsetDateTime) GetLong(field Field) (int64, error) {
	if field == OffsetSeconds {
		return d.o, nil
	}
	date, time := d.Split()
	if date.IsSupported(field) {
		return date.GetLong(field)
	}
	return time.Local().GetLong(field)
}

// Query answers the side-channel lookups a formatter node may need; OffsetDateTime
// carries no zone identifier, so it always reports ok=false.
func (d OffsetDateTime) Query(key QueryKey) (any, bool) {
	return nil, false
}

// Format returns a textual representation of the date-time value formatted according to
// the layout pattern defined by the argument. See pattern.go for the supported letters.
func (d OffsetDateTime) Format(layout string) string {
	out, err := formatterForPattern(layout).Format(d)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Parse a formatted string and store the value it represents in d.
// See pattern.go for the supported pattern letters.
func (d *OffsetDateTime) Parse(layout, value string) error {
	resolved, err := formatterForPattern(layout).Parse(value)
	if err != nil {
		return err
	}

	dv, tv := splitDateAndTime(d.v)
	if resolved.HasDate {
		dv = resolved.Date
	}
	if resolved.HasTime {
		tv = resolved.Time
	}

	d.v = makeDateTime(dv, tv)
	if resolved.HasOffset {
		d.o = resolved.Offset
	}
	return nil
}
