package chrono

import "fmt"

// OffsetDate has the same semantics as LocalDate, but with the addition of a timezone offset.
type OffsetDate struct {
	v int64
	o int64
}

// OffsetDateOf returns an OffsetDate that represents the specified year, month, day, and
// offset. The supplied offset is applied to the returned OffsetDate in the same manner as
// OffsetOf. This function panics if the provided date would overflow the internal type,
// or if it is earlier than the first date that can be represented by LocalDate.
func OffsetDateOf(year int, month Month, day, offsetHours, offsetMins int) OffsetDate {
	if !isDateValid(year, int(month), day) {
		panic("invalid date")
	}

	v, err := makeDate(year, int(month), day)
	if err != nil {
		panic(err.Error())
	}
	return OffsetDate{
		v: v,
		o: makeOffset(offsetHours, offsetMins),
	}
}

// OfDateOffset combines a LocalDate and Offset into an OffsetDate.
func OfDateOffset(date LocalDate, offset Offset) OffsetDate {
	return OffsetDate{
		v: int64(date),
		o: int64(offset),
	}
}

// Date returns the ISO 8601 year, month and day represented by d.
func (d OffsetDate) Date() (year int, month Month, day int) {
	return d.Local().Date()
}

// AddDate returns the date corresponding to adding the given number of years, months, and
// days to d, maintaining its offset.
func (d OffsetDate) AddDate(years, months, days int) OffsetDate {
	out, err := addDateToDate(d.v, years, months, days)
	if err != nil {
		panic(err.Error())
	}
	return OffsetDate{v: out, o: d.o}
}

// CanAddDate returns false if AddDate would panic if passed the same arguments.
func (d OffsetDate) CanAddDate(years, months, days int) bool {
	_, err := addDateToDate(d.v, years, months, days)
	return err == nil
}

// Compare compares d with d2. If d is before d2, it returns -1;
// if d is after d2, it returns 1; if they're the same, it returns 0.
func (d OffsetDate) Compare(d2 OffsetDate) int {
	switch {
	case d.v < d2.v:
		return -1
	case d.v > d2.v:
		return 1
	default:
		return 0
	}
}

func (d OffsetDate) String() string {
	year, month, day := d.Date()
	return simpleDateStr(year, int(month), day) + offsetString(d.o, ":")
}

// In returns a copy of d, adjusted to the supplied offset. Since OffsetDate has no time
// component to carry the offset difference, the date itself is unchanged.
func (d OffsetDate) In(offset Offset) OffsetDate {
	return OffsetDate{v: d.v, o: int64(offset)}
}

// UTC is a shortcut for d.In(UTC).
func (d OffsetDate) UTC() OffsetDate {
	return OffsetDate{v: d.v}
}

// Local returns the LocalDate represented by d.
func (d OffsetDate) Local() LocalDate {
	return LocalDate(d.v)
}

// Offset returns the offset of d.
func (d OffsetDate) Offset() Offset {
	return Offset(d.o)
}

// IsSupported reports whether field can be derived from an OffsetDate.
func (d OffsetDate) IsSupported(field Field) bool {
	if field == OffsetSeconds {
		return true
	}
	return d.Local().IsSupported(field)
}

// GetLong returns the value of field for d.
func (d OffsetDate) GetLong(field Field) (int64, error) {
	if field == OffsetSeconds {
		return d.o, nil
	}
	return d.Local().GetLong(field)
}

// Query answers the side-channel lookups a formatter node may need; OffsetDate carries no
// zone identifier, so it always reports ok=false.
func (d OffsetDate) Query(key QueryKey) (any, bool) {
	return nil, false
}

// Format returns a textual representation of the date value formatted according to the
// layout pattern defined by the argument. See pattern.go for the supported letters. Time
// specifiers encountered in the layout result in a panic, since an OffsetDate cannot
// supply those fields.
func (d OffsetDate) Format(layout string) string {
	out, err := formatterForPattern(layout).Format(d)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Parse a formatted string and store the value it represents in d.
// See pattern.go for the supported pattern letters.
func (d *OffsetDate) Parse(layout, value string) error {
	resolved, err := formatterForPattern(layout).Parse(value)
	if err != nil {
		return err
	}
	if !resolved.HasDate {
		return fmt.Errorf("layout %q does not contain a date", layout)
	}

	d.v = resolved.Date
	if resolved.HasOffset {
		d.o = resolved.Offset
	}
	return nil
}
