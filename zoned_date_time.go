package chrono

import "time"

// ZonedDateTime combines a LocalDateTime with a Zone, the way OffsetDateTime combines one
// with a fixed Offset. Unlike Offset, a Zone's rules can make the same local date-time
// ambiguous (during a fall-back transition) or non-existent (during a spring-forward gap);
// ZonedDateTime resolves both cases the way Go's time package does, by normalizing through
// the zone's offset at that instant rather than rejecting the input.
type ZonedDateTime struct {
	local LocalDateTime
	zone  Zone
}

// ZonedDateTimeOf returns a ZonedDateTime for the given local date and time, interpreted in
// zone. If the local time falls in a gap or overlap, the zone's offset rules resolve it the
// same way time.Date does.
func ZonedDateTimeOf(date LocalDate, time LocalTime, zone Zone) ZonedDateTime {
	return ZonedDateTime{local: OfLocalDateAndTime(date, time), zone: zone}
}

// Current returns the ZonedDateTime representing now, in the local zone.
func Current() ZonedDateTime {
	secs, nsec := walltime()
	t := time.Unix(secs, int64(nsec)).In(Local().loc)
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return ZonedDateTime{
		local: LocalDateTimeOf(year, Month(month), day, hour, min, sec, t.Nanosecond()),
		zone:  Local(),
	}
}

// Zone returns the zone associated with z.
func (z ZonedDateTime) Zone() Zone {
	return z.zone
}

// Local returns the local date-time component of z, without zone or offset information.
func (z ZonedDateTime) Local() LocalDateTime {
	return z.local
}

// Offset returns the offset in effect for z's local date-time within its zone.
func (z ZonedDateTime) Offset() Offset {
	return Offset(z.offsetSeconds())
}

func (z ZonedDateTime) offsetSeconds() int64 {
	_, offset := z.asTime().Zone()
	return int64(offset)
}

func (z ZonedDateTime) asTime() time.Time {
	date, t := z.local.Split()
	year, month, day := date.Date()
	hour, min, sec := t.Clock()
	return time.Date(year, time.Month(month), day, hour, min, sec, t.Nanosecond(), z.zone.loc)
}

// ToOffsetDateTime returns the OffsetDateTime equivalent to z, with the offset currently in
// effect for its zone.
func (z ZonedDateTime) ToOffsetDateTime() OffsetDateTime {
	date, t := z.local.Split()
	return OfLocalDateTimeOffset(date, t, Extent(z.offsetSeconds()))
}

// Compare compares z with z2 by instant, not by local date-time.
func (z ZonedDateTime) Compare(z2 ZonedDateTime) int {
	return z.ToOffsetDateTime().UTC().Compare(z2.ToOffsetDateTime().UTC())
}

// In returns the ZonedDateTime representing the same instant as z, viewed in the supplied zone.
func (z ZonedDateTime) In(zone Zone) ZonedDateTime {
	t := z.asTime().In(zone.loc)
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return ZonedDateTime{
		local: LocalDateTimeOf(year, Month(month), day, hour, min, sec, t.Nanosecond()),
		zone:  zone,
	}
}

func (z ZonedDateTime) String() string {
	return z.local.String() + " " + z.zone.id()
}

// IsSupported reports whether field can be derived from a ZonedDateTime.
func (z ZonedDateTime) IsSupported(field Field) bool {
	return field == OffsetSeconds || z.local.IsSupported(field)
}

// GetLong returns the value of field for z.
func (z ZonedDateTime) GetLong(field Field) (int64, error) {
	if field == OffsetSeconds {
		return z.offsetSeconds(), nil
	}
	return z.local.GetLong(field)
}

// Query answers the side-channel lookups a formatter node may need; ZonedDateTime reports
// its zone identifier for QueryZoneID.
func (z ZonedDateTime) Query(key QueryKey) (any, bool) {
	if key == QueryZoneID {
		return z.zone.id(), true
	}
	return nil, false
}

// Format returns a textual representation of z formatted according to the layout pattern
// defined by the argument. See pattern.go for the supported letters, including 'VV' for the
// zone identifier.
func (z ZonedDateTime) Format(layout string) string {
	out, err := formatterForPattern(layout).Format(z)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Parse a formatted string and store the value it represents in z. If the layout includes a
// zone identifier ('VV'), the parsed zone is used; otherwise z retains its current zone and
// only the local date-time (and, if present, offset) are updated.
func (z *ZonedDateTime) Parse(layout, value string) error {
	resolved, err := formatterForPattern(layout).Parse(value)
	if err != nil {
		return err
	}

	date, t := z.local.Split()
	dv := int64(date)
	tv := t.v
	if resolved.HasDate {
		dv = resolved.Date
	}
	if resolved.HasTime {
		tv = resolved.Time
	}
	z.local = OfLocalDateAndTime(LocalDate(dv), LocalTime{v: tv})

	if resolved.HasZoneID {
		zone, err := LoadZone(resolved.ZoneID)
		if err != nil {
			return err
		}
		z.zone = zone
	}
	return nil
}
