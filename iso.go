package chrono

// The well-known formatters below mirror java.time's ISO_LOCAL_DATE-style constants.
// Each is built once, here, directly from the Builder DSL. Go initializes package-level
// variables in dependency order, so a lazy-once wrapper isn't needed for correctness -
// but the builder calls are still confined to ordinary functions so that a future caller
// wanting a fresh, independently-configured copy (a different ResolverStyle, say) has one
// obvious place to start from.

// ISOLocalDate formats/parses "2012-06-30".
var ISOLocalDate = buildISOLocalDate()

// ISOLocalTime formats/parses "10:15:30" or "10:15:30.123456789".
var ISOLocalTime = buildISOLocalTime()

// ISOLocalDateTime formats/parses "2012-06-30T10:15:30".
var ISOLocalDateTime = buildISOLocalDateTime()

// ISOOffsetDate formats/parses "2012-06-30+01:00".
var ISOOffsetDate = buildISOOffsetDate()

// ISOOffsetTime formats/parses "10:15:30+01:00".
var ISOOffsetTime = buildISOOffsetTime()

// ISOOffsetDateTime formats/parses "2012-06-30T10:15:30+01:00".
var ISOOffsetDateTime = buildISOOffsetDateTime()

// ISOZonedDateTime formats/parses "2012-06-30T10:15:30+01:00[Europe/Paris]".
var ISOZonedDateTime = buildISOZonedDateTime()

// ISOInstant formats/parses "2012-06-30T10:15:30Z". It prints the value's own offset ("Z" only
// for a zero offset) and does not convert to UTC first.
var ISOInstant = buildISOInstant()

func isoDateTree() *Builder {
	return NewBuilder().
		AppendValueWidth(Year, 4, 10, SignExceedsPad).
		AppendLiteral("-").
		AppendValueFixed(MonthOfYear, 2).
		AppendLiteral("-").
		AppendValueFixed(DayOfMonth, 2)
}

func isoTimeTree() *Builder {
	b := NewBuilder().
		AppendValueFixed(HourOfDay, 2).
		AppendLiteral(":").
		AppendValueFixed(MinuteOfHour, 2)

	b = b.OptionalStart().
		AppendLiteral(":").
		AppendValueFixed(SecondOfMinute, 2).
		OptionalStart().
		AppendFraction(NanoOfSecond, 0, 9, true).
		OptionalEnd().
		OptionalEnd()

	return b
}

func buildISOLocalDate() *Formatter {
	return isoDateTree().ToFormatter()
}

func buildISOLocalTime() *Formatter {
	return isoTimeTree().ToFormatter()
}

func buildISOLocalDateTime() *Formatter {
	return isoDateTree().
		AppendLiteral("T").
		Append(buildISOLocalTime()).
		ToFormatter()
}

func buildISOOffsetDate() *Formatter {
	return isoDateTree().AppendOffsetID().ToFormatter()
}

func buildISOOffsetTime() *Formatter {
	return isoTimeTree().AppendOffsetID().ToFormatter()
}

func buildISOOffsetDateTime() *Formatter {
	return isoDateTree().
		AppendLiteral("T").
		Append(buildISOLocalTime()).
		AppendOffsetID().
		ToFormatter()
}

func buildISOZonedDateTime() *Formatter {
	return isoDateTree().
		AppendLiteral("T").
		Append(buildISOLocalTime()).
		AppendOffsetID().
		OptionalStart().
		AppendLiteral("[").
		AppendZoneID().
		AppendLiteral("]").
		OptionalEnd().
		ToFormatter()
}

// isoInstantTree returns the node tree shared by ISOInstant and appendInstant(); it is a
// plain date/time/offset sequence requiring the "Z" (or numeric offset) suffix.
func isoInstantTree() node {
	return NewBuilder().
		AppendValueWidth(Year, 4, 10, SignExceedsPad).
		AppendLiteral("-").
		AppendValueFixed(MonthOfYear, 2).
		AppendLiteral("-").
		AppendValueFixed(DayOfMonth, 2).
		AppendLiteral("T").
		Append(buildISOLocalTime()).
		AppendOffsetID().
		ToFormatter().root
}

func buildISOInstant() *Formatter {
	return &Formatter{
		root:     isoInstantTree(),
		resolver: ISOResolver,
		style:    ResolveStrict,
		decimal:  StandardDecimalStyle,
	}
}
