package chrono

import (
	"fmt"
	"strings"
)

// OffsetPattern enumerates the fixed repertoire of offset text shapes an Offset node can
// print and parse: hours-only up to hours:minutes:seconds, with or without colons.
type OffsetPattern int

const (
	OffsetPatternHours            OffsetPattern = iota // +HH
	OffsetPatternHoursMinutes                          // +HHMM
	OffsetPatternHoursMinutesColon                      // +HH:MM
	OffsetPatternHoursMinutesSeconds                    // +HHMMss (seconds optional on parse)
	OffsetPatternHoursMinutesSecondsColon               // +HH:MM:ss
	OffsetPatternHoursMinutesSecondsReq                 // +HHMMSS (seconds mandatory)
	OffsetPatternHoursMinutesSecondsReqColon            // +HH:MM:SS
)

func (p OffsetPattern) hasColon() bool {
	switch p {
	case OffsetPatternHoursMinutesColon, OffsetPatternHoursMinutesSecondsColon, OffsetPatternHoursMinutesSecondsReqColon:
		return true
	default:
		return false
	}
}

func (p OffsetPattern) hasMinutes() bool {
	return p != OffsetPatternHours
}

func (p OffsetPattern) hasSeconds() bool {
	switch p {
	case OffsetPatternHoursMinutesSeconds, OffsetPatternHoursMinutesSecondsColon,
		OffsetPatternHoursMinutesSecondsReq, OffsetPatternHoursMinutesSecondsReqColon:
		return true
	default:
		return false
	}
}

func (p OffsetPattern) secondsRequired() bool {
	return p == OffsetPatternHoursMinutesSecondsReq || p == OffsetPatternHoursMinutesSecondsReqColon
}

func (p OffsetPattern) String() string {
	switch p {
	case OffsetPatternHours:
		return "+HH"
	case OffsetPatternHoursMinutes:
		return "+HHMM"
	case OffsetPatternHoursMinutesColon:
		return "+HH:MM"
	case OffsetPatternHoursMinutesSeconds:
		return "+HHMMss"
	case OffsetPatternHoursMinutesSecondsColon:
		return "+HH:MM:ss"
	case OffsetPatternHoursMinutesSecondsReq:
		return "+HHMMSS"
	case OffsetPatternHoursMinutesSecondsReqColon:
		return "+HH:MM:SS"
	default:
		return "?"
	}
}

// offsetNode prints/parses a UTC offset, falling back to noOffsetText (often "Z") when
// the temporal carries no offset (print) or when the input matches noOffsetText exactly
// (parse).
type offsetNode struct {
	pattern      OffsetPattern
	noOffsetText string
}

func (n *offsetNode) print(ctx *printContext) error {
	if !ctx.temporal.IsSupported(OffsetSeconds) {
		if n.noOffsetText != "" {
			ctx.buf.WriteString(n.noOffsetText)
		}
		return nil
	}

	total, err := ctx.temporal.GetLong(OffsetSeconds)
	if err != nil {
		return err
	}

	if total == 0 && n.noOffsetText != "" {
		ctx.buf.WriteString(n.noOffsetText)
		return nil
	}

	sign := byte('+')
	if total < 0 {
		sign = '-'
		total = -total
	}

	hours := total / 3600
	mins := (total % 3600) / 60
	secs := total % 60

	colon := ""
	if n.pattern.hasColon() {
		colon = ":"
	}

	var sb strings.Builder
	sb.WriteByte(sign)
	fmt.Fprintf(&sb, "%02d", hours)
	if n.pattern.hasMinutes() {
		sb.WriteString(colon)
		fmt.Fprintf(&sb, "%02d", mins)
	}
	if n.pattern.hasSeconds() && (secs != 0 || n.pattern.secondsRequired()) {
		sb.WriteString(colon)
		fmt.Fprintf(&sb, "%02d", secs)
	}

	ctx.buf.WriteString(sb.String())
	return nil
}

func (n *offsetNode) parse(ctx *parseContext, text string, pos int) int {
	start := pos

	if n.noOffsetText != "" {
		if end := ctx.matchText(text, pos, n.noOffsetText); end >= 0 {
			if err := ctx.bindings.set(OffsetSeconds, 0); err != nil {
				return ^start
			}
			return end
		}
	}

	if pos >= len(text) {
		return ^start
	}

	sign := text[pos]
	if sign != '+' && sign != '-' {
		return ^start
	}
	pos++

	hours, end := parseFixedDigits(text, pos, 2)
	if end < 0 {
		return ^start
	}
	pos = end

	var mins, secs int64
	if n.pattern.hasMinutes() {
		if n.pattern.hasColon() {
			if pos >= len(text) || text[pos] != ':' {
				if !n.pattern.hasSeconds() {
					return ^start
				}
			} else {
				pos++
			}
		}

		mins, end = parseFixedDigits(text, pos, 2)
		if end < 0 {
			return ^start
		}
		pos = end
	}

	if n.pattern.hasSeconds() {
		hasMore := pos < len(text) && (isDigitByte(text[pos]) || (n.pattern.hasColon() && text[pos] == ':'))
		if n.pattern.secondsRequired() || hasMore {
			if n.pattern.hasColon() {
				if pos >= len(text) || text[pos] != ':' {
					return ^start
				}
				pos++
			}

			secs, end = parseFixedDigits(text, pos, 2)
			if end < 0 {
				return ^start
			}
			pos = end
		}
	}

	total := hours*3600 + mins*60 + secs
	if sign == '-' {
		total = -total
	}

	if err := ctx.bindings.set(OffsetSeconds, total); err != nil {
		return ^start
	}
	return pos
}

func (n *offsetNode) describe(sb *strings.Builder) {
	fmt.Fprintf(sb, "Offset(%s,'%s')", n.pattern, n.noOffsetText)
}

func parseFixedDigits(text string, pos, width int) (int64, int) {
	if pos+width > len(text) {
		return 0, -1
	}
	v, ok := parseDigits(text[pos:pos+width], StandardDecimalStyle)
	if !ok {
		return 0, -1
	}
	return v, pos + width
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

// zoneIDNode prints/parses an IANA zone identifier, e.g. "America/New_York". Localized
// zone-name text is explicitly out of scope; this node only ever handles the identifier
// itself.
type zoneIDNode struct{}

func (n *zoneIDNode) print(ctx *printContext) error {
	value, ok := ctx.temporal.Query(QueryZoneID)
	if !ok {
		return fmt.Errorf("unable to extract zone id")
	}

	id, ok := value.(string)
	if !ok || id == "" {
		return fmt.Errorf("unable to extract zone id")
	}

	ctx.buf.WriteString(id)
	return nil
}

func (n *zoneIDNode) parse(ctx *parseContext, text string, pos int) int {
	start := pos

	end := pos
	for end < len(text) && isZoneIDChar(text[end]) {
		end++
	}

	if end == pos {
		return ^start
	}

	id := text[pos:end]
	if _, err := LoadZone(id); err != nil {
		return ^start
	}

	if err := ctx.bindings.setZoneID(id); err != nil {
		return ^start
	}
	return end
}

func (n *zoneIDNode) describe(sb *strings.Builder) {
	sb.WriteString("ZoneId()")
}

func isZoneIDChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '/', b == '_', b == '-', b == '+':
		return true
	}
	return false
}

// instantNode prints/parses a complete ISO-8601 instant (date, time, and a mandatory
// offset/'Z'), the one node that spans all three of the date, time, and offset groups at
// once. It is built from the same leaf machinery as ISOInstant (see iso.go); the node
// itself simply delegates to that composite so appendInstant() behaves identically
// whether used standalone or embedded in a larger pattern.
type instantNode struct {
	inner node
}

func (n *instantNode) print(ctx *printContext) error {
	return n.inner.print(ctx)
}

func (n *instantNode) parse(ctx *parseContext, text string, pos int) int {
	return n.inner.parse(ctx, text, pos)
}

func (n *instantNode) describe(sb *strings.Builder) {
	sb.WriteString("Instant()")
}
