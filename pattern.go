package chrono

import "unicode"

// compilePattern translates a yyyy-MM-dd-style letter pattern into a sequence of Builder
// calls appended to b. It returns the (possibly different, if the
// pattern opened an optional group) current builder, mirroring Builder.OptionalStart's
// return-a-child-builder convention.
func compilePattern(b *Builder, pattern string) *Builder {
	cur := b
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		c := runes[i]

		switch {
		case c == '\'':
			text, next := readQuotedLiteral(runes, i)
			cur.AppendLiteral(text)
			i = next

		case c == '[':
			cur = cur.OptionalStart()
			i++

		case c == ']':
			cur = cur.OptionalEnd()
			i++

		case unicode.IsLetter(c):
			count := 1
			for i+count < len(runes) && runes[i+count] == c {
				count++
			}
			compileLetterRun(cur, c, count)
			i += count

		default:
			cur.AppendLiteral(string(c))
			i++
		}
	}

	return cur
}

// readQuotedLiteral consumes a '...'-delimited literal starting at pattern[start] (which
// must be the opening quote), handling doubled '' as an escaped single apostrophe. It
// panics with an InvalidArgumentError if the quote is never closed.
func readQuotedLiteral(pattern []rune, start int) (text string, next int) {
	var sb []rune
	i := start + 1
	for i < len(pattern) {
		if pattern[i] == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				sb = append(sb, '\'')
				i += 2
				continue
			}
			return string(sb), i + 1
		}
		sb = append(sb, pattern[i])
		i++
	}
	panic(invalidArgumentf("pattern ends with an unterminated literal: unmatched quote"))
}

func compileLetterRun(b *Builder, letter rune, count int) {
	switch letter {
	case 'y', 'u':
		field := Year
		if letter == 'y' {
			field = YearOfEra
		}

		switch {
		case count == 1:
			b.AppendValueWidth(field, 1, 15, SignNormal)
		case count == 2:
			b.AppendValueReduced(field, 2, 2, 2000)
		case count >= 3 && count <= 5:
			b.AppendValueWidth(field, count, 15, SignExceedsPad)
		default:
			panic(invalidArgumentf("too many pattern letters: %c", letter))
		}

	case 'M', 'L':
		switch count {
		case 1:
			b.AppendValueWidth(MonthOfYear, 1, 2, SignNormal)
		case 2:
			b.AppendValueFixed(MonthOfYear, 2)
		default:
			panic(invalidArgumentf("text forms of %c are not implemented", letter))
		}

	case 'd':
		appendDayLike(b, DayOfMonth, count, 2)

	case 'D':
		appendDayLike(b, DayOfYear, count, 3)

	case 'F':
		appendDayLike(b, AlignedDayOfWeekInMonth, count, 1)

	case 'q':
		appendDayLike(b, QuarterOfYear, count, 1)

	case 'H':
		appendDayLike(b, HourOfDay, count, 2)
	case 'k':
		appendDayLike(b, ClockHourOfDay, count, 2)
	case 'K':
		appendDayLike(b, HourOfAmPm, count, 2)
	case 'h':
		appendDayLike(b, ClockHourOfAmPm, count, 2)

	case 'm':
		appendDayLike(b, MinuteOfHour, count, 2)
	case 's':
		appendDayLike(b, SecondOfMinute, count, 2)

	case 'S':
		b.AppendFraction(NanoOfSecond, count, count, false)

	case 'A':
		appendDayLike(b, MilliOfDay, count, 1)
	case 'n':
		appendDayLike(b, NanoOfSecond, count, 1)
	case 'N':
		appendDayLike(b, NanoOfDay, count, 1)

	case 'V':
		if count != 2 {
			panic(invalidArgumentf("pattern letter count must be 2: %c", letter))
		}
		b.AppendZoneID()

	case 'Z':
		switch {
		case count >= 1 && count <= 3:
			b.AppendOffset(OffsetPatternHoursMinutes, "+0000")
		case count == 4:
			panic(invalidArgumentf("localized zone offset text is not implemented: %c", letter))
		case count == 5:
			b.AppendOffset(OffsetPatternHoursMinutesSecondsColon, "Z")
		default:
			panic(invalidArgumentf("too many pattern letters: %c", letter))
		}

	case 'X', 'x':
		noOffsetText := ""
		if letter == 'X' {
			noOffsetText = "Z"
		} else {
			noOffsetText = "+00:00"
		}

		switch count {
		case 1:
			b.AppendOffset(OffsetPatternHours, noOffsetText)
		case 2:
			b.AppendOffset(OffsetPatternHoursMinutes, noOffsetText)
		case 3:
			b.AppendOffset(OffsetPatternHoursMinutesColon, noOffsetText)
		case 4:
			b.AppendOffset(OffsetPatternHoursMinutesSecondsReq, noOffsetText)
		case 5:
			b.AppendOffset(OffsetPatternHoursMinutesSecondsReqColon, noOffsetText)
		default:
			panic(invalidArgumentf("too many pattern letters: %c", letter))
		}

	case 'p':
		b.PadNext(count)

	default:
		panic(invalidArgumentf("unknown pattern letter: %c", letter))
	}
}

// appendDayLike handles the common "1 or 2 repeats -> Value(field, count, max)" shape
// shared by most numeric pattern letters, capping at a sensible per-field maximum.
func appendDayLike(b *Builder, field Field, count, max int) {
	if count < 1 || count > max {
		panic(invalidArgumentf("too many pattern letters for field %s", field))
	}
	if count == max {
		b.AppendValueFixed(field, count)
		return
	}
	b.AppendValueWidth(field, count, max, SignNormal)
}
