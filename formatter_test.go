package chrono_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fieldformat/chrono"
)

func TestFormatter_ISOLocalDate(t *testing.T) {
	date := chrono.LocalDateOf(2012, chrono.June, 30)

	out, err := chrono.ISOLocalDate.Format(date)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if out != "2012-06-30" {
		t.Fatalf("Format() = %s, want 2012-06-30", out)
	}

	resolved, err := chrono.ISOLocalDate.Parse(out)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !resolved.HasDate || chrono.LocalDate(resolved.Date) != date {
		t.Fatalf("Parse() = %+v, want date matching %s", resolved, date)
	}
}

func TestFormatter_Parse_RequiresFullConsumption(t *testing.T) {
	_, err := chrono.ISOLocalDate.Parse("2012-06-30 extra")
	if err == nil {
		t.Fatal("expected error")
	}

	var parseErr *chrono.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %T, want *chrono.ParseError", err)
	}
	if parseErr.ErrorIndex != len("2012-06-30") {
		t.Errorf("ErrorIndex = %d, want %d", parseErr.ErrorIndex, len("2012-06-30"))
	}
}

func TestFormatter_Parse_AbbreviatesLongText(t *testing.T) {
	text := strings.Repeat("x", 100)
	_, err := chrono.ISOLocalDate.Parse(text)
	if err == nil {
		t.Fatal("expected error")
	}

	var parseErr *chrono.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %T, want *chrono.ParseError", err)
	}
	if !strings.Contains(parseErr.Error(), "...") {
		t.Errorf("Error() = %s, want an abbreviated message", parseErr.Error())
	}
	if parseErr.Cause == nil {
		t.Error("Cause is nil, want the underlying parse failure")
	}
}

func TestLocalDate_GetLong_UnsupportedField(t *testing.T) {
	date := chrono.LocalDateOf(2012, chrono.June, 30)

	_, err := date.GetLong(chrono.HourOfDay)
	if err == nil {
		t.Fatal("expected error for a time field queried on a LocalDate")
	}

	var unsupported *chrono.UnsupportedTemporalTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %T, want *chrono.UnsupportedTemporalTypeError", err)
	}
	if unsupported.Field != chrono.HourOfDay {
		t.Errorf("Field = %s, want %s", unsupported.Field, chrono.HourOfDay)
	}
}

func TestFormatter_WithResolverStyle(t *testing.T) {
	f := chrono.NewPatternFormatter("uuuu-MM-dd")

	if _, err := f.WithResolverStyle(chrono.ResolveStrict).Parse("2012-13-01"); err == nil {
		t.Fatal("expected error under ResolveStrict for month 13")
	}

	if _, err := f.WithResolverStyle(chrono.ResolveLenient).Parse("2012-13-01"); err != nil {
		t.Fatalf("Parse() error under ResolveLenient: %v", err)
	}

	if _, err := f.WithResolverStyle(chrono.ResolveSmart).Parse("2012-13-01"); err == nil {
		t.Fatal("expected error under ResolveSmart for an out-of-range month")
	}
}

func TestFormatter_WithResolverStyle_SmartClampsDayOfMonth(t *testing.T) {
	f := chrono.NewPatternFormatter("uuuu-MM-dd")

	smart, err := f.WithResolverStyle(chrono.ResolveSmart).Parse("2012-04-31")
	if err != nil {
		t.Fatalf("Parse() error under ResolveSmart: %v", err)
	}
	if want := chrono.LocalDateOf(2012, chrono.April, 30); chrono.LocalDate(smart.Date) != want {
		t.Fatalf("ResolveSmart Date = %s, want %s (clamped to the last day of April)", chrono.LocalDate(smart.Date), want)
	}

	lenient, err := f.WithResolverStyle(chrono.ResolveLenient).Parse("2012-04-31")
	if err != nil {
		t.Fatalf("Parse() error under ResolveLenient: %v", err)
	}
	if want := chrono.LocalDateOf(2012, chrono.May, 1); chrono.LocalDate(lenient.Date) != want {
		t.Fatalf("ResolveLenient Date = %s, want %s (day overflows into May)", chrono.LocalDate(lenient.Date), want)
	}
}

func TestFormatter_WithResolverFields(t *testing.T) {
	f := chrono.NewPatternFormatter("uuuu-MM-dd").WithResolverFields(chrono.ResolverFields{
		chrono.Year: true,
	})

	resolved, err := f.Parse("2012-06-30")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if resolved.HasDate {
		t.Errorf("resolved.HasDate = true, want false when MonthOfYear/DayOfMonth are excluded")
	}
}

func TestISOOffsetDate_RoundTrip(t *testing.T) {
	date := chrono.OffsetDateOf(2012, chrono.June, 30, 1, 0)

	out, err := chrono.ISOOffsetDate.Format(date)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if out != "2012-06-30+01:00" {
		t.Fatalf("Format() = %s, want 2012-06-30+01:00", out)
	}

	resolved, err := chrono.ISOOffsetDate.Parse(out)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !resolved.HasDate || chrono.LocalDate(resolved.Date) != date.Local() {
		t.Fatalf("Parse() = %+v, want date matching %s", resolved, date.Local())
	}
	if !resolved.HasOffset || chrono.Offset(resolved.Offset) != date.Offset() {
		t.Fatalf("Parse() = %+v, want offset matching %s", resolved, date.Offset())
	}
}

func TestISOInstant_RoundTrip(t *testing.T) {
	dt := chrono.OffsetDateTimeOf(2012, chrono.June, 30, 10, 15, 30, 0, 1, 0).UTC()

	out, err := chrono.ISOInstant.Format(dt)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if out != "2012-06-30T09:15:30Z" {
		t.Fatalf("Format() = %s, want 2012-06-30T09:15:30Z", out)
	}

	resolved, err := chrono.ISOInstant.Parse(out)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !resolved.HasDate || !resolved.HasTime {
		t.Fatalf("Parse() = %+v, want a fully resolved date and time", resolved)
	}
}

func TestISOOffsetDateTime_RoundTrip(t *testing.T) {
	dt := chrono.OffsetDateTimeOf(2012, chrono.June, 30, 10, 15, 30, 0, 1, 0)

	out, err := chrono.ISOOffsetDateTime.Format(dt)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if out != "2012-06-30T10:15:30+01:00" {
		t.Fatalf("Format() = %s, want 2012-06-30T10:15:30+01:00", out)
	}
}
