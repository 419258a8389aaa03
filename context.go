package chrono

import "strings"

// QueryKey identifies a side-channel capability that a TemporalAccessor may answer via
// Query, for data that doesn't fit the field/value model - principally zone identifiers.
type QueryKey int

const (
	// QueryZoneID asks a TemporalAccessor for its zone identifier, e.g. "Europe/Paris".
	QueryZoneID QueryKey = iota
)

// TemporalAccessor is the read-only view a printer needs of the value it is formatting.
// Concrete temporal types (LocalDate, OffsetDateTime, ...) implement this to be printable.
type TemporalAccessor interface {
	// IsSupported reports whether f can be obtained from this value at all.
	IsSupported(f Field) bool
	// GetLong returns the value of f. Callers must check IsSupported first;
	// behavior is undefined (but should return an error) for unsupported fields.
	GetLong(f Field) (int64, error)
	// Query answers a side-channel capability lookup; ok is false if unsupported.
	Query(key QueryKey) (value any, ok bool)
}

// DecimalStyle supplies the characters used to print and recognize the decimal point and
// digits, so that the engine never hard-codes locale-sensitive glyphs. Non-goals exclude a
// locale database, but the seam for one is this struct.
type DecimalStyle struct {
	DecimalPoint rune
	Zero         rune
}

// StandardDecimalStyle is the ASCII '.'/'0'-9' style used unless a caller overrides it.
var StandardDecimalStyle = DecimalStyle{DecimalPoint: '.', Zero: '0'}

func (d DecimalStyle) digitToChar(digit int) rune {
	return d.Zero + rune(digit)
}

func (d DecimalStyle) charToDigit(c rune) (int, bool) {
	v := int(c - d.Zero)
	if v < 0 || v > 9 {
		return 0, false
	}
	return v, true
}

// printContext carries everything a node needs to render itself: the input temporal,
// any chronology/zone override, the decimal symbol set, and the accumulating output buffer.
type printContext struct {
	temporal  TemporalAccessor
	chronology Chronology
	zone      *string
	decimal   DecimalStyle
	buf       strings.Builder
}

func newPrintContext(temporal TemporalAccessor, chronology Chronology, zone *string, decimal DecimalStyle) *printContext {
	return &printContext{temporal: temporal, chronology: chronology, zone: zone, decimal: decimal}
}

// parseContext carries the cursor position (implicitly, via the pos argument threaded through
// node.parse), the case-sensitivity and strictness flags, any chronology override, and the
// binding set under construction. It also owns the snapshot/restore machinery optional groups
// rely on to make their interior speculative.
type parseContext struct {
	caseSensitive bool
	strict        bool
	chronology    Chronology
	decimal       DecimalStyle
	bindings      *Bindings
}

func newParseContext(chronology Chronology, decimal DecimalStyle) *parseContext {
	return &parseContext{
		caseSensitive: true,
		strict:        true,
		chronology:    chronology,
		decimal:       decimal,
		bindings:      newBindings(),
	}
}

// matchText compares the literal text t against the runes of the input starting at pos,
// honoring the context's case-sensitivity flag. It returns the new position, or a negative
// encoded error position on mismatch.
func (c *parseContext) matchText(text string, pos int, t string) int {
	if pos+len(t) > len(text) {
		return ^pos
	}

	candidate := text[pos : pos+len(t)]
	if c.caseSensitive {
		if candidate != t {
			return ^pos
		}
		return pos + len(t)
	}

	if !strings.EqualFold(candidate, t) {
		return ^pos
	}
	return pos + len(t)
}
