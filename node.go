package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// node is the single, closed, tagged-variant interface every printer/parser fragment
// implements - a sum type so the tree-walking dispatch in Formatter stays exhaustive and
// uniform for both directions (print appends to a buffer, parse advances a cursor).
//
// parse follows the bitwise-complement convention: a
// successful parse returns the new, non-negative position; a failed parse returns the
// bitwise complement (^pos) of the position at which the failure was detected.
type node interface {
	print(ctx *printContext) error
	parse(ctx *parseContext, text string, pos int) int
	describe(sb *strings.Builder)
}

// literalNode emits/matches a fixed run of text.
type literalNode struct {
	text string
}

func (n *literalNode) print(ctx *printContext) error {
	ctx.buf.WriteString(n.text)
	return nil
}

func (n *literalNode) parse(ctx *parseContext, text string, pos int) int {
	return ctx.matchText(text, pos, n.text)
}

func (n *literalNode) describe(sb *strings.Builder) {
	sb.WriteByte('\'')
	sb.WriteString(strings.ReplaceAll(n.text, "'", "''"))
	sb.WriteByte('\'')
}

// valueNode prints/parses a single numeric field within [minWidth, maxWidth] digits.
// When subsequentWidth is non-zero, this node is the "active" variable-width node of an
// adjacent-value group (see builder.go and the parser's subsequentWidthParse), and that
// value is the sum of the fixed digit widths of the run of fixed-width Value nodes that
// immediately follow it.
type valueNode struct {
	field          Field
	minWidth       int
	maxWidth       int
	signStyle      SignStyle
	subsequentWidth int
}

func (n *valueNode) fixedWidth() bool {
	return n.minWidth == n.maxWidth
}

func (n *valueNode) print(ctx *printContext) error {
	value, err := ctx.temporal.GetLong(n.field)
	if err != nil {
		return err
	}
	return n.printValue(ctx, value)
}

func (n *valueNode) printValue(ctx *printContext, value int64) error {
	str := strconv.FormatInt(absInt64(value), 10)
	if len(str) > n.maxWidth {
		return fmt.Errorf("field %s cannot be printed as the value %d exceeds the maximum print width of %d", n.field, value, n.maxWidth)
	}

	negative := value < 0
	switch n.signStyle {
	case SignNever:
		if negative {
			return fmt.Errorf("field %s cannot be printed with sign style NEVER as value %d is negative", n.field, value)
		}
	case signNotNegative:
		if negative {
			return fmt.Errorf("field %s cannot be printed as the reduced value %d is negative", n.field, value)
		}
	case SignExceedsPad:
		if negative {
			return fmt.Errorf("field %s cannot be printed with sign style EXCEEDS_PAD as value %d is negative", n.field, value)
		}
		if len(str) > n.minWidth {
			ctx.buf.WriteByte('+')
		}
	case SignAlways:
		if negative {
			ctx.buf.WriteByte('-')
		} else {
			ctx.buf.WriteByte('+')
		}
	case SignNormal:
		if negative {
			ctx.buf.WriteByte('-')
		}
	}

	for i := len(str); i < n.minWidth; i++ {
		ctx.buf.WriteByte('0')
	}
	ctx.buf.WriteString(str)
	return nil
}

func (n *valueNode) parse(ctx *parseContext, text string, pos int) int {
	if n.subsequentWidth > 0 {
		return n.subsequentWidthParse(ctx, text, pos, n.subsequentWidth)
	}
	return n.parseSingle(ctx, text, pos)
}

// parseSingle parses this node in isolation - i.e. not as the head of an adjacent-value
// run. It still honours strict/lenient digit-count rules and the node's sign style.
func (n *valueNode) parseSingle(ctx *parseContext, text string, pos int) int {
	start := pos
	neg := false

	if pos < len(text) {
		switch text[pos] {
		case '-':
			if n.signStyle == SignNever || n.signStyle == signNotNegative {
				return ^pos
			}
			neg = true
			pos++
		case '+':
			if n.signStyle == SignNever || n.signStyle == SignNormal {
				return ^pos
			}
			pos++
		}
	}

	digitsStart := pos
	maxDigits := n.maxWidth
	if remaining := len(text) - pos; remaining < maxDigits {
		maxDigits = remaining
	}

	count := countLeadingDigits(text[pos:pos+maxDigits], ctx.decimal)
	if ctx.strict {
		if count < n.minWidth {
			return ^start
		}
	} else if count == 0 {
		return ^start
	}

	pos += count
	value, ok := parseDigits(text[digitsStart:pos], ctx.decimal)
	if !ok {
		return ^start
	}

	if neg {
		value = -value
	}

	if err := ctx.bindings.set(n.field, value); err != nil {
		return ^start
	}
	return pos
}

// subsequentWidthParse implements the adjacent-value algorithm: this node is
// V0, the variable-width head of a run whose trailing fixedWidth fixed-width digits have
// already been accounted for by the builder at append time.
func (n *valueNode) subsequentWidthParse(ctx *parseContext, text string, pos int, fixedWidth int) int {
	start := pos

	maxDigits := n.maxWidth + fixedWidth
	if remaining := len(text) - pos; remaining < maxDigits {
		maxDigits = remaining
	}

	runLen := countLeadingDigits(text[pos:pos+maxDigits], ctx.decimal)
	if runLen < n.minWidth+fixedWidth {
		return ^start
	}

	headLen := runLen - fixedWidth
	value, ok := parseDigits(text[pos:pos+headLen], ctx.decimal)
	if !ok {
		return ^start
	}

	if err := ctx.bindings.set(n.field, value); err != nil {
		return ^start
	}

	return pos + headLen
}

func (n *valueNode) describe(sb *strings.Builder) {
	sb.WriteString("Value(")
	sb.WriteString(n.field.Name())
	if n.minWidth != 1 || n.maxWidth != 15 || n.signStyle != SignNormal {
		fmt.Fprintf(sb, ",%d,%d,%s", n.minWidth, n.maxWidth, n.signStyle)
	}
	sb.WriteByte(')')
}

// reducedValueNode prints/parses a field as the fixed low-order `width` digits of
// (value - baseValue), anchored to a base cycle so parsing yields a value in
// [baseValue, baseValue+10^width).
type reducedValueNode struct {
	field     Field
	width     int
	maxWidth  int
	baseValue int64
}

func (n *reducedValueNode) print(ctx *printContext) error {
	value, err := ctx.temporal.GetLong(n.field)
	if err != nil {
		return err
	}

	reduced := (value - n.baseValue) % pow10(n.width)
	if reduced < 0 {
		reduced += pow10(n.width)
	}

	str := strconv.FormatInt(reduced, 10)
	for i := len(str); i < n.width; i++ {
		ctx.buf.WriteByte('0')
	}
	ctx.buf.WriteString(str)
	return nil
}

func (n *reducedValueNode) parse(ctx *parseContext, text string, pos int) int {
	start := pos
	if pos+n.width > len(text) {
		return ^start
	}

	digits := text[pos : pos+n.width]
	d, ok := parseDigits(digits, ctx.decimal)
	if !ok {
		return ^start
	}
	pos += n.width

	base := n.baseValue
	cycle := pow10(n.width)
	floor := base - floorMod(base, cycle)
	value := floor + d
	if value < base {
		value += cycle
	}

	if err := ctx.bindings.set(n.field, value); err != nil {
		return ^start
	}
	return pos
}

func (n *reducedValueNode) describe(sb *strings.Builder) {
	fmt.Fprintf(sb, "ReducedValue(%s,%d,%d,%d)", n.field.Name(), n.width, n.maxWidth, n.baseValue)
}

// fractionNode prints/parses the fractional part of a fixed-range field, scaled into
// [0,1), with an optional leading decimal point.
type fractionNode struct {
	field           Field
	minWidth        int
	maxWidth        int
	withDecimalPoint bool
}

func (n *fractionNode) print(ctx *printContext) error {
	value, err := ctx.temporal.GetLong(n.field)
	if err != nil {
		return err
	}

	_, max := n.field.Range()
	scaled := scaleToFraction(value, max+1, n.maxWidth)

	str := fmt.Sprintf("%0*d", n.maxWidth, scaled)
	for len(str) > n.minWidth && str[len(str)-1] == '0' {
		str = str[:len(str)-1]
	}

	if len(str) == 0 {
		if n.minWidth == 0 {
			return nil
		}
		str = strings.Repeat("0", n.minWidth)
	}

	if n.withDecimalPoint {
		ctx.buf.WriteRune(ctx.decimal.DecimalPoint)
	}
	ctx.buf.WriteString(str)
	return nil
}

func (n *fractionNode) parse(ctx *parseContext, text string, pos int) int {
	start := pos

	if n.withDecimalPoint {
		if pos >= len(text) || rune(text[pos]) != ctx.decimal.DecimalPoint {
			if n.minWidth == 0 {
				return pos
			}
			return ^start
		}
		pos++
	}

	maxDigits := n.maxWidth
	if remaining := len(text) - pos; remaining < maxDigits {
		maxDigits = remaining
	}

	count := countLeadingDigits(text[pos:pos+maxDigits], ctx.decimal)
	effectiveMin := n.minWidth
	if !ctx.strict && count > 0 {
		effectiveMin = minInt(effectiveMin, count)
	}

	if count < effectiveMin {
		return ^start
	}

	digits := text[pos : pos+count]
	raw, ok := parseDigits(digits, ctx.decimal)
	if !ok {
		return ^start
	}

	_, max := n.field.Range()
	value := scaleFromFraction(raw, count, max+1)

	if err := ctx.bindings.set(n.field, value); err != nil {
		return ^start
	}
	return pos + count
}

func (n *fractionNode) describe(sb *strings.Builder) {
	fmt.Fprintf(sb, "Fraction(%s,%d,%d)", n.field.Name(), n.minWidth, n.maxWidth)
}

// padNode left-pads its single inner leaf's printed form to padWidth using padChar. It
// never truncates: an inner render that already exceeds padWidth is emitted as-is.
type padNode struct {
	inner   node
	width   int
	padChar rune
}

func (n *padNode) print(ctx *printContext) error {
	scratch := newPrintContext(ctx.temporal, ctx.chronology, ctx.zone, ctx.decimal)
	if err := n.inner.print(scratch); err != nil {
		return err
	}

	rendered := scratch.buf.String()
	if pad := n.width - len([]rune(rendered)); pad > 0 {
		ctx.buf.WriteString(strings.Repeat(string(n.padChar), pad))
	}
	ctx.buf.WriteString(rendered)
	return nil
}

func (n *padNode) parse(ctx *parseContext, text string, pos int) int {
	start := pos
	maxEnd := pos + n.width
	if maxEnd > len(text) {
		maxEnd = len(text)
	}

	// Consume any padChar runs first, then hand the remainder of the padded window to
	// the inner node; if the inner node doesn't consume exactly to maxEnd in strict
	// mode, that's fine - pad only guarantees a minimum width on print, parsing is
	// lenient about the inner node's own width rules.
	p := pos
	for p < maxEnd && rune(text[p]) == n.padChar {
		p++
	}

	result := n.inner.parse(ctx, text, p)
	if result < 0 {
		// Retry from the original position in case the inner node itself wanted to
		// consume the pad character (e.g. a '-' sign colliding with a space pad).
		if alt := n.inner.parse(ctx, text, pos); alt >= 0 {
			return alt
		}
		return ^start
	}
	return result
}

func (n *padNode) describe(sb *strings.Builder) {
	sb.WriteString("Pad(")
	n.inner.describe(sb)
	fmt.Fprintf(sb, ",%d", n.width)
	if n.padChar != ' ' {
		fmt.Fprintf(sb, ",'%c'", n.padChar)
	}
	sb.WriteByte(')')
}

// compositeNode is an ordered sequence of nodes, evaluated left to right. A parse failure
// partway through the sequence fails the whole composite at that inner position.
type compositeNode struct {
	children []node
}

func (n *compositeNode) print(ctx *printContext) error {
	for _, child := range n.children {
		if err := child.print(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (n *compositeNode) parse(ctx *parseContext, text string, pos int) int {
	for _, child := range n.children {
		pos = child.parse(ctx, text, pos)
		if pos < 0 {
			return pos
		}
	}
	return pos
}

func (n *compositeNode) describe(sb *strings.Builder) {
	for _, child := range n.children {
		child.describe(sb)
	}
}

// optionalNode wraps a sequence whose failure is recoverable: print emits nothing if any
// field its inner sequence reads is absent from the temporal, and parse snapshots the
// binding set before attempting the inner node, restoring it and reporting success at
// the entry position if the inner node fails.
type optionalNode struct {
	inner node
}

func (n *optionalNode) print(ctx *printContext) error {
	scratch := newPrintContext(ctx.temporal, ctx.chronology, ctx.zone, ctx.decimal)
	if err := n.inner.print(scratch); err != nil {
		return nil // Optional: a missing/unsupported field inside means "emit nothing".
	}
	ctx.buf.WriteString(scratch.buf.String())
	return nil
}

func (n *optionalNode) parse(ctx *parseContext, text string, pos int) int {
	snap := ctx.bindings.snapshot()

	result := n.inner.parse(ctx, text, pos)
	if result < 0 {
		ctx.bindings.restore(snap)
		return pos
	}
	return result
}

func (n *optionalNode) describe(sb *strings.Builder) {
	sb.WriteByte('[')
	n.inner.describe(sb)
	sb.WriteByte(']')
}

// caseSensitivityNode toggles the parse context's case-sensitivity flag for the remainder
// of the enclosing sequence. It is a no-op on print.
type caseSensitivityNode struct {
	sensitive bool
}

func (n *caseSensitivityNode) print(ctx *printContext) error { return nil }

func (n *caseSensitivityNode) parse(ctx *parseContext, text string, pos int) int {
	ctx.caseSensitive = n.sensitive
	return pos
}

func (n *caseSensitivityNode) describe(sb *strings.Builder) {
	fmt.Fprintf(sb, "ParseCaseSensitive(%t)", n.sensitive)
}

// strictnessNode toggles the parse context's strict flag for the remainder of the
// enclosing sequence. It is a no-op on print.
type strictnessNode struct {
	strict bool
}

func (n *strictnessNode) print(ctx *printContext) error { return nil }

func (n *strictnessNode) parse(ctx *parseContext, text string, pos int) int {
	ctx.strict = n.strict
	return pos
}

func (n *strictnessNode) describe(sb *strings.Builder) {
	fmt.Fprintf(sb, "ParseStrict(%t)", n.strict)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func pow10(n int) int64 {
	out := int64(1)
	for i := 0; i < n; i++ {
		out *= 10
	}
	return out
}

func floorMod(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

func countLeadingDigits(s string, decimal DecimalStyle) int {
	count := 0
	for _, c := range s {
		if _, ok := decimal.charToDigit(c); !ok {
			break
		}
		count++
	}
	return count
}

func parseDigits(s string, decimal DecimalStyle) (int64, bool) {
	if len(s) == 0 {
		return 0, false
	}

	var out int64
	for _, c := range s {
		d, ok := decimal.charToDigit(c)
		if !ok {
			return 0, false
		}
		out = out*10 + int64(d)
	}
	return out, true
}

// scaleToFraction converts value (in [0,modulus)) into an maxWidth-digit fixed-point
// fraction of modulus, rounding to the nearest representable digit string.
func scaleToFraction(value, modulus int64, maxWidth int) int64 {
	scale := pow10(maxWidth)
	num := value*scale + modulus/2
	return num / modulus
}

// scaleFromFraction is the inverse of scaleToFraction: it reconstructs a field value from
// digitCount parsed digits representing a fraction of modulus.
func scaleFromFraction(digits int64, digitCount int, modulus int64) int64 {
	scale := pow10(digitCount)
	num := digits*modulus + scale/2
	return num / scale
}
