package chrono

import "strings"

// Builder is the mutable, single-threaded scratch object used to assemble a printer/parser
// tree one fragment at a time. It must not be shared across goroutines and is consumed by
// exactly one call to ToFormatter; the resulting Formatter is immutable and freely
// shareable thereafter.
type Builder struct {
	parent *Builder

	children []node

	// activeValue/activeFixedWidth track the most recently appended variable-width Value
	// node and the running total of fixed digit widths appended immediately after it, for
	// the subsequent-width patching used when concatenating variable- and fixed-width numerics.
	activeValue      *valueNode
	activeFixedWidth int

	// padWidth/padChar hold a one-shot pad request from padNext, consumed by the next leaf
	// node appended.
	padWidth int
	padChar  rune
	hasPad   bool

	optionalDepth int
}

// NewBuilder returns an empty Builder ready to accept append calls.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) appendNode(n node) *Builder {
	if b.hasPad {
		n = &padNode{inner: n, width: b.padWidth, padChar: b.padChar}
		b.hasPad = false
	}

	if v, ok := n.(*valueNode); ok {
		b.patchSubsequentWidth(v)
	} else {
		b.closeActiveValue()
	}

	b.children = append(b.children, n)
	return b
}

// patchSubsequentWidth implements the adjacent-value bookkeeping: a fixed-width
// Value immediately following a variable-width Value joins its group (extending the
// running fixed-width total); any other arrangement starts a fresh potential group, or
// closes the current one.
func (b *Builder) patchSubsequentWidth(v *valueNode) {
	switch {
	case b.activeValue != nil && v.fixedWidth():
		b.activeFixedWidth += v.maxWidth
		b.activeValue.subsequentWidth = b.activeFixedWidth

	case !v.fixedWidth():
		b.activeValue = v
		b.activeFixedWidth = 0
		v.subsequentWidth = 0

	default:
		b.closeActiveValue()
	}
}

func (b *Builder) closeActiveValue() {
	b.activeValue = nil
	b.activeFixedWidth = 0
}

// AppendLiteral appends a literal character or string verbatim. An empty string is a no-op.
func (b *Builder) AppendLiteral(text string) *Builder {
	if text == "" {
		return b
	}
	return b.appendNode(&literalNode{text: text})
}

// AppendValue appends a field using its natural (variable) width, sign style NORMAL.
func (b *Builder) AppendValue(field Field) *Builder {
	return b.AppendValueWidth(field, 1, 15, SignNormal)
}

// AppendValueFixed appends field with a fixed print/parse width, sign style NOT_NEGATIVE -
// the fixed-width form of appendValue(field, width).
func (b *Builder) AppendValueFixed(field Field, width int) *Builder {
	return b.AppendValueWidth(field, width, width, signNotNegative)
}

// AppendValueWidth appends field with a fixed print/parse width when min==max (using sign
// style NOT_NEGATIVE internally), or a variable width in [min,max] otherwise.
func (b *Builder) AppendValueWidth(field Field, min, max int, signStyle SignStyle) *Builder {
	if min < 1 || min > 15 || max < 1 || max > 15 || min > max {
		panic(invalidArgumentf("invalid width range %d-%d for field %s", min, max, field))
	}

	style := signStyle
	if min == max {
		style = signNotNegative
	}

	return b.appendNode(&valueNode{field: field, minWidth: min, maxWidth: max, signStyle: style})
}

// AppendValueReduced appends field printed/parsed as width fixed low-order digits,
// interpreted modulo 10^width anchored at baseValue.
func (b *Builder) AppendValueReduced(field Field, width, maxWidth int, baseValue int64) *Builder {
	if width < 1 || width > 10 || maxWidth < width || maxWidth > 10 {
		panic(invalidArgumentf("invalid reduced-value widths %d/%d for field %s", width, maxWidth, field))
	}
	return b.appendNode(&reducedValueNode{field: field, width: width, maxWidth: maxWidth, baseValue: baseValue})
}

// AppendFraction appends the fractional representation of field, which must have a fixed
// range beginning at 0. min and max must be in [0,9].
func (b *Builder) AppendFraction(field Field, min, max int, withDecimalPoint bool) *Builder {
	if min < 0 || min > 9 || max < 0 || max > 9 || min > max {
		panic(invalidArgumentf("invalid fraction widths %d/%d for field %s", min, max, field))
	}
	if !field.fixedRange {
		panic(invalidArgumentf("field %s does not have a fixed range required for appendFraction", field))
	}
	return b.appendNode(&fractionNode{field: field, minWidth: min, maxWidth: max, withDecimalPoint: withDecimalPoint})
}

// AppendOffset appends a UTC offset using the given pattern, falling back to noOffsetText
// when no offset is present (print) or recognized verbatim (parse).
func (b *Builder) AppendOffset(pattern OffsetPattern, noOffsetText string) *Builder {
	return b.appendNode(&offsetNode{pattern: pattern, noOffsetText: noOffsetText})
}

// AppendOffsetID is shorthand for AppendOffset(OffsetPatternHoursMinutesSecondsColon, "Z").
func (b *Builder) AppendOffsetID() *Builder {
	return b.AppendOffset(OffsetPatternHoursMinutesSecondsColon, "Z")
}

// AppendZoneID appends an IANA zone identifier node.
func (b *Builder) AppendZoneID() *Builder {
	return b.appendNode(&zoneIDNode{})
}

// AppendInstant appends a complete ISO-8601 instant (date, time, and offset/'Z').
func (b *Builder) AppendInstant() *Builder {
	return b.appendNode(&instantNode{inner: isoInstantTree()})
}

// PadNext sets a one-shot pad that wraps the very next leaf node appended, so that its
// printed width is at least width, left-padded with padChar (default ' ').
func (b *Builder) PadNext(width int, padChar ...rune) *Builder {
	if width < 1 {
		panic(invalidArgumentf("invalid pad width %d", width))
	}

	c := ' '
	if len(padChar) > 0 {
		c = padChar[0]
	}

	b.hasPad = true
	b.padWidth = width
	b.padChar = c
	return b
}

// OptionalStart begins a new optional group; it must be matched by a later OptionalEnd
// (or the implicit close performed by ToFormatter).
func (b *Builder) OptionalStart() *Builder {
	b.closeActiveValue()

	child := &Builder{parent: b}
	return child
}

// OptionalEnd closes the most recently opened optional group. Calling OptionalEnd without
// a matching OptionalStart is a build-time IllegalStateError.
func (b *Builder) OptionalEnd() *Builder {
	if b.parent == nil {
		panic(illegalStatef("cannot call OptionalEnd() without a matching OptionalStart()"))
	}

	parent := b.parent
	parent.closeActiveValue()
	return parent.appendNode(&optionalNode{inner: b.composite()})
}

// ParseCaseSensitive appends a context modifier making subsequent literal/offset matching
// case-sensitive (the default).
func (b *Builder) ParseCaseSensitive() *Builder {
	return b.appendNode(&caseSensitivityNode{sensitive: true})
}

// ParseCaseInsensitive appends a context modifier making subsequent literal/offset
// matching case-insensitive.
func (b *Builder) ParseCaseInsensitive() *Builder {
	return b.appendNode(&caseSensitivityNode{sensitive: false})
}

// ParseStrict appends a context modifier requiring fixed-width numerics to consume
// exactly their declared width (the default).
func (b *Builder) ParseStrict() *Builder {
	return b.appendNode(&strictnessNode{strict: true})
}

// ParseLenient appends a context modifier allowing fixed-width numerics to consume any
// count within their declared range.
func (b *Builder) ParseLenient() *Builder {
	return b.appendNode(&strictnessNode{strict: false})
}

// Append embeds another formatter's tree as a single composite child.
func (b *Builder) Append(f *Formatter) *Builder {
	b.closeActiveValue()
	return b.appendNode(f.root)
}

// AppendPattern compiles pattern using the pattern compiler (see pattern.go) and appends
// the resulting sequence of builder calls in place.
func (b *Builder) AppendPattern(pattern string) *Builder {
	return compilePattern(b, pattern)
}

func (b *Builder) composite() node {
	return &compositeNode{children: b.children}
}

// ToFormatter closes any still-open optional groups implicitly and returns the immutable
// Formatter for the assembled tree, resolved against ISOResolver and ResolveSmart unless
// overridden via WithResolver/WithResolverStyle on the result.
func (b *Builder) ToFormatter() *Formatter {
	root := b
	for root.parent != nil {
		root = root.OptionalEnd()
	}

	return &Formatter{
		root:     root.composite(),
		resolver: ISOResolver,
		style:    ResolveSmart,
		decimal:  StandardDecimalStyle,
	}
}

// String returns the pretty-printed form of the tree built so far. Outer
// composite brackets are not present because a Builder's root is never itself wrapped.
func (b *Builder) String() string {
	var sb strings.Builder
	b.composite().describe(&sb)
	return sb.String()
}
