package chrono

import (
	"fmt"
	"strings"
)

// ParsePosition is the mutable cursor exposed on the ParseUnresolved API: index is the
// starting offset on entry and, on success, the offset just past the consumed text; errorIndex
// is set to the offset at which parsing failed, or left at -1 if parsing succeeded.
type ParsePosition struct {
	Index      int
	ErrorIndex int
}

// NewParsePosition returns a ParsePosition starting at index 0 with no error recorded.
func NewParsePosition() *ParsePosition {
	return &ParsePosition{ErrorIndex: -1}
}

// Formatter is the immutable façade produced by Builder.ToFormatter or NewPatternFormatter.
// Once constructed it carries no mutable state of its own and the same value may be used
// concurrently by any number of Format/Parse calls; each call allocates its own context.
type Formatter struct {
	root     node
	resolver Resolver
	style    ResolverStyle
	fields   ResolverFields
	decimal  DecimalStyle
}

// NewPatternFormatter compiles pattern (see pattern.go for the supported letters) and
// returns the resulting Formatter directly, equivalent to
// NewBuilder().AppendPattern(pattern).ToFormatter().
func NewPatternFormatter(pattern string) *Formatter {
	return NewBuilder().AppendPattern(pattern).ToFormatter()
}

// WithResolverStyle returns a copy of f that resolves parsed bindings using style.
func (f *Formatter) WithResolverStyle(style ResolverStyle) *Formatter {
	cp := *f
	cp.style = style
	return &cp
}

// WithResolver returns a copy of f that resolves parsed bindings using r instead of the
// default ISOResolver.
func (f *Formatter) WithResolver(r Resolver) *Formatter {
	cp := *f
	cp.resolver = r
	return &cp
}

// WithResolverFields returns a copy of f that restricts resolution to the given set of
// fields; a nil set (the default) means every bound field participates.
func (f *Formatter) WithResolverFields(fields ResolverFields) *Formatter {
	cp := *f
	cp.fields = fields
	return &cp
}

// WithDecimalStyle returns a copy of f that prints/parses using the supplied decimal
// symbols instead of StandardDecimalStyle.
func (f *Formatter) WithDecimalStyle(d DecimalStyle) *Formatter {
	cp := *f
	cp.decimal = d
	return &cp
}

// Format renders temporal according to f's tree. It returns an error - never a panic -
// if temporal is missing a field the tree requires, or if a value overflows its declared
// sign style.
func (f *Formatter) Format(temporal TemporalAccessor) (string, error) {
	ctx := newPrintContext(temporal, nil, nil, f.decimal)
	if err := f.root.print(ctx); err != nil {
		return "", err
	}
	return ctx.buf.String(), nil
}

// ParseUnresolved runs f's tree against text starting at pos.Index, without invoking the
// resolver. On success it returns the raw Bindings and advances pos.Index past the
// consumed text. On failure it returns nil and sets pos.ErrorIndex to the position at
// which the failure was detected, leaving pos.Index untouched.
func (f *Formatter) ParseUnresolved(text string, pos *ParsePosition) *Bindings {
	ctx := newParseContext(nil, f.decimal)

	result := f.root.parse(ctx, text, pos.Index)
	if result < 0 {
		pos.ErrorIndex = ^result
		return nil
	}

	pos.Index = result
	return ctx.bindings
}

// Parse parses the entirety of text (requiring every character to be consumed) and
// resolves the result via f's resolver and resolver style. Failures - whether from the
// tree itself, leftover unparsed text, or the resolver - are wrapped in a *ParseError
// whose message includes the abbreviated input text.
func (f *Formatter) Parse(text string) (Resolved, error) {
	pos := NewParsePosition()

	bindings := f.ParseUnresolved(text, pos)
	if bindings == nil {
		return Resolved{}, newParseError(text, pos.ErrorIndex, fmt.Errorf("unparseable text found at index %d", pos.ErrorIndex))
	}

	if pos.Index != len(text) {
		err := fmt.Errorf("unparsed text found at index %d", pos.Index)
		return Resolved{}, newParseError(text, pos.Index, err)
	}

	resolved, err := f.resolver.Resolve(bindings, f.style, f.fields)
	if err != nil {
		return Resolved{}, newParseError(text, pos.Index, err)
	}
	return resolved, nil
}

// String returns the pretty-printed form of f's root node.
func (f *Formatter) String() string {
	var sb strings.Builder
	f.root.describe(&sb)
	return sb.String()
}
