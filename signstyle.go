package chrono

// SignStyle controls how the sign of a numeric field is printed and parsed by a Value node.
type SignStyle int

const (
	// SignNever never prints a sign; printing a negative value is an error.
	SignNever SignStyle = iota
	// SignNormal prints a '-' sign only for negative values.
	SignNormal
	// SignAlways always prints either a '+' or '-' sign.
	SignAlways
	// SignExceedsPad prints a sign only when the magnitude needs more digits than the declared minWidth.
	SignExceedsPad
	// signNotNegative is used internally for fixed-width fields (e.g. reduced values) that can never be negative.
	signNotNegative
)

func (s SignStyle) String() string {
	switch s {
	case SignNever:
		return "SignStyle.NEVER"
	case SignNormal:
		return "SignStyle.NORMAL"
	case SignAlways:
		return "SignStyle.ALWAYS"
	case SignExceedsPad:
		return "SignStyle.EXCEEDS_PAD"
	case signNotNegative:
		return "SignStyle.NOT_NEGATIVE"
	default:
		return "SignStyle.UNKNOWN"
	}
}
