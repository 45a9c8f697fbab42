package job

import "fmt"

// ErrorKind classifies job description failures.
type ErrorKind int

const (
	// KindMalformedComplex is a complex literal that does not parse.
	KindMalformedComplex ErrorKind = iota + 1
	// KindMalformedSize is a size literal not of the form WIDTHxHEIGHT.
	KindMalformedSize
	// KindUnknownFractal is a fractal type outside the supported set.
	KindUnknownFractal
	// KindUnknownScheme is a color scheme name outside the supported set.
	KindUnknownScheme
	// KindMissingField is a required key that is absent.
	KindMissingField
	// KindInvalidValue is a well-formed value outside its allowed range.
	KindInvalidValue
	// KindUnknownField is a key the job format does not define.
	KindUnknownField
	// KindEmptyDocument is a description with no content.
	KindEmptyDocument
	// KindMalformedDocument is a description that is not valid TOML or has
	// values of the wrong type.
	KindMalformedDocument
	// KindIO is an input file that cannot be read.
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedComplex:
		return "malformed complex number"
	case KindMalformedSize:
		return "malformed size"
	case KindUnknownFractal:
		return "unknown fractal"
	case KindUnknownScheme:
		return "unknown color scheme"
	case KindMissingField:
		return "missing field"
	case KindInvalidValue:
		return "invalid value"
	case KindUnknownField:
		return "unknown field"
	case KindEmptyDocument:
		return "empty document"
	case KindMalformedDocument:
		return "malformed document"
	case KindIO:
		return "i/o error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error reports a job description failure.
type Error struct {
	Kind ErrorKind
	// Raw is the offending text: a literal, a key name or a file path.
	Raw string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Raw != "" {
		msg += fmt.Sprintf(" %q", e.Raw)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, raw string, err error) *Error {
	return &Error{Kind: kind, Raw: raw, Err: err}
}
