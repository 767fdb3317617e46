package retrofit

import "fmt"

// Encoding represents how field and part parameters are encoded into the
// request body
type Encoding int

const (
	EncodingNone Encoding = iota
	FormURLEncoded
	Multipart
)

// String returns the string representation of the encoding
func (e Encoding) String() string {
	switch e {
	case EncodingNone:
		return "none"
	case FormURLEncoded:
		return "form"
	case Multipart:
		return "multipart"
	default:
		return "unknown"
	}
}

// ParseEncoding converts string to Encoding
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "none", "":
		return EncodingNone, nil
	case "form":
		return FormURLEncoded, nil
	case "multipart":
		return Multipart, nil
	default:
		return 0, fmt.Errorf("unknown encoding: %s", s)
	}
}

// StaticHeaders carries literal header lines attached to every request an
// annotated method makes. Lines are stored verbatim in declaration order;
// splitting them into name and value is the consuming generator's job.
type StaticHeaders struct {
	lines []string
}

// NewStaticHeaders creates a static header marker from literal
// "Name: value" lines
func NewStaticHeaders(lines ...string) StaticHeaders {
	copied := make([]string, len(lines))
	copy(copied, lines)
	return StaticHeaders{lines: copied}
}

// Lines returns a copy of the header lines in declaration order
func (h StaticHeaders) Lines() []string {
	copied := make([]string, len(h.lines))
	copy(copied, h.lines)
	return copied
}

// Len returns the number of header lines
func (h StaticHeaders) Len() int {
	return len(h.lines)
}
