package retrofit

import "fmt"

// Verb represents the HTTP request method of an annotated call
type Verb int

const (
	GetVerb Verb = iota
	HeadVerb
	OptionsVerb
	PutVerb
	PostVerb
	DeleteVerb
	PatchVerb
)

// String returns the request method literal for the verb
func (v Verb) String() string {
	switch v {
	case GetVerb:
		return "GET"
	case HeadVerb:
		return "HEAD"
	case OptionsVerb:
		return "OPTIONS"
	case PutVerb:
		return "PUT"
	case PostVerb:
		return "POST"
	case DeleteVerb:
		return "DELETE"
	case PatchVerb:
		return "PATCH"
	default:
		return "unknown"
	}
}

// ParseVerb converts a request method literal to a Verb
func ParseVerb(s string) (Verb, error) {
	switch s {
	case "GET":
		return GetVerb, nil
	case "HEAD":
		return HeadVerb, nil
	case "OPTIONS":
		return OptionsVerb, nil
	case "PUT":
		return PutVerb, nil
	case "POST":
		return PostVerb, nil
	case "DELETE":
		return DeleteVerb, nil
	case "PATCH":
		return PatchVerb, nil
	default:
		return 0, fmt.Errorf("unknown HTTP verb: %s", s)
	}
}

// Verbs returns every supported verb in declaration order
func Verbs() []Verb {
	return []Verb{
		GetVerb,
		HeadVerb,
		OptionsVerb,
		PutVerb,
		PostVerb,
		DeleteVerb,
		PatchVerb,
	}
}
