package retrofit

// HTTPMethod declares which HTTP verb an interface method uses and which path
// template it targets. The path is stored exactly as supplied: no trimming, no
// normalization, no template validation. Whether the template is well formed
// is the consuming generator's problem, not the marker's.
type HTTPMethod struct {
	verb Verb
	path string
	set  bool
}

func newHTTPMethod(verb Verb, path []string) HTTPMethod {
	m := HTTPMethod{verb: verb, set: true}
	if len(path) > 0 {
		m.path = path[0]
	}
	return m
}

// GET declares a GET call with an optional path template
func GET(path ...string) HTTPMethod {
	return newHTTPMethod(GetVerb, path)
}

// HEAD declares a HEAD call with an optional path template
func HEAD(path ...string) HTTPMethod {
	return newHTTPMethod(HeadVerb, path)
}

// OPTIONS declares an OPTIONS call with an optional path template
func OPTIONS(path ...string) HTTPMethod {
	return newHTTPMethod(OptionsVerb, path)
}

// PUT declares a PUT call with an optional path template
func PUT(path ...string) HTTPMethod {
	return newHTTPMethod(PutVerb, path)
}

// POST declares a POST call with an optional path template
func POST(path ...string) HTTPMethod {
	return newHTTPMethod(PostVerb, path)
}

// DELETE declares a DELETE call with an optional path template
func DELETE(path ...string) HTTPMethod {
	return newHTTPMethod(DeleteVerb, path)
}

// PATCH declares a PATCH call with an optional path template
func PATCH(path ...string) HTTPMethod {
	return newHTTPMethod(PatchVerb, path)
}

// MethodFor declares a call for a verb chosen at runtime. Declarative code
// should prefer the per-verb constructors; this exists for consumers that
// already hold a parsed Verb.
func MethodFor(verb Verb, path ...string) HTTPMethod {
	return newHTTPMethod(verb, path)
}

// Verb returns the variant the marker was constructed with
func (m HTTPMethod) Verb() Verb {
	return m.verb
}

// Method returns the fixed request method literal for the marker (e.g. "GET")
func (m HTTPMethod) Method() string {
	return m.verb.String()
}

// Path returns the path template exactly as supplied at construction
func (m HTTPMethod) Path() string {
	return m.path
}

// IsZero reports whether the marker was produced by one of the verb
// constructors. A zero HTTPMethod carries no verb declaration at all.
func (m HTTPMethod) IsZero() bool {
	return !m.set
}
