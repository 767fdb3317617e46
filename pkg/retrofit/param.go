package retrofit

import "fmt"

// ParamKind represents where a method argument is placed in the outgoing request
type ParamKind int

const (
	PathParam ParamKind = iota
	QueryParam
	HeaderParam
	FieldParam
	PartParam
	BodyParam
	URLParam
)

// String returns the string representation of the parameter kind
func (k ParamKind) String() string {
	switch k {
	case PathParam:
		return "path"
	case QueryParam:
		return "query"
	case HeaderParam:
		return "header"
	case FieldParam:
		return "field"
	case PartParam:
		return "part"
	case BodyParam:
		return "body"
	case URLParam:
		return "url"
	default:
		return "unknown"
	}
}

// ParseParamKind converts string to ParamKind
func ParseParamKind(s string) (ParamKind, error) {
	switch s {
	case "path":
		return PathParam, nil
	case "query":
		return QueryParam, nil
	case "header":
		return HeaderParam, nil
	case "field":
		return FieldParam, nil
	case "part":
		return PartParam, nil
	case "body":
		return BodyParam, nil
	case "url":
		return URLParam, nil
	default:
		return 0, fmt.Errorf("unknown parameter kind: %s", s)
	}
}

// Param binds one method argument to a slot in the outgoing request. Like the
// method markers it stores its name verbatim and never validates it.
type Param struct {
	kind ParamKind
	name string
}

// PathOf binds an argument to the {name} placeholder of the path template
func PathOf(name string) Param {
	return Param{kind: PathParam, name: name}
}

// Query binds an argument to a URL query parameter
func Query(name string) Param {
	return Param{kind: QueryParam, name: name}
}

// Header binds an argument to a request header
func Header(name string) Param {
	return Param{kind: HeaderParam, name: name}
}

// Field binds an argument to a form-encoded body field
func Field(name string) Param {
	return Param{kind: FieldParam, name: name}
}

// Part binds an argument to a multipart body part
func Part(name string) Param {
	return Param{kind: PartParam, name: name}
}

// Body marks an argument as the request payload
func Body() Param {
	return Param{kind: BodyParam}
}

// URL marks an argument as the full request URL, replacing the path template
func URL() Param {
	return Param{kind: URLParam}
}

// Kind returns which request slot the parameter targets
func (p Param) Kind() ParamKind {
	return p.kind
}

// Name returns the slot name exactly as supplied at construction. Body and
// URL parameters have no name.
func (p Param) Name() string {
	return p.name
}
