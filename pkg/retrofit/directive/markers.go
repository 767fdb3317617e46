package directive

import (
	"fmt"
	"strings"

	"github.com/mehdilight/retrofit-go/pkg/retrofit"
)

// Marker extraction: each parsed directive converts into the marker value the
// annotation contract defines for it.

// HTTPMethod converts a route directive into its verb marker
func (p *ParsedDirective) HTTPMethod() (retrofit.HTTPMethod, error) {
	if p.Type != RouteDirective {
		return retrofit.HTTPMethod{}, fmt.Errorf("directive is a %s, not a route", p.Type)
	}

	verb, err := retrofit.ParseVerb(strings.ToUpper(p.GetString("method")))
	if err != nil {
		return retrofit.HTTPMethod{}, err
	}

	if path := p.GetString("path"); path != "" {
		return retrofit.MethodFor(verb, path), nil
	}
	return retrofit.MethodFor(verb), nil
}

// Param converts a param directive into its parameter marker
func (p *ParsedDirective) Param() (retrofit.Param, error) {
	if p.Type != ParamDirective {
		return retrofit.Param{}, fmt.Errorf("directive is a %s, not a param", p.Type)
	}

	kind, err := retrofit.ParseParamKind(p.GetString("kind"))
	if err != nil {
		return retrofit.Param{}, err
	}

	name := p.GetString("name")
	switch kind {
	case retrofit.PathParam:
		return retrofit.PathOf(name), nil
	case retrofit.QueryParam:
		return retrofit.Query(name), nil
	case retrofit.HeaderParam:
		return retrofit.Header(name), nil
	case retrofit.FieldParam:
		return retrofit.Field(name), nil
	case retrofit.PartParam:
		return retrofit.Part(name), nil
	case retrofit.BodyParam:
		return retrofit.Body(), nil
	case retrofit.URLParam:
		return retrofit.URL(), nil
	default:
		return retrofit.Param{}, fmt.Errorf("unsupported parameter kind: %s", kind)
	}
}

// StaticHeaders converts a headers directive into its static header marker
func (p *ParsedDirective) StaticHeaders() (retrofit.StaticHeaders, error) {
	if p.Type != HeadersDirective {
		return retrofit.StaticHeaders{}, fmt.Errorf("directive is a %s, not headers", p.Type)
	}

	return retrofit.NewStaticHeaders(p.GetStringSlice("lines")...), nil
}

// Encoding converts an encoding directive into its encoding value
func (p *ParsedDirective) Encoding() (retrofit.Encoding, error) {
	if p.Type != EncodingDirective {
		return retrofit.EncodingNone, fmt.Errorf("directive is a %s, not encoding", p.Type)
	}

	return retrofit.ParseEncoding(p.GetString("encoding"))
}

// SerializedName converts a serialized directive into its rename marker
func (p *ParsedDirective) SerializedName() (retrofit.SerializedName, error) {
	if p.Type != SerializedDirective {
		return retrofit.SerializedName{}, fmt.Errorf("directive is a %s, not serialized", p.Type)
	}

	return retrofit.NewSerializedName(p.GetString("name")), nil
}
