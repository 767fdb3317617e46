package directive

import (
	"fmt"
	"strings"

	"github.com/mehdilight/retrofit-go/pkg/retrofit"
)

// DirectiveType represents the type of directive
type DirectiveType int

const (
	RouteDirective DirectiveType = iota
	ParamDirective
	HeadersDirective
	EncodingDirective
	SerializedDirective
)

// String returns the string representation of the directive type
func (d DirectiveType) String() string {
	switch d {
	case RouteDirective:
		return "route"
	case ParamDirective:
		return "param"
	case HeadersDirective:
		return "headers"
	case EncodingDirective:
		return "encoding"
	case SerializedDirective:
		return "serialized"
	default:
		return "unknown"
	}
}

// ParseDirectiveType converts string to DirectiveType
func ParseDirectiveType(s string) (DirectiveType, error) {
	switch s {
	case "route":
		return RouteDirective, nil
	case "param":
		return ParamDirective, nil
	case "headers":
		return HeadersDirective, nil
	case "encoding":
		return EncodingDirective, nil
	case "serialized":
		return SerializedDirective, nil
	default:
		return 0, fmt.Errorf("unknown directive type: %s", s)
	}
}

// ResolveDirectiveKeyword converts a directive keyword into its directive
// type plus any positional parameter the keyword itself implies. Besides the
// five canonical names, every verb doubles as a route spelling and every
// parameter slot as a param spelling: `//retrofit::get /users` and
// `//retrofit::query sort` mean `//retrofit::route GET /users` and
// `//retrofit::param query sort`.
func ResolveDirectiveKeyword(keyword string) (DirectiveType, []string, error) {
	if directiveType, err := ParseDirectiveType(keyword); err == nil {
		return directiveType, nil, nil
	}

	if verb, err := retrofit.ParseVerb(strings.ToUpper(keyword)); err == nil {
		return RouteDirective, []string{verb.String()}, nil
	}

	if kind, err := retrofit.ParseParamKind(keyword); err == nil {
		return ParamDirective, []string{kind.String()}, nil
	}

	return RouteDirective, nil, fmt.Errorf("unknown directive type: %s", keyword)
}

// ParsedDirective represents a fully parsed directive with type-safe parameters
type ParsedDirective struct {
	Type       DirectiveType           // Directive type enum
	Parameters map[string]interface{}  // Typed parameters
	Location   retrofit.SourceLocation // Source location
	Raw        string                  // Original directive text
}

// GetString returns a string parameter value with optional default
func (p *ParsedDirective) GetString(paramName string, defaultValue ...string) string {
	if value, exists := p.Parameters[paramName]; exists {
		if strValue, ok := value.(string); ok {
			return strValue
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetStringSlice returns a string slice parameter value with optional default
func (p *ParsedDirective) GetStringSlice(paramName string, defaultValue ...[]string) []string {
	if value, exists := p.Parameters[paramName]; exists {
		if sliceValue, ok := value.([]string); ok {
			return sliceValue
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// HasParameter checks if a parameter exists
func (p *ParsedDirective) HasParameter(paramName string) bool {
	_, exists := p.Parameters[paramName]
	return exists
}

// ParameterType represents the type of a parameter
type ParameterType int

const (
	StringType ParameterType = iota
	StringSliceType
)

// String returns the string representation of the parameter type
func (p ParameterType) String() string {
	switch p {
	case StringType:
		return "string"
	case StringSliceType:
		return "[]string"
	default:
		return "unknown"
	}
}

// ParameterSpec defines the specification for a directive parameter
type ParameterSpec struct {
	Type        ParameterType           // Parameter type
	Required    bool                    // Whether parameter is required
	Description string                  // Parameter description
	Validator   func(interface{}) error // Custom validator function
}

// CustomValidator represents a custom validation function for directives
type CustomValidator func(*ParsedDirective) error

// DirectiveSchema defines the schema for a directive type
type DirectiveSchema struct {
	Type        DirectiveType            // Directive type enum
	Description string                   // Human-readable description
	Parameters  map[string]ParameterSpec // Parameter specifications
	Validators  []CustomValidator        // Custom validation functions
	Examples    []string                 // Usage examples
}
