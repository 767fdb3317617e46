package directive

import (
	"fmt"
	"strings"

	"github.com/mehdilight/retrofit-go/pkg/retrofit"
)

// Built-in directive schemas

// RouteDirectiveSchema defines the schema for //retrofit::route directives
var RouteDirectiveSchema = DirectiveSchema{
	Type:        RouteDirective,
	Description: "Declares the HTTP verb and path template of an interface method",
	Parameters: map[string]ParameterSpec{
		"method": {
			Type:        StringType,
			Required:    true,
			Description: "HTTP method (GET, HEAD, OPTIONS, PUT, POST, DELETE, PATCH)",
			Validator: func(v interface{}) error {
				method := strings.ToUpper(v.(string))
				if _, err := retrofit.ParseVerb(method); err != nil {
					verbs := make([]string, 0, len(retrofit.Verbs()))
					for _, verb := range retrofit.Verbs() {
						verbs = append(verbs, verb.String())
					}
					return fmt.Errorf("must be one of: %s, got '%s'", strings.Join(verbs, ", "), method)
				}
				return nil
			},
		},
		"path": {
			Type:        StringType,
			Required:    false,
			Description: "Path template (e.g. /users, /users/{id:int})",
			Validator: func(v interface{}) error {
				path := v.(string)
				if !strings.HasPrefix(path, "/") {
					return fmt.Errorf("path must start with '/', got '%s'", path)
				}
				return nil
			},
		},
	},
	Examples: []string{
		"//retrofit::route GET /users",
		"//retrofit::route POST /users",
		"//retrofit::route GET /users/{id:int}",
		"//retrofit::route PUT /users/{id:uuid}",
		"//retrofit::route HEAD",
		"//retrofit::get /users/{id}",
		"//retrofit::delete /users/{id}",
	},
}

// ParamDirectiveSchema defines the schema for //retrofit::param directives
var ParamDirectiveSchema = DirectiveSchema{
	Type:        ParamDirective,
	Description: "Binds a method argument to a slot in the outgoing request",
	Parameters: map[string]ParameterSpec{
		"kind": {
			Type:        StringType,
			Required:    true,
			Description: "Request slot: path, query, header, field, part, body, or url",
			Validator: func(v interface{}) error {
				if _, err := retrofit.ParseParamKind(v.(string)); err != nil {
					return fmt.Errorf("must be one of: path, query, header, field, part, body, url, got '%s'", v)
				}
				return nil
			},
		},
		"name": {
			Type:        StringType,
			Required:    false,
			Description: "Slot name (required for every kind except body and url)",
		},
	},
	Examples: []string{
		"//retrofit::param path id",
		"//retrofit::param query sort",
		"//retrofit::param header Authorization",
		"//retrofit::param field username",
		"//retrofit::param part avatar",
		"//retrofit::param body",
		"//retrofit::param url",
		"//retrofit::query sort",
		"//retrofit::header Authorization",
	},
}

// HeadersDirectiveSchema defines the schema for //retrofit::headers directives
var HeadersDirectiveSchema = DirectiveSchema{
	Type:        HeadersDirective,
	Description: "Attaches literal header lines to every request of a method",
	Parameters: map[string]ParameterSpec{
		"lines": {
			Type:        StringSliceType,
			Required:    true,
			Description: "Literal \"Name: value\" header lines",
		},
	},
	Examples: []string{
		"//retrofit::headers \"Cache-Control: max-age=640000\"",
		"//retrofit::headers \"Accept: application/json\" \"User-Agent: retrofit-go\"",
	},
}

// EncodingDirectiveSchema defines the schema for //retrofit::encoding directives
var EncodingDirectiveSchema = DirectiveSchema{
	Type:        EncodingDirective,
	Description: "Declares the body encoding for field and part parameters",
	Parameters: map[string]ParameterSpec{
		"encoding": {
			Type:        StringType,
			Required:    true,
			Description: "Body encoding: form or multipart",
			Validator: func(v interface{}) error {
				encoding, err := retrofit.ParseEncoding(v.(string))
				if err != nil {
					return fmt.Errorf("must be 'form' or 'multipart', got '%s'", v)
				}
				if encoding == retrofit.EncodingNone {
					return fmt.Errorf("must be 'form' or 'multipart', got '%s'", v)
				}
				return nil
			},
		},
	},
	Examples: []string{
		"//retrofit::encoding form",
		"//retrofit::encoding multipart",
	},
}

// SerializedDirectiveSchema defines the schema for //retrofit::serialized directives
var SerializedDirectiveSchema = DirectiveSchema{
	Type:        SerializedDirective,
	Description: "Declares an alternate wire-format key for a model field",
	Parameters: map[string]ParameterSpec{
		"name": {
			Type:        StringType,
			Required:    true,
			Description: "Wire-format key for the field (stored verbatim)",
		},
		"Model": {
			Type:        StringType,
			Required:    false,
			Description: "Model the field belongs to (defaults to the surrounding model)",
		},
		"Field": {
			Type:        StringType,
			Required:    false,
			Description: "Field identifier (defaults to the annotated field)",
		},
	},
	Examples: []string{
		"//retrofit::serialized user_id",
		"//retrofit::serialized created_at -Model=User -Field=CreatedAt",
	},
}

// RegisterBuiltinSchemas registers all built-in directive schemas with the given registry
func RegisterBuiltinSchemas(registry SchemaRegistry) error {
	for _, schema := range GetBuiltinSchemas() {
		if err := registry.Register(schema.Type, schema); err != nil {
			return fmt.Errorf("failed to register %s schema: %w", schema.Type.String(), err)
		}
	}

	return nil
}

// GetBuiltinSchemas returns all built-in directive schemas
func GetBuiltinSchemas() []DirectiveSchema {
	return []DirectiveSchema{
		RouteDirectiveSchema,
		ParamDirectiveSchema,
		HeadersDirectiveSchema,
		EncodingDirectiveSchema,
		SerializedDirectiveSchema,
	}
}

// ValidateParamName is a custom validator for param directives: every kind
// except body and url names its slot
func ValidateParamName(d *ParsedDirective) error {
	kind, err := retrofit.ParseParamKind(d.GetString("kind"))
	if err != nil {
		return err
	}

	name := d.GetString("name")
	switch kind {
	case retrofit.BodyParam, retrofit.URLParam:
		if name != "" {
			return fmt.Errorf("%s parameters do not take a name, got '%s'", kind, name)
		}
	default:
		if name == "" {
			return fmt.Errorf("%s parameters require a name (e.g. //retrofit::param %s id)", kind, kind)
		}
	}

	return nil
}

// ValidateRouteTemplate is a custom validator for route directives: the path,
// when present, must be a well-formed template
func ValidateRouteTemplate(d *ParsedDirective) error {
	path := d.GetString("path")
	if path == "" {
		return nil
	}
	return retrofit.Template(path).Validate()
}

// init registers custom validators for schemas that need them
func init() {
	RouteDirectiveSchema.Validators = []CustomValidator{
		ValidateRouteTemplate,
	}

	ParamDirectiveSchema.Validators = []CustomValidator{
		ValidateParamName,
	}
}
