package directive

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/mehdilight/retrofit-go/pkg/retrofit"
)

// Parser parses //retrofit:: comment directives into typed directive values
type Parser struct {
	parser   *participle.Parser[Directive]
	registry SchemaRegistry
}

// Directive represents the root of a retrofit directive
type Directive struct {
	Comment   string `parser:"@Comment"`
	Retrofit  string `parser:"@Retrofit"`
	Separator string `parser:"@Separator"`
	Type      string `parser:"@Ident"`
}

// NewParser creates a new directive parser validating against the given
// schema registry. A nil registry skips schema validation.
func NewParser(registry SchemaRegistry) *Parser {
	// Define the lexer
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//`},
		{Name: "Retrofit", Pattern: `retrofit`},
		{Name: "Separator", Pattern: `::`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Path", Pattern: `/[^\s]*`}, // Handle paths starting with /
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Punct", Pattern: `[-()]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[Directive](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{
		parser:   parser,
		registry: registry,
	}
}

// NewDefaultParser creates a parser backed by the built-in directive schemas
func NewDefaultParser() *Parser {
	return NewParser(DefaultSchemaRegistry())
}

// Parse parses a directive comment line
func (p *Parser) Parse(comment string, location retrofit.SourceLocation) (*ParsedDirective, error) {
	// First, manually parse the basic directive structure
	directiveType, remaining, err := p.parseBasicStructure(comment)
	if err != nil {
		return nil, fmt.Errorf("failed to parse basic structure: %w", err)
	}

	// Resolve the keyword, which may be a canonical type or one of the verb
	// and parameter-slot spellings
	parsedType, implied, err := p.resolveDirectiveType(directiveType)
	if err != nil {
		return nil, fmt.Errorf("invalid directive type '%s': %w", directiveType, err)
	}

	parsed := &ParsedDirective{
		Type:       parsedType,
		Parameters: make(map[string]interface{}),
		Location:   location,
		Raw:        comment,
	}

	// Parse positional parameters and named parameters; an alias keyword
	// contributes its implied positional first
	positional := implied
	var namedPart string
	if remaining != "" {
		explicit, named := p.splitPositionalAndNamed(remaining)
		positional = append(positional, explicit...)
		namedPart = named
	}

	p.handlePositionalParameters(parsed, positional)

	if namedPart != "" {
		for _, item := range p.parseNamedParameters(namedPart) {
			parsed.Parameters[item.key] = item.value
		}
	}

	// Validate against schema
	if p.registry != nil {
		if err := p.validateAgainstSchema(parsed); err != nil {
			return nil, fmt.Errorf("schema validation failed: %w", err)
		}
	}

	return parsed, nil
}

// parseBasicStructure manually parses the basic directive structure
func (p *Parser) parseBasicStructure(comment string) (directiveType, remaining string, err error) {
	comment = strings.TrimSpace(comment)

	// Remove comment prefix
	if !strings.HasPrefix(comment, "//") {
		return "", "", fmt.Errorf("directive must start with '//'")
	}
	content := strings.TrimPrefix(comment, "//")
	content = strings.TrimSpace(content)

	// Check for retrofit prefix
	if !strings.HasPrefix(content, "retrofit::") {
		return "", "", fmt.Errorf("directive must contain 'retrofit::' prefix")
	}
	content = strings.TrimPrefix(content, "retrofit::")

	parts := strings.Fields(content)
	if len(parts) == 0 {
		return "", "", fmt.Errorf("empty directive")
	}

	directiveType = parts[0]

	remaining = strings.TrimPrefix(content, directiveType)
	remaining = strings.TrimSpace(remaining)

	return directiveType, remaining, nil
}

// resolveDirectiveType converts a directive keyword to its DirectiveType and
// implied positional parameters
func (p *Parser) resolveDirectiveType(typeStr string) (DirectiveType, []string, error) {
	directiveType, implied, err := ResolveDirectiveKeyword(typeStr)
	if err != nil {
		return RouteDirective, nil, err
	}

	if p.registry != nil && !p.registry.IsRegistered(directiveType) {
		return RouteDirective, nil, fmt.Errorf("directive type '%s' is not registered in schema registry", typeStr)
	}

	return directiveType, implied, nil
}

// splitPositionalAndNamed separates positional parameters from named
// parameters, keeping quoted strings intact
func (p *Parser) splitPositionalAndNamed(input string) ([]string, string) {
	var positional []string
	var namedParts []string
	inNamed := false

	for _, part := range splitFields(input) {
		if strings.HasPrefix(part, "-") {
			inNamed = true
			namedParts = append(namedParts, part)
		} else if !inNamed {
			positional = append(positional, part)
		} else {
			namedParts = append(namedParts, part)
		}
	}

	return positional, strings.Join(namedParts, " ")
}

// namedParameter is a single -Key=value parameter
type namedParameter struct {
	key   string
	value interface{}
}

// parseNamedParameters parses the -Key=value part of a directive
func (p *Parser) parseNamedParameters(input string) []namedParameter {
	var params []namedParameter

	for _, part := range splitFields(input) {
		if !strings.HasPrefix(part, "-") {
			continue
		}
		part = strings.TrimPrefix(part, "-")

		if keyValue := strings.SplitN(part, "=", 2); len(keyValue) == 2 {
			params = append(params, namedParameter{
				key:   keyValue[0],
				value: unquote(keyValue[1]),
			})
		} else {
			// A bare -Flag stores the empty string; none of the built-in
			// schemas define boolean parameters
			params = append(params, namedParameter{key: part, value: ""})
		}
	}

	return params
}

// handlePositionalParameters assigns positional parameters based on directive type
func (p *Parser) handlePositionalParameters(directive *ParsedDirective, positional []string) {
	switch directive.Type {
	case RouteDirective:
		if len(positional) >= 1 {
			directive.Parameters["method"] = positional[0]
		}
		if len(positional) >= 2 {
			directive.Parameters["path"] = positional[1]
		}
	case ParamDirective:
		if len(positional) >= 1 {
			directive.Parameters["kind"] = positional[0]
		}
		if len(positional) >= 2 {
			directive.Parameters["name"] = unquote(positional[1])
		}
	case HeadersDirective:
		if len(positional) >= 1 {
			lines := make([]string, 0, len(positional))
			for _, line := range positional {
				lines = append(lines, unquote(line))
			}
			directive.Parameters["lines"] = lines
		}
	case EncodingDirective:
		if len(positional) >= 1 {
			directive.Parameters["encoding"] = positional[0]
		}
	case SerializedDirective:
		if len(positional) >= 1 {
			directive.Parameters["name"] = unquote(positional[0])
		}
	}
}

// validateAgainstSchema validates the parsed directive against its schema
func (p *Parser) validateAgainstSchema(directive *ParsedDirective) error {
	schema, err := p.registry.GetSchema(directive.Type)
	if err != nil {
		return fmt.Errorf("no schema found for directive type: %s", directive.Type)
	}

	// Validate parameters (only those with explicit values)
	for paramName, paramValue := range directive.Parameters {
		paramSpec, exists := schema.Parameters[paramName]
		if !exists {
			return fmt.Errorf("unknown parameter '%s' for directive type %s", paramName, directive.Type)
		}

		if paramSpec.Validator != nil {
			if err := paramSpec.Validator(paramValue); err != nil {
				return fmt.Errorf("parameter '%s' validation failed: %w", paramName, err)
			}
		}
	}

	// Check for missing required parameters
	for paramName, paramSpec := range schema.Parameters {
		if paramSpec.Required {
			if _, exists := directive.Parameters[paramName]; !exists {
				if directive.Type == RouteDirective && paramName == "method" {
					return fmt.Errorf("route directive requires a method parameter (e.g. GET, POST)")
				}
				return fmt.Errorf("missing required parameter '%s' for directive type %s", paramName, directive.Type)
			}
		}
	}

	// Run custom validators
	for _, validate := range schema.Validators {
		if err := validate(directive); err != nil {
			return fmt.Errorf("directive validation failed: %w", err)
		}
	}

	return nil
}

// splitFields splits a directive body on whitespace while keeping quoted
// strings together. Quotes are preserved for unquote to strip later.
func splitFields(s string) []string {
	var parts []string
	var current strings.Builder
	var quote byte

	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			current.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			current.WriteByte(c)
		case c == ' ' || c == '\t':
			flush()
		default:
			current.WriteByte(c)
		}
	}
	flush()

	return parts
}

// unquote removes surrounding quotes from a value if present
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
