package retrofit

import (
	"fmt"
	"regexp"
	"strings"
)

// TemplatePartType represents the type of template part
type TemplatePartType int

const (
	StaticPart TemplatePartType = iota
	PlaceholderPart
	WildcardPart
)

// TemplatePart represents a single part of a path template
type TemplatePart struct {
	Type      TemplatePartType
	Value     string // For static parts: the literal text, for placeholders: the placeholder name
	ParamType string // For placeholders: the type (e.g. "int", "uuid"), empty for untyped
}

// Template represents a path template in {name} or {name:type} form and
// provides parsed parts. Markers hand templates over verbatim; this type is
// the consumer-side view of them.
type Template string

// NewTemplate creates a new Template from a string
func NewTemplate(path string) Template {
	return Template(path)
}

// Raw returns the original template string
func (t Template) Raw() string {
	return string(t)
}

// Parts parses the template and returns the individual parts
func (t Template) Parts() []TemplatePart {
	path := string(t)
	var parts []TemplatePart

	i := 0
	for i < len(path) {
		if path[i] == '{' {
			// Find the closing brace
			j := i + 1
			for j < len(path) && path[j] != '}' {
				j++
			}
			if j < len(path) {
				content := path[i+1 : j]

				if content == "*" {
					parts = append(parts, TemplatePart{
						Type:  WildcardPart,
						Value: "*",
					})
				} else {
					name := content
					paramType := ""
					if colonIndex := strings.Index(content, ":"); colonIndex != -1 {
						name = content[:colonIndex]
						paramType = content[colonIndex+1:]
					}

					parts = append(parts, TemplatePart{
						Type:      PlaceholderPart,
						Value:     name,
						ParamType: paramType,
					})
				}
				i = j + 1
			} else {
				// Malformed, treat as static
				parts = append(parts, TemplatePart{
					Type:  StaticPart,
					Value: string(path[i]),
				})
				i++
			}
		} else {
			// Static part - collect consecutive static characters
			start := i
			for i < len(path) && path[i] != '{' {
				i++
			}
			parts = append(parts, TemplatePart{
				Type:  StaticPart,
				Value: path[start:i],
			})
		}
	}

	return parts
}

// Placeholders extracts placeholder names and their types from the template.
// Untyped placeholders map to the empty string.
func (t Template) Placeholders() map[string]string {
	placeholders := make(map[string]string)
	for _, part := range t.Parts() {
		if part.Type == PlaceholderPart {
			placeholders[part.Value] = part.ParamType
		}
	}
	return placeholders
}

var placeholderNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate checks that the template has correct placeholder syntax. It is the
// "invalid path template" check the markers themselves deliberately skip.
func (t Template) Validate() error {
	path := string(t)

	openBraces := strings.Count(path, "{")
	closeBraces := strings.Count(path, "}")
	if openBraces != closeBraces {
		return fmt.Errorf("mismatched braces in template: %s", path)
	}

	for _, part := range t.Parts() {
		if part.Type != PlaceholderPart {
			continue
		}
		if part.Value == "" {
			return fmt.Errorf("empty placeholder in template: %s", path)
		}
		if !placeholderNameRegex.MatchString(part.Value) {
			return fmt.Errorf("invalid placeholder name '%s' in template: %s (use {name} or {name:type})", part.Value, path)
		}
		if part.ParamType != "" && !IsBuiltinType(part.ParamType) {
			return fmt.Errorf("unknown placeholder type '%s' in template: %s (supported: %s)",
				part.ParamType, path, strings.Join(AllBuiltinTypes(), ", "))
		}
	}

	return nil
}
