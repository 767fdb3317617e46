// Package manifest loads YAML interface definitions and turns them into
// registered service definitions. A manifest is the file-based flavor of the
// annotation contract: every method line is an ordinary //retrofit::
// directive with the comment prefix left off.
package manifest

import (
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"

	"github.com/mehdilight/retrofit-go/pkg/retrofit"
	"github.com/mehdilight/retrofit-go/pkg/retrofit/directive"
)

// Manifest is the root of a service definition file
type Manifest struct {
	Services []ServiceManifest `yaml:"services"`

	source string // File the manifest was loaded from, empty for in-memory data
}

// ServiceManifest describes one annotated interface
type ServiceManifest struct {
	Name     string           `yaml:"name"`
	BasePath string           `yaml:"basePath,omitempty"`
	Methods  []MethodManifest `yaml:"methods"`
	Models   []ModelManifest  `yaml:"models,omitempty"`
}

// MethodManifest describes one annotated method as a list of directive lines
type MethodManifest struct {
	Name       string   `yaml:"name"`
	Directives []string `yaml:"directives"`
}

// ModelManifest maps field identifiers of a model to their wire-format keys
type ModelManifest struct {
	Name   string            `yaml:"name"`
	Fields map[string]string `yaml:"fields"`
}

// Load reads and parses a manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	manifest, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	manifest.source = path
	return manifest, nil
}

// Parse parses manifest data
func Parse(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.UnmarshalStrict(data, &manifest); err != nil {
		return nil, fmt.Errorf("invalid manifest yaml: %w", err)
	}

	return &manifest, nil
}

// Build converts every service in the manifest into a validated Service
func (m *Manifest) Build() ([]*retrofit.Service, error) {
	parser := directive.NewDefaultParser()

	services := make([]*retrofit.Service, 0, len(m.Services))
	for _, sm := range m.Services {
		service, err := sm.build(parser, m.source)
		if err != nil {
			return nil, fmt.Errorf("service '%s': %w", sm.Name, err)
		}
		services = append(services, service)
	}

	return services, nil
}

// Register builds every service and registers it with the given registry
func (m *Manifest) Register(registry retrofit.Registry) error {
	services, err := m.Build()
	if err != nil {
		return err
	}

	for _, service := range services {
		if err := registry.Register(service); err != nil {
			return err
		}
	}

	return nil
}

// build assembles one service through a ServiceBuilder
func (sm *ServiceManifest) build(parser *directive.Parser, source string) (*retrofit.Service, error) {
	loc := retrofit.SourceLocation{File: source}
	builder := retrofit.NewService(sm.Name).BasePath(sm.BasePath)

	for _, mm := range sm.Methods {
		spec, err := mm.build(parser, loc)
		if err != nil {
			return nil, err
		}
		builder.AddMethod(spec)
	}

	for _, model := range sm.Models {
		for field, wireKey := range model.Fields {
			builder.AddRename(retrofit.FieldSpec{
				Model:  model.Name,
				Field:  field,
				Rename: retrofit.NewSerializedName(wireKey),
				Loc:    loc,
			})
		}
	}

	return builder.Build()
}

// build assembles one method spec from its directive lines
func (mm *MethodManifest) build(parser *directive.Parser, loc retrofit.SourceLocation) (retrofit.MethodSpec, error) {
	spec := retrofit.MethodSpec{Name: mm.Name, Loc: loc}

	for _, line := range mm.Directives {
		parsed, err := parser.Parse(normalizeDirective(line), loc)
		if err != nil {
			return spec, fmt.Errorf("method '%s': directive '%s': %w", mm.Name, line, err)
		}

		switch parsed.Type {
		case directive.RouteDirective:
			call, err := parsed.HTTPMethod()
			if err != nil {
				return spec, fmt.Errorf("method '%s': %w", mm.Name, err)
			}
			if !spec.Call.IsZero() {
				return spec, &retrofit.DuplicateVerbError{
					Method: mm.Name,
					First:  spec.Call.Verb(),
					Second: call.Verb(),
					Loc:    loc,
				}
			}
			spec.Call = call

		case directive.ParamDirective:
			param, err := parsed.Param()
			if err != nil {
				return spec, fmt.Errorf("method '%s': %w", mm.Name, err)
			}
			spec.Params = append(spec.Params, param)

		case directive.HeadersDirective:
			headers, err := parsed.StaticHeaders()
			if err != nil {
				return spec, fmt.Errorf("method '%s': %w", mm.Name, err)
			}
			spec.Headers = mergeHeaders(spec.Headers, headers)

		case directive.EncodingDirective:
			encoding, err := parsed.Encoding()
			if err != nil {
				return spec, fmt.Errorf("method '%s': %w", mm.Name, err)
			}
			spec.Encoding = encoding

		case directive.SerializedDirective:
			return spec, fmt.Errorf("method '%s': serialized directives belong to models, not methods", mm.Name)

		default:
			return spec, fmt.Errorf("method '%s': unsupported directive type %s", mm.Name, parsed.Type)
		}
	}

	return spec, nil
}

// mergeHeaders appends the lines of two static header markers
func mergeHeaders(existing, extra retrofit.StaticHeaders) retrofit.StaticHeaders {
	if existing.Len() == 0 {
		return extra
	}
	return retrofit.NewStaticHeaders(append(existing.Lines(), extra.Lines()...)...)
}

// normalizeDirective turns a manifest directive line into full //retrofit::
// comment form when the prefix was left off
func normalizeDirective(line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "//") {
		return line
	}
	return "//retrofit::" + line
}
