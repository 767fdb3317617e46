package directive

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// SchemaRegistry defines the interface for managing directive schemas
type SchemaRegistry interface {
	// Register a new directive type with its schema
	Register(directiveType DirectiveType, schema DirectiveSchema) error

	// GetSchema retrieves the schema for a directive type
	GetSchema(directiveType DirectiveType) (DirectiveSchema, error)

	// ListTypes returns all registered directive types
	ListTypes() []DirectiveType

	// IsRegistered checks if a directive type is registered
	IsRegistered(directiveType DirectiveType) bool
}

// schemaRegistry is the concrete implementation of SchemaRegistry
type schemaRegistry struct {
	mu      sync.RWMutex                      // Protects concurrent access
	schemas map[DirectiveType]DirectiveSchema // Schema storage
}

// NewSchemaRegistry creates a new directive schema registry
func NewSchemaRegistry() SchemaRegistry {
	return &schemaRegistry{
		schemas: make(map[DirectiveType]DirectiveSchema),
	}
}

// defaultSchemaRegistry is the global schema registry instance, populated
// with the built-in schemas
var (
	defaultSchemaRegistry     SchemaRegistry
	defaultSchemaRegistryOnce sync.Once
)

// DefaultSchemaRegistry returns the global schema registry with all built-in
// directive schemas registered
func DefaultSchemaRegistry() SchemaRegistry {
	defaultSchemaRegistryOnce.Do(func() {
		defaultSchemaRegistry = NewSchemaRegistry()
		// Built-in schemas are internally consistent, registration cannot fail
		_ = RegisterBuiltinSchemas(defaultSchemaRegistry)
	})
	return defaultSchemaRegistry
}

// Register adds a new directive type with its schema to the registry
func (r *schemaRegistry) Register(directiveType DirectiveType, schema DirectiveSchema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate that the schema type matches the directive type
	if schema.Type != directiveType {
		return fmt.Errorf("schema type %s does not match directive type %s",
			schema.Type.String(), directiveType.String())
	}

	// Check if already registered
	if _, exists := r.schemas[directiveType]; exists {
		return fmt.Errorf("directive type %s is already registered", directiveType.String())
	}

	if err := validateSchema(directiveType, schema); err != nil {
		return fmt.Errorf("invalid schema for %s: %w", directiveType.String(), err)
	}

	r.schemas[directiveType] = schema
	return nil
}

// GetSchema retrieves the schema for a directive type
func (r *schemaRegistry) GetSchema(directiveType DirectiveType) (DirectiveSchema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schema, exists := r.schemas[directiveType]
	if !exists {
		return DirectiveSchema{}, fmt.Errorf("directive type %s is not registered", directiveType.String())
	}

	return schema, nil
}

// ListTypes returns all registered directive types in declaration order
func (r *schemaRegistry) ListTypes() []DirectiveType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]DirectiveType, 0, len(r.schemas))
	for directiveType := range r.schemas {
		types = append(types, directiveType)
	}

	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// IsRegistered checks if a directive type is registered
func (r *schemaRegistry) IsRegistered(directiveType DirectiveType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.schemas[directiveType]
	return exists
}

// validateSchema checks a schema against the directive contract: parameter
// specs must be well formed and every example must be a //retrofit:: line
// whose keyword resolves to the schema's own type
func validateSchema(directiveType DirectiveType, schema DirectiveSchema) error {
	for paramName, paramSpec := range schema.Parameters {
		if paramName == "" {
			return fmt.Errorf("parameter name cannot be empty")
		}

		if paramSpec.Type < StringType || paramSpec.Type > StringSliceType {
			return fmt.Errorf("invalid parameter type for %s: %d", paramName, paramSpec.Type)
		}
	}

	for _, example := range schema.Examples {
		rest, ok := strings.CutPrefix(example, "//retrofit::")
		if !ok {
			return fmt.Errorf("example %q is not in //retrofit:: form", example)
		}

		keyword, _, _ := strings.Cut(rest, " ")
		resolved, _, err := ResolveDirectiveKeyword(keyword)
		if err != nil || resolved != directiveType {
			return fmt.Errorf("example %q does not demonstrate a %s directive", example, directiveType)
		}
	}

	return nil
}
