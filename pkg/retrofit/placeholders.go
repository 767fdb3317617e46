package retrofit

import (
	"sort"
	"strconv"

	"github.com/google/uuid"
)

// PlaceholderChecker reports whether a raw path value is acceptable for a
// typed placeholder
type PlaceholderChecker func(value string) error

// builtinCheckers contains the checkers for all built-in placeholder types
var builtinCheckers = map[string]PlaceholderChecker{
	"string": func(value string) error {
		return nil
	},
	"int": func(value string) error {
		_, err := strconv.Atoi(value)
		return err
	},
	"float64": func(value string) error {
		_, err := strconv.ParseFloat(value, 64)
		return err
	},
	"float32": func(value string) error {
		_, err := strconv.ParseFloat(value, 32)
		return err
	},
	"uuid": func(value string) error {
		_, err := uuid.Parse(value)
		return err
	},
}

// typeAliases maps convenient aliases to their full type names
var typeAliases = map[string]string{
	"UUID":   "uuid",
	"guid":   "uuid",
	"float":  "float64", // Default float to float64
	"double": "float64", // Common alias for float64
}

// BuiltinChecker returns a built-in placeholder checker by type name,
// checking aliases first
func BuiltinChecker(typeName string) (PlaceholderChecker, bool) {
	if actualType, isAlias := typeAliases[typeName]; isAlias {
		typeName = actualType
	}

	checker, exists := builtinCheckers[typeName]
	return checker, exists
}

// IsBuiltinType checks if a type is a built-in placeholder type, including aliases
func IsBuiltinType(typeName string) bool {
	if actualType, isAlias := typeAliases[typeName]; isAlias {
		typeName = actualType
	}

	_, exists := builtinCheckers[typeName]
	return exists
}

// ResolveTypeAlias resolves a type alias to its actual type name
func ResolveTypeAlias(typeName string) string {
	if actualType, isAlias := typeAliases[typeName]; isAlias {
		return actualType
	}
	return typeName
}

// AllBuiltinTypes returns all built-in placeholder type names including aliases
func AllBuiltinTypes() []string {
	types := make([]string, 0, len(builtinCheckers)+len(typeAliases))

	for typeName := range builtinCheckers {
		types = append(types, typeName)
	}

	for alias := range typeAliases {
		types = append(types, alias)
	}

	sort.Strings(types)
	return types
}
