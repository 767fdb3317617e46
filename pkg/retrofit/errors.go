package retrofit

import (
	"fmt"
	"strings"
)

// ContractError defines the interface for annotation contract errors reported
// while assembling a service definition
type ContractError interface {
	error
	Location() SourceLocation
	Suggestion() string
	Code() ErrorCode
}

// SourceLocation represents where a marker declaration came from. It is empty
// for markers constructed directly in Go code.
type SourceLocation struct {
	File   string // File path
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
}

func (l SourceLocation) prefix() string {
	if l.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d: ", l.File, l.Line, l.Column)
}

// ErrorCode represents different types of contract errors
type ErrorCode int

const (
	MissingVerbCode ErrorCode = iota
	DuplicateVerbCode
	InvalidTemplateCode
	DuplicateRenameCode
	EncodingConflictCode
	RegistrationCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case MissingVerbCode:
		return "MissingVerb"
	case DuplicateVerbCode:
		return "DuplicateVerb"
	case InvalidTemplateCode:
		return "InvalidTemplate"
	case DuplicateRenameCode:
		return "DuplicateRename"
	case EncodingConflictCode:
		return "EncodingConflict"
	case RegistrationCode:
		return "Registration"
	default:
		return "Unknown"
	}
}

// MissingVerbError reports a method registered without a verb marker
type MissingVerbError struct {
	Method string         // Method name missing the marker
	Loc    SourceLocation // Where the method was declared
}

func (e *MissingVerbError) Error() string {
	return fmt.Sprintf("%smethod '%s' has no HTTP method marker", e.Loc.prefix(), e.Method)
}

func (e *MissingVerbError) Location() SourceLocation { return e.Loc }
func (e *MissingVerbError) Suggestion() string {
	return "declare the method with one of the verb constructors, e.g. retrofit.GET(\"/users/{id}\")"
}
func (e *MissingVerbError) Code() ErrorCode { return MissingVerbCode }

// DuplicateVerbError reports a method registered with more than one verb marker
type DuplicateVerbError struct {
	Method string         // Method name registered twice
	First  Verb           // Verb of the earlier registration
	Second Verb           // Verb of the later registration
	Loc    SourceLocation // Where the later registration came from
}

func (e *DuplicateVerbError) Error() string {
	return fmt.Sprintf("%smethod '%s' declared twice: first as %s, again as %s",
		e.Loc.prefix(), e.Method, e.First, e.Second)
}

func (e *DuplicateVerbError) Location() SourceLocation { return e.Loc }
func (e *DuplicateVerbError) Suggestion() string {
	return "a method carries exactly one HTTP method marker; remove the duplicate declaration"
}
func (e *DuplicateVerbError) Code() ErrorCode { return DuplicateVerbCode }

// TemplateError reports an invalid path template or a parameter that does not
// line up with the template
type TemplateError struct {
	Method   string         // Method the template belongs to
	Template string         // The offending template
	Msg      string         // What is wrong with it
	Loc      SourceLocation // Where the template was declared
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("%smethod '%s': %s", e.Loc.prefix(), e.Method, e.Msg)
}

func (e *TemplateError) Location() SourceLocation { return e.Loc }
func (e *TemplateError) Suggestion() string {
	return "path templates use {name} or {name:type} placeholders, e.g. /users/{id:int}"
}
func (e *TemplateError) Code() ErrorCode { return InvalidTemplateCode }

// DuplicateRenameError reports a model field renamed more than once
type DuplicateRenameError struct {
	Model string         // Model the field belongs to
	Field string         // Field renamed twice
	Loc   SourceLocation // Where the later rename came from
}

func (e *DuplicateRenameError) Error() string {
	return fmt.Sprintf("%sfield '%s.%s' has more than one serialized name", e.Loc.prefix(), e.Model, e.Field)
}

func (e *DuplicateRenameError) Location() SourceLocation { return e.Loc }
func (e *DuplicateRenameError) Suggestion() string {
	return "a field carries at most one SerializedName marker; remove the duplicate"
}
func (e *DuplicateRenameError) Code() ErrorCode { return DuplicateRenameCode }

// EncodingConflictError reports body parameters that contradict the declared
// body encoding
type EncodingConflictError struct {
	Method string         // Method with the conflict
	Msg    string         // What conflicts with what
	Loc    SourceLocation // Where the method was declared
}

func (e *EncodingConflictError) Error() string {
	return fmt.Sprintf("%smethod '%s': %s", e.Loc.prefix(), e.Method, e.Msg)
}

func (e *EncodingConflictError) Location() SourceLocation { return e.Loc }
func (e *EncodingConflictError) Suggestion() string {
	return "field parameters require form encoding, part parameters require multipart, and a body parameter allows neither"
}
func (e *EncodingConflictError) Code() ErrorCode { return EncodingConflictCode }

// RegistrationError represents an error while registering a service
type RegistrationError struct {
	Msg string         // Error message
	Loc SourceLocation // Where the error occurred (optional)
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("%sregistration error: %s", e.Loc.prefix(), e.Msg)
}

func (e *RegistrationError) Location() SourceLocation { return e.Loc }
func (e *RegistrationError) Suggestion() string {
	return "service names must be unique and non-empty"
}
func (e *RegistrationError) Code() ErrorCode { return RegistrationCode }

// ContractErrors collects multiple contract errors together
type ContractErrors struct {
	Errors []ContractError
}

func (e *ContractErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d contract errors:", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Add appends an error to the collection
func (e *ContractErrors) Add(err ContractError) {
	e.Errors = append(e.Errors, err)
}

// HasErrors reports whether any errors were collected
func (e *ContractErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// ErrOrNil returns the collection as an error, or nil when it is empty
func (e *ContractErrors) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
