package retrofit

import "fmt"

// MethodSpec describes one annotated interface method: exactly one HTTP
// method marker plus the parameter markers attached to its arguments
type MethodSpec struct {
	Name     string         // Interface method name
	Call     HTTPMethod     // The verb marker (required)
	Params   []Param        // Argument markers in declaration order
	Headers  StaticHeaders  // Literal headers attached to every request
	Encoding Encoding       // Body encoding declared for the method
	Loc      SourceLocation // Where the method was declared (optional)
}

// FieldSpec describes one annotated model field and its wire-format key
type FieldSpec struct {
	Model  string         // Model the field belongs to
	Field  string         // Field identifier in the model
	Rename SerializedName // The rename marker
	Loc    SourceLocation // Where the field was declared (optional)
}

// Operation is the (verb, path) pair owed to the consuming generator for each
// annotated method
type Operation struct {
	Name string   // Interface method name
	Verb Verb     // Verb drawn from the closed set
	Path Template // Path template, relative to the service base path
}

// Service is an immutable, validated view of an annotated interface
// definition. Build one through a ServiceBuilder.
type Service struct {
	name     string
	basePath string
	methods  []MethodSpec
	fields   []FieldSpec
	byName   map[string]int
}

// Name returns the service name
func (s *Service) Name() string {
	return s.name
}

// BasePath returns the path prefix shared by every method of the service.
// Whether it is joined with an absolute base URL is the consuming generator's
// policy; the service only carries it.
func (s *Service) BasePath() string {
	return s.basePath
}

// Methods returns the method specs in registration order
func (s *Service) Methods() []MethodSpec {
	methods := make([]MethodSpec, len(s.methods))
	copy(methods, s.methods)
	return methods
}

// Method looks up a method spec by name
func (s *Service) Method(name string) (MethodSpec, bool) {
	idx, exists := s.byName[name]
	if !exists {
		return MethodSpec{}, false
	}
	return s.methods[idx], true
}

// Operations returns the (verb, path) pair for every method in registration
// order
func (s *Service) Operations() []Operation {
	operations := make([]Operation, 0, len(s.methods))
	for _, m := range s.methods {
		operations = append(operations, Operation{
			Name: m.Name,
			Verb: m.Call.Verb(),
			Path: Template(m.Call.Path()),
		})
	}
	return operations
}

// Fields returns the field specs in registration order
func (s *Service) Fields() []FieldSpec {
	fields := make([]FieldSpec, len(s.fields))
	copy(fields, s.fields)
	return fields
}

// Renames returns the field-to-wire-key mapping for one model
func (s *Service) Renames(model string) map[string]string {
	renames := make(map[string]string)
	for _, f := range s.fields {
		if f.Model == model {
			renames[f.Field] = f.Rename.Name()
		}
	}
	return renames
}

// ServiceBuilder collects method and field markers for a service and
// validates them as a whole on Build
type ServiceBuilder struct {
	name     string
	basePath string
	methods  []MethodSpec
	fields   []FieldSpec
}

// NewService creates a builder for a service definition
func NewService(name string) *ServiceBuilder {
	return &ServiceBuilder{name: name}
}

// BasePath sets the path prefix shared by every method of the service
func (b *ServiceBuilder) BasePath(path string) *ServiceBuilder {
	b.basePath = path
	return b
}

// AddMethod records an annotated method. Validation happens on Build so that
// every problem is reported at once.
func (b *ServiceBuilder) AddMethod(spec MethodSpec) *ServiceBuilder {
	b.methods = append(b.methods, spec)
	return b
}

// AddRename records a SerializedName marker for a model field
func (b *ServiceBuilder) AddRename(spec FieldSpec) *ServiceBuilder {
	b.fields = append(b.fields, spec)
	return b
}

// Build validates the collected markers and returns the immutable service.
// All contract errors are collected and returned together.
func (b *ServiceBuilder) Build() (*Service, error) {
	errs := &ContractErrors{}

	if b.name == "" {
		errs.Add(&RegistrationError{Msg: "service name cannot be empty"})
	}

	byName := make(map[string]int, len(b.methods))
	for i, m := range b.methods {
		if m.Name == "" {
			errs.Add(&RegistrationError{Msg: "method name cannot be empty", Loc: m.Loc})
			continue
		}

		if first, exists := byName[m.Name]; exists {
			errs.Add(&DuplicateVerbError{
				Method: m.Name,
				First:  b.methods[first].Call.Verb(),
				Second: m.Call.Verb(),
				Loc:    m.Loc,
			})
			continue
		}
		byName[m.Name] = i

		if m.Call.IsZero() {
			errs.Add(&MissingVerbError{Method: m.Name, Loc: m.Loc})
			continue
		}

		b.validateTemplate(m, errs)
		b.validateEncoding(m, errs)
	}

	seenFields := make(map[string]bool, len(b.fields))
	for _, f := range b.fields {
		key := f.Model + "." + f.Field
		if seenFields[key] {
			errs.Add(&DuplicateRenameError{Model: f.Model, Field: f.Field, Loc: f.Loc})
			continue
		}
		seenFields[key] = true
	}

	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}

	service := &Service{
		name:     b.name,
		basePath: b.basePath,
		methods:  make([]MethodSpec, len(b.methods)),
		fields:   make([]FieldSpec, len(b.fields)),
		byName:   byName,
	}
	copy(service.methods, b.methods)
	copy(service.fields, b.fields)

	return service, nil
}

// validateTemplate checks the method's path template and that path parameters
// line up with its placeholders
func (b *ServiceBuilder) validateTemplate(m MethodSpec, errs *ContractErrors) {
	template := Template(m.Call.Path())

	if err := template.Validate(); err != nil {
		errs.Add(&TemplateError{
			Method:   m.Name,
			Template: template.Raw(),
			Msg:      err.Error(),
			Loc:      m.Loc,
		})
		return
	}

	placeholders := template.Placeholders()
	for _, p := range m.Params {
		if p.Kind() != PathParam {
			continue
		}
		if _, exists := placeholders[p.Name()]; !exists {
			errs.Add(&TemplateError{
				Method:   m.Name,
				Template: template.Raw(),
				Msg: fmt.Sprintf("path parameter '%s' has no {%s} placeholder in template '%s'",
					p.Name(), p.Name(), template.Raw()),
				Loc: m.Loc,
			})
		}
	}
}

// validateEncoding checks that the method's parameters agree with its
// declared body encoding
func (b *ServiceBuilder) validateEncoding(m MethodSpec, errs *ContractErrors) {
	var bodies, urls, fields, parts int
	for _, p := range m.Params {
		switch p.Kind() {
		case BodyParam:
			bodies++
		case URLParam:
			urls++
		case FieldParam:
			fields++
		case PartParam:
			parts++
		}
	}

	if bodies > 1 {
		errs.Add(&EncodingConflictError{
			Method: m.Name,
			Msg:    fmt.Sprintf("%d body parameters declared, at most one is allowed", bodies),
			Loc:    m.Loc,
		})
	}
	if urls > 1 {
		errs.Add(&EncodingConflictError{
			Method: m.Name,
			Msg:    fmt.Sprintf("%d url parameters declared, at most one is allowed", urls),
			Loc:    m.Loc,
		})
	}
	if bodies > 0 && m.Encoding != EncodingNone {
		errs.Add(&EncodingConflictError{
			Method: m.Name,
			Msg:    fmt.Sprintf("body parameter cannot be combined with %s encoding", m.Encoding),
			Loc:    m.Loc,
		})
	}
	if fields > 0 && m.Encoding != FormURLEncoded {
		errs.Add(&EncodingConflictError{
			Method: m.Name,
			Msg:    "field parameters require form encoding",
			Loc:    m.Loc,
		})
	}
	if parts > 0 && m.Encoding != Multipart {
		errs.Add(&EncodingConflictError{
			Method: m.Name,
			Msg:    "part parameters require multipart encoding",
			Loc:    m.Loc,
		})
	}
}
