// Package openapi exports registered service definitions as an OpenAPI v3
// document. The export is purely descriptive: it maps each method's
// (verb, path) pair and parameter markers onto operations so that the
// contract can be inspected with standard tooling.
package openapi

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/mehdilight/retrofit-go/pkg/retrofit"
)

// Export builds an OpenAPI v3 document describing the given services
func Export(title, version string, services ...*retrofit.Service) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, service := range services {
		exportService(doc, service)
	}

	return doc
}

// exportService adds one operation per service method to the document
func exportService(doc *openapi3.T, service *retrofit.Service) {
	for _, method := range service.Methods() {
		path := joinPath(service.BasePath(), retrofit.Template(method.Call.Path()))

		item := doc.Paths.Value(path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(path, item)
		}

		item.SetOperation(method.Call.Method(), buildOperation(service, method))
	}
}

// buildOperation converts one method spec into an OpenAPI operation
func buildOperation(service *retrofit.Service, method retrofit.MethodSpec) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = service.Name() + "." + method.Name
	op.Tags = []string{service.Name()}
	op.Responses = openapi3.NewResponses()

	template := retrofit.Template(method.Call.Path())
	for _, part := range template.Parts() {
		if part.Type != retrofit.PlaceholderPart {
			continue
		}
		param := openapi3.NewPathParameter(part.Value).WithSchema(placeholderSchema(part.ParamType))
		op.AddParameter(param)
	}

	for _, p := range method.Params {
		switch p.Kind() {
		case retrofit.QueryParam:
			op.AddParameter(openapi3.NewQueryParameter(p.Name()).WithSchema(openapi3.NewStringSchema()))
		case retrofit.HeaderParam:
			op.AddParameter(openapi3.NewHeaderParameter(p.Name()).WithSchema(openapi3.NewStringSchema()))
		}
	}

	if body := buildRequestBody(method); body != nil {
		op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}

	return op
}

// buildRequestBody derives a request body from body, field, and part
// parameters, honoring the declared encoding
func buildRequestBody(method retrofit.MethodSpec) *openapi3.RequestBody {
	for _, p := range method.Params {
		if p.Kind() == retrofit.BodyParam {
			return openapi3.NewRequestBody().
				WithRequired(true).
				WithContent(openapi3.NewContentWithJSONSchema(openapi3.NewObjectSchema()))
		}
	}

	schema := openapi3.NewObjectSchema()
	var hasFormFields bool
	for _, p := range method.Params {
		if p.Kind() == retrofit.FieldParam || p.Kind() == retrofit.PartParam {
			schema = schema.WithProperty(p.Name(), openapi3.NewStringSchema())
			hasFormFields = true
		}
	}
	if !hasFormFields {
		return nil
	}

	mediaType := "application/x-www-form-urlencoded"
	if method.Encoding == retrofit.Multipart {
		mediaType = "multipart/form-data"
	}

	return openapi3.NewRequestBody().
		WithRequired(true).
		WithContent(openapi3.NewContentWithSchema(schema, []string{mediaType}))
}

// placeholderSchema maps a template placeholder type to an OpenAPI schema
func placeholderSchema(paramType string) *openapi3.Schema {
	switch retrofit.ResolveTypeAlias(paramType) {
	case "int":
		return openapi3.NewIntegerSchema()
	case "float64", "float32":
		return openapi3.NewFloat64Schema()
	case "uuid":
		return openapi3.NewStringSchema().WithFormat("uuid")
	default:
		return openapi3.NewStringSchema()
	}
}

// joinPath joins a service base path with a method template, rendering
// placeholders in OpenAPI {name} form
func joinPath(basePath string, template retrofit.Template) string {
	var sb strings.Builder
	for _, part := range template.Parts() {
		switch part.Type {
		case retrofit.StaticPart:
			sb.WriteString(part.Value)
		case retrofit.PlaceholderPart:
			sb.WriteString("{" + part.Value + "}")
		case retrofit.WildcardPart:
			sb.WriteString("*")
		}
	}

	path := strings.TrimSuffix(basePath, "/") + sb.String()
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}
