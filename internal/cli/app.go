package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bndr/gotabulate"
	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"

	"github.com/mehdilight/retrofit-go/pkg/retrofit"
	"github.com/mehdilight/retrofit-go/pkg/retrofit/manifest"
	"github.com/mehdilight/retrofit-go/pkg/retrofit/openapi"
)

// Options configures a CLI run
type Options struct {
	Routes      bool     // Print the route table after validation
	OpenAPIPath string   // Write an OpenAPI document to this path, empty to skip
	Title       string   // OpenAPI document title
	Version     string   // OpenAPI document version
	Verbose     bool     // Enable debug output
	Manifests   []string // Manifest files to load
}

// App drives the manifest validation workflow
type App struct {
	opts     Options
	out      io.Writer
	reporter *DiagnosticReporter
}

// NewApp creates a new CLI app writing human output to out
func NewApp(opts Options, out io.Writer) *App {
	return &App{
		opts:     opts,
		out:      out,
		reporter: NewDiagnosticReporter(out, opts.Verbose),
	}
}

// Run loads every manifest, validates the services it declares, and performs
// the requested outputs
func (a *App) Run() error {
	registry := retrofit.NewRegistry()

	var methods, renames int
	for _, path := range a.opts.Manifests {
		log.WithField("manifest", path).Debug("loading manifest")

		m, err := manifest.Load(path)
		if err != nil {
			a.reporter.ReportError(err)
			return err
		}

		services, err := m.Build()
		if err != nil {
			a.reporter.ReportError(err)
			return err
		}

		for _, service := range services {
			if err := registry.Register(service); err != nil {
				a.reporter.ReportError(err)
				return err
			}
			methods += len(service.Methods())
			renames += len(service.Fields())
			log.WithFields(log.Fields{
				"service": service.Name(),
				"methods": len(service.Methods()),
			}).Debug("service registered")
		}
	}

	a.reporter.ReportSuccess(len(registry.List()), methods, renames)

	if a.opts.Routes {
		table, err := a.renderRoutes(registry)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, table)
	}

	if a.opts.OpenAPIPath != "" {
		if err := a.writeOpenAPI(registry); err != nil {
			a.reporter.ReportError(err)
			return err
		}
		log.WithField("file", a.opts.OpenAPIPath).Info("OpenAPI document written")
	}

	return nil
}

// renderRoutes renders every registered operation as a table
func (a *App) renderRoutes(registry retrofit.Registry) (string, error) {
	var rows [][]any
	for _, name := range registry.List() {
		service, err := registry.Get(name)
		if err != nil {
			return "", err
		}
		for _, m := range service.Methods() {
			rows = append(rows, []any{
				service.Name(),
				m.Name,
				m.Call.Method(),
				service.BasePath() + m.Call.Path(),
				m.Encoding.String(),
			})
		}
	}

	if len(rows) == 0 {
		return "no routes registered", nil
	}

	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"service", "method", "verb", "path", "encoding"})
	t.SetAlign("left")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(85)
	return t.Render("grid"), nil
}

// writeOpenAPI exports the registered services as an OpenAPI YAML document
func (a *App) writeOpenAPI(registry retrofit.Registry) error {
	services := make([]*retrofit.Service, 0, len(registry.List()))
	for _, name := range registry.List() {
		service, err := registry.Get(name)
		if err != nil {
			return err
		}
		services = append(services, service)
	}

	doc := openapi.Export(a.opts.Title, a.opts.Version, services...)

	// kin-openapi only knows how to marshal itself as JSON, so round-trip
	// through a generic map to emit YAML
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal OpenAPI document: %w", err)
	}

	var generic map[string]interface{}
	if err := json.Unmarshal(jsonData, &generic); err != nil {
		return fmt.Errorf("failed to convert OpenAPI document: %w", err)
	}

	yamlData, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to render OpenAPI yaml: %w", err)
	}

	if err := os.WriteFile(a.opts.OpenAPIPath, yamlData, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.opts.OpenAPIPath, err)
	}

	return nil
}
