package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/mehdilight/retrofit-go/internal/cli"
)

func main() {
	// Define command-line flags
	var (
		routesFlag  = flag.Bool("routes", false, "Print the validated route table")
		openapiFlag = flag.String("openapi", "", "Write an OpenAPI v3 document to the given file")
		titleFlag   = flag.String("title", "retrofit services", "Title for the exported OpenAPI document")
		versionFlag = flag.String("doc-version", "0.1.0", "Version for the exported OpenAPI document")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and debug logging")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <manifest files...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Retrofit Annotation Linter\n")
		fmt.Fprintf(os.Stderr, "Loads YAML service manifests, validates their retrofit:: directives, and reports contract errors.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s api.yaml                         # Validate one manifest\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -routes api.yaml billing.yaml    # Validate and print the route table\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -openapi api-doc.yaml api.yaml   # Validate and export an OpenAPI document\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -verbose api.yaml                # Enable detailed output\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one manifest file is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *verboseFlag {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	app := cli.NewApp(cli.Options{
		Routes:      *routesFlag,
		OpenAPIPath: *openapiFlag,
		Title:       *titleFlag,
		Version:     *versionFlag,
		Verbose:     *verboseFlag,
		Manifests:   args,
	}, os.Stdout)

	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
