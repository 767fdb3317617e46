package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/mehdilight/retrofit-go/pkg/retrofit"
)

func init() {
	// Keep assertions free of ANSI escape codes
	color.NoColor = true
}

func TestDiagnosticReporter_ReportError(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(&buf, false)

	reporter.ReportError(errors.New("something broke"))

	assert.Equal(t, "x something broke\n", buf.String())
}

func TestDiagnosticReporter_ReportContractError(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(&buf, false)

	reporter.ReportError(&retrofit.MissingVerbError{Method: "GetUser"})

	out := buf.String()
	assert.Contains(t, out, "x [MissingVerb] ")
	assert.Contains(t, out, "'GetUser' has no HTTP method marker")
	assert.Contains(t, out, "    hint: ")
}

func TestDiagnosticReporter_ExpandsCollectedErrors(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(&buf, false)

	errs := &retrofit.ContractErrors{}
	errs.Add(&retrofit.MissingVerbError{Method: "A"})
	errs.Add(&retrofit.MissingVerbError{Method: "B"})

	reporter.ReportError(errs)

	out := buf.String()
	assert.Contains(t, out, "'A' has no HTTP method marker")
	assert.Contains(t, out, "'B' has no HTTP method marker")
}

func TestDiagnosticReporter_ReportWarning(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(&buf, false)

	reporter.ReportWarning("manifest %s is empty", "a.yaml")

	assert.Equal(t, "! manifest a.yaml is empty\n", buf.String())
}

func TestDiagnosticReporter_ReportSuccess(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(&buf, false)

	reporter.ReportSuccess(2, 7, 3)

	assert.Equal(t, "ok 2 services, 7 methods, 3 field renames validated\n", buf.String())
}

func TestDiagnosticReporter_Debug(t *testing.T) {
	var quiet bytes.Buffer
	NewDiagnosticReporter(&quiet, false).Debug("hidden")
	assert.Empty(t, quiet.String())

	var verbose bytes.Buffer
	NewDiagnosticReporter(&verbose, true).Debug("loaded %d", 3)
	assert.Equal(t, "[DEBUG] loaded 3\n", verbose.String())
}
