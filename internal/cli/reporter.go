package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mehdilight/retrofit-go/pkg/retrofit"
)

// DiagnosticReporter provides user-friendly reporting for contract errors
type DiagnosticReporter struct {
	out     io.Writer
	verbose bool
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(out io.Writer, verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		out:     out,
		verbose: verbose,
	}
}

// ReportError reports an error, expanding collected contract errors into one
// diagnostic per violation
func (r *DiagnosticReporter) ReportError(err error) {
	var contractErrs *retrofit.ContractErrors
	if errors.As(err, &contractErrs) {
		for _, contractErr := range contractErrs.Errors {
			r.reportContractError(contractErr)
		}
		return
	}

	var contractErr retrofit.ContractError
	if errors.As(err, &contractErr) {
		r.reportContractError(contractErr)
		return
	}

	red := color.New(color.FgRed, color.Bold)
	red.Fprint(r.out, "x ")
	fmt.Fprintf(r.out, "%s\n", err.Error())
}

// reportContractError reports a single contract error with its code and hint
func (r *DiagnosticReporter) reportContractError(err retrofit.ContractError) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(r.out, "x ")

	cyan := color.New(color.FgCyan)
	cyan.Fprintf(r.out, "[%s] ", err.Code())

	fmt.Fprintf(r.out, "%s\n", err.Error())

	if hint := err.Suggestion(); hint != "" {
		fmt.Fprintf(r.out, "    hint: %s\n", hint)
	}
}

// ReportWarning reports a non-fatal problem
func (r *DiagnosticReporter) ReportWarning(format string, args ...interface{}) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprint(r.out, "! ")
	fmt.Fprintf(r.out, format+"\n", args...)
}

// ReportSuccess reports a summary of what was validated
func (r *DiagnosticReporter) ReportSuccess(services, methods, renames int) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprint(r.out, "ok ")
	fmt.Fprintf(r.out, "%d services, %d methods, %d field renames validated\n", services, methods, renames)
}

// Debug prints debug information when verbose mode is enabled
func (r *DiagnosticReporter) Debug(format string, args ...interface{}) {
	if r.verbose {
		fmt.Fprintf(r.out, "[DEBUG] "+format+"\n", args...)
	}
}
