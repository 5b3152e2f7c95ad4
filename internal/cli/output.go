package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/servicelog/internal/domain"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The action ran but was refused (incomplete form, etc.)
	ExitCommandError = 2 // Command error (bad arguments, storage unreachable, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// CLIResponse is the envelope of every JSON response.
type CLIResponse struct {
	Status  string `json:"status"`            // "ok" or "error"
	Message string `json:"message,omitempty"` // form status line, if any
	Data    any    `json:"data,omitempty"`
}

// OutputFormatter writes records and status lines in the selected format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Records writes records. Text is an aligned table; csv and yaml are the
// bare records; json wraps them in a CLIResponse.
func (f *OutputFormatter) Records(records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	switch f.Format {
	case "json":
		return f.json(CLIResponse{Status: "ok", Data: records})
	case "yaml":
		return f.yaml(records)
	case "csv":
		return WriteCSV(f.Writer, records)
	default:
		return f.table(records)
	}
}

// Status writes a one-line status message, with the affected record if any.
func (f *OutputFormatter) Status(status string, rec *domain.Record) error {
	switch f.Format {
	case "json":
		resp := CLIResponse{Status: "ok", Message: status}
		if rec != nil {
			resp.Data = rec
		}
		return f.json(resp)
	case "yaml":
		out := map[string]any{"status": status}
		if rec != nil {
			out["data"] = rec
		}
		return f.yaml(out)
	default:
		if rec != nil {
			_, err := fmt.Fprintf(f.Writer, "%s (%s)\n", status, rec.ID)
			return err
		}
		_, err := fmt.Fprintln(f.Writer, status)
		return err
	}
}

func (f *OutputFormatter) json(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (f *OutputFormatter) yaml(v any) error {
	enc := yaml.NewEncoder(f.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (f *OutputFormatter) table(records []domain.Record) error {
	tw := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPROVIDER\tORDER\tTRUCK\tODOMETER\tHOURS\tSTART\tEND\tTYPE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.ProviderID, r.ServiceOrder, r.TruckID,
			strconv.FormatFloat(r.Odometer, 'f', -1, 64),
			strconv.FormatFloat(r.EngineHours, 'f', -1, 64),
			r.StartDate, r.EndDate, r.Type)
	}
	fmt.Fprintf(tw, "\n%d record(s)\n", len(records))
	return tw.Flush()
}

// WriteCSV writes records as CSV with a domain.CSVHeaders header row.
func WriteCSV(w io.Writer, records []domain.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.CSVHeaders); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.CSVRow()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
