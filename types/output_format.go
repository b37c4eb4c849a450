package types

import "fmt"

// OutputFormat selects how a contract info record is rendered.
type OutputFormat int

const (
	// OutputFormatHumanReadable renders one labelled line per field.
	OutputFormatHumanReadable OutputFormat = iota
	// OutputFormatJSON renders a pretty printed JSON document.
	OutputFormatJSON
)

// OutputFormatFromJSONFlag maps the --output-json flag onto an OutputFormat.
func OutputFormatFromJSONFlag(outputJSON bool) OutputFormat {
	if outputJSON {
		return OutputFormatJSON
	}

	return OutputFormatHumanReadable
}

// Validate checks that the format is one of the known values.
func (f OutputFormat) Validate() error {
	switch f {
	case OutputFormatHumanReadable, OutputFormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format: %d", int(f))
	}
}

func (f OutputFormat) String() string {
	switch f {
	case OutputFormatHumanReadable:
		return "human-readable"
	case OutputFormatJSON:
		return "json"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}
