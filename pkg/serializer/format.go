package serializer

// StdoutURI is the special output path indicating stdout.
const StdoutURI = "-"

// Format selects the output encoding for serialized reports.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// IsUnknown reports whether the format is none of the supported ones.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	}
	return true
}
