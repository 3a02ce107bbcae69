package types

import "fmt"

// ReportFormat selects how a sync report is rendered
type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatTOML ReportFormat = "toml"
)

// IsValid checks if the report format is supported
func (f ReportFormat) IsValid() bool {
	switch f {
	case ReportFormatText, ReportFormatJSON, ReportFormatTOML:
		return true
	default:
		return false
	}
}

func (f ReportFormat) String() string {
	return string(f)
}

// ParseReportFormat parses a string into a ReportFormat
func ParseReportFormat(s string) (ReportFormat, error) {
	f := ReportFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid report format: %s", s)
	}
	return f, nil
}
