package textract

import "slices"

// OutputFormat identifies the desired shape of extracted content.
type OutputFormat string

// OutputFormat constants. Only FormatText is produced today; the others are
// accepted and extract as plain text.
const (
	FormatText     OutputFormat = "txt"
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
	FormatXML      OutputFormat = "xml"
	FormatXMLTEI   OutputFormat = "xmltei"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
)

// OutputFormats lists every known output format.
var OutputFormats = []OutputFormat{
	FormatText,
	FormatMarkdown,
	FormatHTML,
	FormatXML,
	FormatXMLTEI,
	FormatJSON,
	FormatCSV,
}

// ExtractionConfig bundles the options of a single extraction.
//
// The Include* toggles are reserved for richer extraction. The default
// body-text extractor accepts them but does not change its output.
type ExtractionConfig struct {
	OutputFormat      OutputFormat `json:"outputFormat"`
	IncludeFormatting bool         `json:"includeFormatting"`
	IncludeLinks      bool         `json:"includeLinks"`
	IncludeImages     bool         `json:"includeImages"`
	IncludeTables     bool         `json:"includeTables"`
}

// DefaultConfig returns a configuration requesting plain text with every
// optional element disabled.
func DefaultConfig() ExtractionConfig {
	return ExtractionConfig{OutputFormat: FormatText}
}

// Validate returns an error if the output format is not a known format.
// An empty format is valid and means plain text. Extractors never call
// Validate; it exists for calling layers that want strict input.
func (c ExtractionConfig) Validate() error {
	if c.OutputFormat == "" {
		return nil
	}
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return Errorf(EINVALID, "unknown output format %q", c.OutputFormat)
	}
	return nil
}
