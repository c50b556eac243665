// Package xml provides parsing of persisted resolution reports and a repository over a report cache.
package xml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/resolvereport/internal/domain/entities"
)

// ReportParser parses persisted resolution reports.
// It holds no state, a single parser may be shared between goroutines.
type ReportParser struct{}

// NewReportParser creates a new report parser
func NewReportParser() *ReportParser {
	return &ReportParser{}
}

// ParseFile parses the report stored at filePath
func (p *ReportParser) ParseFile(filePath string) (*entities.ParsedReport, error) {
	//nolint:gosec // G304: filePath is computed by the report locator
	f, err := os.Open(filePath)
	if err != nil {
		return nil, &entities.ReportFormatError{Path: filePath, Err: err}
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	return p.Parse(f, filePath)
}

// Parse reads a report document from r. source names the document in errors.
func (p *ReportParser) Parse(r io.Reader, source string) (*entities.ParsedReport, error) {
	report, err := parseReport(r)
	if err != nil {
		return nil, &entities.ReportFormatError{Path: source, Err: err}
	}
	return report, nil
}

func parseReport(r io.Reader) (*entities.ParsedReport, error) {
	decoder := xml.NewDecoder(r)
	report := entities.NewParsedReport()
	state := parserState{phase: phaseStart}
	sawRoot := false

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			sawRoot = true
			next, out, err := state.startElement(t.Name.Local, attributesOf(t))
			if err != nil {
				return nil, err
			}
			out.applyTo(report)
			state = next
		case xml.EndElement:
			state = state.endElement(t.Name.Local)
		}
	}

	if !sawRoot {
		return nil, errors.New("malformed document: no root element")
	}
	return report, nil
}

func attributesOf(el xml.StartElement) attributes {
	attrs := make(attributes, len(el.Attr))
	for _, a := range el.Attr {
		attrs[a.Name.Local] = a.Value
	}
	return attrs
}
