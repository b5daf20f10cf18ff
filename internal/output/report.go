package output

import (
	"fmt"
	"io"

	"github.com/rpgo/rothtrad/internal/domain"
)

// Render formats the projection and writes it to w.
func Render(w io.Writer, p *domain.Projection, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	data, err := f.Format(p)
	if err != nil {
		return fmt.Errorf("failed to format %s output: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes the projection to timestamped files in dir and returns
// their names. "all" writes the console, detailed CSV and HTML reports.
func GenerateReport(p *domain.Projection, format, dir string) ([]string, error) {
	var formatters []Formatter
	if format == "all" {
		formatters = []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}, HTMLFormatter{}}
	} else {
		f := GetFormatterByName(format)
		if f == nil {
			return nil, unsupported(format)
		}
		formatters = []Formatter{f}
	}

	var written []string
	for _, f := range formatters {
		name, err := WriteFormatted(f, p, dir, ExtensionFor(f))
		if err != nil {
			return written, fmt.Errorf("failed to write %s report: %w", f.Name(), err)
		}
		written = append(written, name)
	}
	return written, nil
}
