package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/fire-planner/internal/domain"
)

// GenerateReport writes the comparison in the requested format under dir and
// returns the files it created. "all" writes the verbose console report, the
// detailed CSV and the HTML report.
func GenerateReport(results *domain.PlanComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range []string{"console", "detailed-csv", "html"} {
			f := GetFormatterByName(name)
			file, err := WriteFormatted(f, results, dir)
			if err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	file, err := WriteFormatted(f, results, dir)
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}

// UnsupportedFormatError enriches ErrUnsupportedFormat with the available names and aliases.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(append(AvailableFormatterNames(), "all"), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
