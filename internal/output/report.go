package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/satelliteqe/roboconf/config"
)

// Reporter formats validation results for display.
type Reporter struct {
	NoColor bool
}

// NewReporter creates a reporter with the given options.
func NewReporter(noColor bool) *Reporter {
	return &Reporter{
		NoColor: noColor,
	}
}

func (r *Reporter) scheme() *ColorScheme {
	if r.NoColor {
		return NoColorScheme()
	}
	return DefaultColorScheme()
}

// FormatReport renders the outcome of validating one properties file:
// every error with its offending key and code, unknown keys as warnings,
// and a one-line summary.
func (r *Reporter) FormatReport(path string, errs []config.ValidationError, unknown []string) string {
	scheme := r.scheme()
	var buf strings.Builder

	fmt.Fprintf(&buf, "Validating %s\n", scheme.File.Sprint(path))

	for _, e := range errs {
		fmt.Fprintf(&buf, "  %s %s: %s [%s]\n",
			ErrorIcon(r.NoColor),
			scheme.Key.Sprint(e.Path),
			e.Message,
			scheme.Code.Sprint(string(e.Code)))
	}

	for _, key := range unknown {
		fmt.Fprintf(&buf, "  %s %s: unknown key, tolerated but unused\n",
			WarningIcon(r.NoColor),
			scheme.Key.Sprint(key))
	}

	if len(errs) == 0 {
		fmt.Fprintf(&buf, "  %s %s\n", SuccessIcon(r.NoColor), scheme.Success.Sprint("configuration is valid"))
	} else {
		word := "errors"
		if len(errs) == 1 {
			word = "error"
		}
		fmt.Fprintf(&buf, "  %s\n", scheme.Error.Sprintf("%d %s found", len(errs), word))
	}

	return buf.String()
}

// FormatProperties renders the effective configuration as sorted
// key=value lines, used by validate --verbose.
func (r *Reporter) FormatProperties(props map[string]string) string {
	scheme := r.scheme()

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	buf.WriteString("Effective configuration:\n")
	for _, k := range keys {
		fmt.Fprintf(&buf, "  %s=%s\n", scheme.Key.Sprint(k), scheme.Value.Sprint(props[k]))
	}
	return buf.String()
}
