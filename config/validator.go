package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Code classifies a validation failure.
type Code string

const (
	CodeMissingRequiredKey Code = "missing-required-key"
	CodeInvalidEnumValue   Code = "invalid-enum-value"
	CodeInvalidBoolean     Code = "invalid-boolean"
	CodeInvalidInteger     Code = "invalid-integer"
	CodeMalformedURL       Code = "malformed-url"
	CodePathNotFound       Code = "path-not-found"
)

// ValidationError names the offending section/key together with what is
// wrong with it.
type ValidationError struct {
	Path    string
	Code    Code
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateOptions controls optional checks.
type ValidateOptions struct {
	// CheckPaths verifies that filesystem-path values exist on this
	// machine. Off by default: the shipped sample references paths that
	// only exist on the operator's hosts.
	CheckPaths bool
}

// Validate checks every recognized key's effective value against the
// schema and returns all failures at once. No error is silently
// recovered; an empty slice means the configuration is usable.
func (d *Document) Validate(opts ValidateOptions) []ValidationError {
	var errs []ValidationError
	add := func(ks KeySpec, code Code, format string, args ...interface{}) {
		errs = append(errs, ValidationError{
			Path:    ks.Path(),
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	for _, ks := range Schema {
		value := d.effectiveResolved(ks)

		if ks.Required && value == "" {
			add(ks, CodeMissingRequiredKey, "required key is empty, set it before running tests")
			continue
		}
		if value == "" {
			continue
		}

		switch ks.Kind {
		case KindBoolInt:
			if value != "0" && value != "1" {
				add(ks, CodeInvalidBoolean, "invalid boolean %q (must be 0 or 1)", value)
			}
		case KindInt:
			if n, err := strconv.Atoi(value); err != nil {
				add(ks, CodeInvalidInteger, "invalid integer %q", value)
			} else if n < 0 {
				add(ks, CodeInvalidInteger, "must not be negative, got %d", n)
			}
		case KindPort:
			if n, err := strconv.Atoi(value); err != nil {
				add(ks, CodeInvalidInteger, "invalid port %q", value)
			} else if n < 1 || n > 65535 {
				add(ks, CodeInvalidInteger, "port %d out of range 1..65535", n)
			}
		case KindEnum:
			if !stringInSlice(value, ks.Enum) {
				add(ks, CodeInvalidEnumValue, "invalid value %q, must be one of: %s", value, strings.Join(ks.Enum, ", "))
			}
		case KindURL:
			// An unresolved hostname template cannot be checked as a URL.
			if strings.Contains(value, HostnamePlaceholder) {
				continue
			}
			if err := checkURL(value); err != nil {
				add(ks, CodeMalformedURL, "invalid URL %q: %v", value, err)
			}
		case KindPath:
			if opts.CheckPaths {
				if _, err := os.Stat(value); os.IsNotExist(err) {
					add(ks, CodePathNotFound, "path does not exist: %s", value)
				}
			}
		}
	}

	return errs
}

// UnknownKeys returns the dotted names of keys present in the document
// that the schema does not recognize. They are tolerated but unused, so
// callers report them as warnings rather than errors.
func (d *Document) UnknownKeys() []string {
	var unknown []string
	for _, section := range d.Sections() {
		for _, name := range d.Keys(section) {
			if _, ok := LookupKey(section, name); !ok {
				unknown = append(unknown, section+"."+name)
			}
		}
	}
	return unknown
}

func checkURL(value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return err
	}
	if u.Scheme != SchemeHTTP && u.Scheme != SchemeHTTPS {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func stringInSlice(str string, slice []string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}
