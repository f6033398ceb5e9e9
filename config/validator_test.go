package config

import (
	"path/filepath"
	"testing"
)

func findError(errs []ValidationError, path string) (ValidationError, bool) {
	for _, e := range errs {
		if e.Path == path {
			return e, true
		}
	}
	return ValidationError{}, false
}

func TestValidateSample(t *testing.T) {
	doc, err := Parse(Sample())
	if err != nil {
		t.Fatalf("Error parsing sample: %v", err)
	}

	errs := doc.Validate(ValidateOptions{})

	// The unmodified sample has exactly one problem: the empty hostname
	if len(errs) != 1 {
		t.Fatalf("Expected 1 validation error, got %d: %v", len(errs), errs)
	}
	if errs[0].Path != "main.server.hostname" {
		t.Errorf("Expected error on main.server.hostname, got %q", errs[0].Path)
	}
	if errs[0].Code != CodeMissingRequiredKey {
		t.Errorf("Expected code %s, got %s", CodeMissingRequiredKey, errs[0].Code)
	}

	if unknown := doc.UnknownKeys(); len(unknown) != 0 {
		t.Errorf("Expected no unknown keys in sample, got %v", unknown)
	}
}

func TestValidateValidConfig(t *testing.T) {
	doc, err := Parse(Sample())
	if err != nil {
		t.Fatalf("Error parsing sample: %v", err)
	}
	doc.Set("main", "server.hostname", "sat.example.com")

	if errs := doc.Validate(ValidateOptions{}); len(errs) != 0 {
		t.Errorf("Expected no validation errors, got %v", errs)
	}
}

func TestValidateInvalidEnum(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"project", "foo"},
		{"server.scheme", "ftp"},
	}

	for _, tc := range cases {
		doc, err := Parse(Sample())
		if err != nil {
			t.Fatalf("Error parsing sample: %v", err)
		}
		doc.Set("main", "server.hostname", "sat.example.com")
		doc.Set("main", tc.key, tc.value)

		errs := doc.Validate(ValidateOptions{})
		e, ok := findError(errs, "main."+tc.key)
		if !ok {
			t.Errorf("Expected validation error for main.%s=%s, got %v", tc.key, tc.value, errs)
			continue
		}
		if e.Code != CodeInvalidEnumValue {
			t.Errorf("Expected code %s for main.%s, got %s", CodeInvalidEnumValue, tc.key, e.Code)
		}
	}
}

func TestValidateProjectAcceptsOnlySatAndSam(t *testing.T) {
	for _, value := range []string{ProjectSat, ProjectSam} {
		doc, err := Parse(Sample())
		if err != nil {
			t.Fatalf("Error parsing sample: %v", err)
		}
		doc.Set("main", "server.hostname", "sat.example.com")
		doc.Set("main", "project", value)

		if errs := doc.Validate(ValidateOptions{}); len(errs) != 0 {
			t.Errorf("Expected project=%s to validate, got %v", value, errs)
		}
	}
}

func TestValidateBooleanKeys(t *testing.T) {
	for _, key := range []string{"remote", "smoke", "virtual_display"} {
		for _, value := range []string{"0", "1"} {
			doc, err := Parse(Sample())
			if err != nil {
				t.Fatalf("Error parsing sample: %v", err)
			}
			doc.Set("main", "server.hostname", "sat.example.com")
			doc.Set("main", key, value)

			if errs := doc.Validate(ValidateOptions{}); len(errs) != 0 {
				t.Errorf("Expected %s=%s to validate, got %v", key, value, errs)
			}
		}

		for _, value := range []string{"2", "true", "yes"} {
			doc, err := Parse(Sample())
			if err != nil {
				t.Fatalf("Error parsing sample: %v", err)
			}
			doc.Set("main", "server.hostname", "sat.example.com")
			doc.Set("main", key, value)

			errs := doc.Validate(ValidateOptions{})
			e, ok := findError(errs, "main."+key)
			if !ok {
				t.Errorf("Expected validation error for %s=%s, got %v", key, value, errs)
				continue
			}
			if e.Code != CodeInvalidBoolean {
				t.Errorf("Expected code %s for %s=%s, got %s", CodeInvalidBoolean, key, value, e.Code)
			}
		}
	}
}

func TestValidatePort(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"443", true},
		{"8443", true},
		{"0", false},
		{"65536", false},
		{"abc", false},
	}

	for _, tc := range cases {
		doc, err := Parse(Sample())
		if err != nil {
			t.Fatalf("Error parsing sample: %v", err)
		}
		doc.Set("main", "server.hostname", "sat.example.com")
		doc.Set("main", "server.port", tc.value)

		errs := doc.Validate(ValidateOptions{})
		e, found := findError(errs, "main.server.port")
		if tc.valid && found {
			t.Errorf("Expected port %s to validate, got %v", tc.value, e)
		}
		if !tc.valid {
			if !found {
				t.Errorf("Expected validation error for port %s", tc.value)
			} else if e.Code != CodeInvalidInteger {
				t.Errorf("Expected code %s for port %s, got %s", CodeInvalidInteger, tc.value, e.Code)
			}
		}
	}
}

func TestValidateVerbosity(t *testing.T) {
	doc, err := Parse(Sample())
	if err != nil {
		t.Fatalf("Error parsing sample: %v", err)
	}
	doc.Set("main", "server.hostname", "sat.example.com")
	doc.Set("main", "verbosity", "high")

	errs := doc.Validate(ValidateOptions{})
	e, ok := findError(errs, "main.verbosity")
	if !ok {
		t.Fatalf("Expected validation error for verbosity=high, got %v", errs)
	}
	if e.Code != CodeInvalidInteger {
		t.Errorf("Expected code %s, got %s", CodeInvalidInteger, e.Code)
	}
}

func TestValidateMalformedURL(t *testing.T) {
	doc, err := Parse(Sample())
	if err != nil {
		t.Fatalf("Error parsing sample: %v", err)
	}
	doc.Set("main", "server.hostname", "sat.example.com")
	doc.Set("main", "manifest.fake_url", "not-a-url")

	errs := doc.Validate(ValidateOptions{})
	e, ok := findError(errs, "main.manifest.fake_url")
	if !ok {
		t.Fatalf("Expected validation error for malformed URL, got %v", errs)
	}
	if e.Code != CodeMalformedURL {
		t.Errorf("Expected code %s, got %s", CodeMalformedURL, e.Code)
	}
}

func TestValidateSkipsUnresolvedTemplate(t *testing.T) {
	// Without a hostname the docker URL template cannot be checked
	doc, err := Parse([]byte("[docker]\ninternal_url=http://{server_hostname}:2375\n"))
	if err != nil {
		t.Fatalf("Error parsing config: %v", err)
	}

	errs := doc.Validate(ValidateOptions{})
	if _, found := findError(errs, "docker.internal_url"); found {
		t.Errorf("Expected no URL error for unresolved template, got %v", errs)
	}
}

func TestValidateSubstitutedTemplate(t *testing.T) {
	content := `[main]
server.hostname=sat.example.com

[docker]
internal_url=http://{server_hostname}:2375
`
	doc, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Error parsing config: %v", err)
	}

	errs := doc.Validate(ValidateOptions{})
	if _, found := findError(errs, "docker.internal_url"); found {
		t.Errorf("Expected substituted docker URL to validate, got %v", errs)
	}
}

func TestValidateCheckPaths(t *testing.T) {
	doc, err := Parse(Sample())
	if err != nil {
		t.Fatalf("Error parsing sample: %v", err)
	}
	doc.Set("main", "server.hostname", "sat.example.com")

	missing := filepath.Join(t.TempDir(), "does", "not", "exist")
	doc.Set("main", "server.ssh.key_private", missing)

	// Off by default
	if errs := doc.Validate(ValidateOptions{}); len(errs) != 0 {
		t.Errorf("Expected no errors without CheckPaths, got %v", errs)
	}

	errs := doc.Validate(ValidateOptions{CheckPaths: true})
	e, ok := findError(errs, "main.server.ssh.key_private")
	if !ok {
		t.Fatalf("Expected path-not-found error, got %v", errs)
	}
	if e.Code != CodePathNotFound {
		t.Errorf("Expected code %s, got %s", CodePathNotFound, e.Code)
	}
}

func TestUnknownKeys(t *testing.T) {
	content := `[main]
server.hostname=sat.example.com
bogus=1

[experimental]
feature=on
`
	doc, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Error parsing config: %v", err)
	}

	unknown := doc.UnknownKeys()
	if len(unknown) != 2 {
		t.Fatalf("Expected 2 unknown keys, got %d: %v", len(unknown), unknown)
	}
	want := map[string]bool{"main.bogus": true, "experimental.feature": true}
	for _, key := range unknown {
		if !want[key] {
			t.Errorf("Unexpected unknown key: %q", key)
		}
	}

	// Unknown keys are tolerated, never validation errors
	if errs := doc.Validate(ValidateOptions{}); len(errs) != 0 {
		t.Errorf("Expected unknown keys to be tolerated, got %v", errs)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	e := ValidationError{Path: "main.project", Code: CodeInvalidEnumValue, Message: "invalid value"}
	if got := e.Error(); got != "main.project: invalid value" {
		t.Errorf("Unexpected error string: %q", got)
	}
}
