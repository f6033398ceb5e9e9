package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// HostnamePlaceholder is replaced in docker URLs with the value of
// main server.hostname when that value is set.
const HostnamePlaceholder = "{server_hostname}"

// envPrefix is the prefix of environment variables that override file
// values, e.g. ROBOTTELO_MAIN_SERVER_HOSTNAME.
const envPrefix = "ROBOTTELO"

// Document is a parsed properties file. It keeps the underlying INI
// structure so that a load→save cycle preserves keys, values and comments.
type Document struct {
	file *ini.File
	path string
}

// Load reads and parses a properties file from the given path.
func Load(path string) (*Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return &Document{file: f, path: path}, nil
}

// Parse parses properties data held in memory.
func Parse(data []byte) (*Document, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing config data: %w", err)
	}
	return &Document{file: f}, nil
}

// Path returns the file path the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

// SaveTo writes the document back to disk, preserving keys, values and
// comments.
func (d *Document) SaveTo(path string) error {
	if err := d.file.SaveTo(path); err != nil {
		return fmt.Errorf("error writing config file %s: %w", path, err)
	}
	return nil
}

// WriteTo serializes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.file.WriteTo(w)
}

// Sections returns the section names present in the document, in file
// order. The implicit default section is omitted.
func (d *Document) Sections() []string {
	var names []string
	for _, name := range d.file.SectionStrings() {
		if name == ini.DefaultSection {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Keys returns the key names present in a section, in file order.
func (d *Document) Keys(section string) []string {
	sec, err := d.file.GetSection(section)
	if err != nil {
		return nil
	}
	return sec.KeyStrings()
}

// Raw returns the literal value of a key as written in the file, without
// defaults, overrides or substitution. The second return reports whether
// the key is present.
func (d *Document) Raw(section, name string) (string, bool) {
	sec, err := d.file.GetSection(section)
	if err != nil {
		return "", false
	}
	if !sec.HasKey(name) {
		return "", false
	}
	return sec.Key(name).String(), true
}

// Set replaces (or adds) a key's literal value in the document.
func (d *Document) Set(section, name, value string) {
	d.file.Section(section).Key(name).SetValue(value)
}

// EnvKey returns the environment variable that overrides a section/key
// pair, e.g. main/server.hostname -> ROBOTTELO_MAIN_SERVER_HOSTNAME.
func EnvKey(section, name string) string {
	flat := strings.ReplaceAll(section+"_"+name, ".", "_")
	return envPrefix + "_" + strings.ToUpper(flat)
}

// effective resolves a recognized key to its effective string value:
// environment override first, then the file value, then the documented
// default when the key is absent or empty.
func (d *Document) effective(ks KeySpec) string {
	if v, ok := os.LookupEnv(EnvKey(ks.Section, ks.Name)); ok {
		return v
	}
	if v, ok := d.Raw(ks.Section, ks.Name); ok && v != "" {
		return v
	}
	return ks.Default
}

// effectiveResolved is effective plus placeholder substitution for the
// docker internal_url template.
func (d *Document) effectiveResolved(ks KeySpec) string {
	v := d.effective(ks)
	if ks.Section == "docker" && ks.Name == "internal_url" {
		v = d.substituteHostname(v)
	}
	return v
}

// substituteHostname replaces the hostname placeholder when the main
// hostname is set. An unresolvable template is returned unchanged.
func (d *Document) substituteHostname(value string) string {
	if !strings.Contains(value, HostnamePlaceholder) {
		return value
	}
	host, _ := LookupKey("main", "server.hostname")
	if h := d.effective(host); h != "" {
		return strings.ReplaceAll(value, HostnamePlaceholder, h)
	}
	return value
}

// Properties returns the effective configuration as a flat map keyed by
// dotted section.key names, mirroring how the test framework reads it
// (conf.properties.get("main.smoke", "0")).
func (d *Document) Properties() map[string]string {
	props := make(map[string]string, len(Schema))
	for _, ks := range Schema {
		props[ks.Path()] = d.effectiveResolved(ks)
	}
	return props
}

// Property returns one effective value by dotted section.key name, or
// fallback when the property is not recognized.
func (d *Document) Property(key, fallback string) string {
	section, name, ok := strings.Cut(key, ".")
	if !ok {
		return fallback
	}
	ks, ok := LookupKey(section, name)
	if !ok {
		return fallback
	}
	return d.effectiveResolved(ks)
}

// Snapshot builds the typed effective configuration. It fails on values
// that cannot be represented in the typed form (use Validate for the full
// error report).
func (d *Document) Snapshot() (*Config, error) {
	get := func(section, name string) string {
		ks, _ := LookupKey(section, name)
		return d.effectiveResolved(ks)
	}

	var errs []string
	parseBool := func(section, name string) bool {
		v := get(section, name)
		switch v {
		case "0":
			return false
		case "1":
			return true
		}
		errs = append(errs, fmt.Sprintf("%s.%s: invalid boolean %q (must be 0 or 1)", section, name, v))
		return false
	}
	parseInt := func(section, name string) int {
		v := get(section, name)
		if v == "" {
			return 0
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s.%s: invalid integer %q", section, name, v))
			return 0
		}
		return n
	}

	cfg := &Config{
		Main: MainConfig{
			ServerHostname:       get("main", "server.hostname"),
			ServerScheme:         get("main", "server.scheme"),
			ServerPort:           parseInt("main", "server.port"),
			SSHKeyPrivate:        get("main", "server.ssh.key_private"),
			SSHUsername:          get("main", "server.ssh.username"),
			ScreenshotsBasePath:  get("main", "screenshots.base_path"),
			Project:              get("main", "project"),
			Locale:               get("main", "locale"),
			Remote:               parseBool("main", "remote"),
			Smoke:                parseBool("main", "smoke"),
			ManifestFakeURL:      get("main", "manifest.fake_url"),
			ManifestKeyURL:       get("main", "manifest.key_url"),
			ManifestCertURL:      get("main", "manifest.cert_url"),
			Verbosity:            parseInt("main", "verbosity"),
			VirtualDisplay:       parseBool("main", "virtual_display"),
			WindowManagerCommand: get("main", "window_manager_command"),
		},
		Clients: ClientsConfig{
			ProvisioningServer: get("clients", "provisioning_server"),
			ImageDir:           get("clients", "image_dir"),
		},
		Docker: DockerConfig{
			InternalURL: get("docker", "internal_url"),
			ExternalURL: get("docker", "external_url"),
		},
		Foreman: ForemanConfig{
			AdminUsername: get("foreman", "admin.username"),
			AdminPassword: get("foreman", "admin.password"),
		},
		SauceLabs: SauceLabsConfig{
			Driver: get("saucelabs", "driver"),
		},
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}
