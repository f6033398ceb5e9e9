package config

import "strconv"

// Recognized values for enumerated keys.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"

	ProjectSat = "sat"
	ProjectSam = "sam"
)

// Kind describes how a key's value is interpreted and validated.
type Kind int

const (
	// KindString is a free-form string.
	KindString Kind = iota
	// KindHostname is a hostname string.
	KindHostname
	// KindInt is a base-10 integer.
	KindInt
	// KindPort is an integer in 1..65535, empty meaning unset.
	KindPort
	// KindBoolInt is a boolean written as the literal 0 or 1.
	KindBoolInt
	// KindEnum is one of a fixed set of values.
	KindEnum
	// KindURL is an absolute http or https URL.
	KindURL
	// KindPath is a filesystem path.
	KindPath
	// KindCommand is a shell command line.
	KindCommand
)

// KeySpec describes a single recognized section/key pair: how its value is
// typed, whether the operator must set it, and what it falls back to when
// absent or empty.
type KeySpec struct {
	Section  string
	Name     string
	Kind     Kind
	Required bool
	Default  string
	Enum     []string
}

// Path returns the dotted section.key form used in error messages and by
// the get command.
func (k KeySpec) Path() string {
	return k.Section + "." + k.Name
}

// Schema lists every key the test framework understands, in document order.
// Keys outside this list are tolerated but unused.
var Schema = []KeySpec{
	{Section: "main", Name: "server.hostname", Kind: KindHostname, Required: true},
	{Section: "main", Name: "server.scheme", Kind: KindEnum, Default: SchemeHTTPS, Enum: []string{SchemeHTTP, SchemeHTTPS}},
	{Section: "main", Name: "server.port", Kind: KindPort},
	{Section: "main", Name: "server.ssh.key_private", Kind: KindPath, Default: "/home/whoever/.ssh/id_hudson_dsa"},
	{Section: "main", Name: "server.ssh.username", Kind: KindString, Default: "root"},
	{Section: "main", Name: "screenshots.base_path", Kind: KindPath, Default: "/tmp/robottelo/screenshots/"},
	{Section: "main", Name: "project", Kind: KindEnum, Default: ProjectSat, Enum: []string{ProjectSat, ProjectSam}},
	{Section: "main", Name: "locale", Kind: KindString, Default: "en_US.UTF-8"},
	{Section: "main", Name: "remote", Kind: KindBoolInt, Default: "0"},
	{Section: "main", Name: "smoke", Kind: KindBoolInt, Default: "0"},
	{Section: "main", Name: "manifest.fake_url", Kind: KindURL, Default: "http://example.org/valid-redhat-manifest.zip"},
	{Section: "main", Name: "manifest.key_url", Kind: KindURL, Default: "http://example.org/fake_manifest.key"},
	{Section: "main", Name: "manifest.cert_url", Kind: KindURL, Default: "http://example.org/fake_manifest.crt"},
	{Section: "main", Name: "verbosity", Kind: KindInt, Default: "2"},
	{Section: "main", Name: "virtual_display", Kind: KindBoolInt, Default: "0"},
	{Section: "main", Name: "window_manager_command", Kind: KindCommand},
	{Section: "clients", Name: "provisioning_server", Kind: KindHostname},
	{Section: "clients", Name: "image_dir", Kind: KindPath, Default: "/opt/robottelo/images"},
	{Section: "docker", Name: "internal_url", Kind: KindURL, Default: "http://localhost:2375"},
	{Section: "docker", Name: "external_url", Kind: KindURL},
	{Section: "foreman", Name: "admin.username", Kind: KindString, Default: "admin"},
	{Section: "foreman", Name: "admin.password", Kind: KindString, Default: "changeme"},
	{Section: "saucelabs", Name: "driver", Kind: KindString, Default: "firefox"},
}

// LookupKey returns the KeySpec for a section/key pair, if it is recognized.
func LookupKey(section, name string) (KeySpec, bool) {
	for _, ks := range Schema {
		if ks.Section == section && ks.Name == name {
			return ks, true
		}
	}
	return KeySpec{}, false
}

// SectionNames returns the recognized section names in document order.
func SectionNames() []string {
	var names []string
	seen := map[string]bool{}
	for _, ks := range Schema {
		if !seen[ks.Section] {
			seen[ks.Section] = true
			names = append(names, ks.Section)
		}
	}
	return names
}

// Config is the effective configuration snapshot: defaults applied,
// environment overrides merged, placeholders substituted. It is handed to
// the rest of the system as an immutable value.
type Config struct {
	Main      MainConfig      `json:"main" yaml:"main"`
	Clients   ClientsConfig   `json:"clients" yaml:"clients"`
	Docker    DockerConfig    `json:"docker" yaml:"docker"`
	Foreman   ForemanConfig   `json:"foreman" yaml:"foreman"`
	SauceLabs SauceLabsConfig `json:"saucelabs" yaml:"saucelabs"`
}

// MainConfig holds the [main] section.
type MainConfig struct {
	ServerHostname       string `json:"server.hostname" yaml:"server.hostname"`
	ServerScheme         string `json:"server.scheme" yaml:"server.scheme"`
	ServerPort           int    `json:"server.port,omitempty" yaml:"server.port,omitempty"`
	SSHKeyPrivate        string `json:"server.ssh.key_private" yaml:"server.ssh.key_private"`
	SSHUsername          string `json:"server.ssh.username" yaml:"server.ssh.username"`
	ScreenshotsBasePath  string `json:"screenshots.base_path" yaml:"screenshots.base_path"`
	Project              string `json:"project" yaml:"project"`
	Locale               string `json:"locale" yaml:"locale"`
	Remote               bool   `json:"remote" yaml:"remote"`
	Smoke                bool   `json:"smoke" yaml:"smoke"`
	ManifestFakeURL      string `json:"manifest.fake_url" yaml:"manifest.fake_url"`
	ManifestKeyURL       string `json:"manifest.key_url" yaml:"manifest.key_url"`
	ManifestCertURL      string `json:"manifest.cert_url" yaml:"manifest.cert_url"`
	Verbosity            int    `json:"verbosity" yaml:"verbosity"`
	VirtualDisplay       bool   `json:"virtual_display" yaml:"virtual_display"`
	WindowManagerCommand string `json:"window_manager_command" yaml:"window_manager_command"`
}

// ClientsConfig holds the [clients] section.
type ClientsConfig struct {
	ProvisioningServer string `json:"provisioning_server" yaml:"provisioning_server"`
	ImageDir           string `json:"image_dir" yaml:"image_dir"`
}

// DockerConfig holds the [docker] section.
type DockerConfig struct {
	InternalURL string `json:"internal_url" yaml:"internal_url"`
	ExternalURL string `json:"external_url" yaml:"external_url"`
}

// ForemanConfig holds the [foreman] section.
type ForemanConfig struct {
	AdminUsername string `json:"admin.username" yaml:"admin.username"`
	AdminPassword string `json:"admin.password" yaml:"admin.password"`
}

// SauceLabsConfig holds the [saucelabs] section.
type SauceLabsConfig struct {
	Driver string `json:"driver" yaml:"driver"`
}

// BaseURL returns the server URL the tests run against, composed from the
// scheme, hostname and optional port of the [main] section.
func (c *Config) BaseURL() string {
	if c.Main.ServerHostname == "" {
		return ""
	}
	u := c.Main.ServerScheme + "://" + c.Main.ServerHostname
	if c.Main.ServerPort != 0 {
		u += ":" + strconv.Itoa(c.Main.ServerPort)
	}
	return u
}
