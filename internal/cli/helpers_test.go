package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satelliteqe/roboconf/config"
)

// executeCommand runs the root command with the given args and returns the
// combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		// SetArgs(nil) would make cobra read os.Args
		args = []string{}
	}

	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return buf.String(), err
}

// writeFixture materializes the sample template in a temp dir, applying
// the given raw overrides first, and returns the file path.
func writeFixture(t *testing.T, overrides map[string]string) string {
	t.Helper()

	doc, err := config.Parse(config.Sample())
	require.NoError(t, err)

	for key, value := range overrides {
		section, name, ok := strings.Cut(key, ".")
		require.True(t, ok, "override key must be section.key")
		doc.Set(section, name, value)
	}

	path := filepath.Join(t.TempDir(), "robottelo.properties")
	require.NoError(t, doc.SaveTo(path))
	return path
}
