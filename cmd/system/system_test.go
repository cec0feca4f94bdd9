package system

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "emtaxi"}
	root.PersistentFlags().String("config", "config.yaml", "config file")
	root.AddCommand(NewSystemCommand())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestCheckConfig_Defaults(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "config.yaml"), "system", "check-config"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "mailbox:       contact@emtaxi.fr")
	assert.Contains(t, out.String(), "smtp:          localhost:1025 enabled=true")
	assert.Contains(t, out.String(), "service types: 8")
}

func TestCheckConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("contact:\n  operator_mailbox: \"\"\n"), 0o600))

	root, _ := newRoot(t)
	root.SetArgs([]string{"--config", filepath.Join(dir, "config.yaml"), "system", "check-config"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operator_mailbox")
}

func TestGenDocs(t *testing.T) {
	for _, tt := range []struct {
		format string
		file   string
	}{
		{"markdown", "emtaxi_system_gendocs.md"},
		{"man", "emtaxi-system-gendocs.1"},
	} {
		t.Run(tt.format, func(t *testing.T) {
			dir := t.TempDir()
			root, _ := newRoot(t)
			root.SetArgs([]string{"system", "gendocs", "--outdir", dir, "--format", tt.format})

			require.NoError(t, root.Execute())
			assert.FileExists(t, filepath.Join(dir, tt.file))
		})
	}
}

func TestGenDocs_UnknownFormat(t *testing.T) {
	root, _ := newRoot(t)
	root.SetArgs([]string{"system", "gendocs", "--outdir", t.TempDir(), "--format", "html"})
	assert.Error(t, root.Execute())
}
