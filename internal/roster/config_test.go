package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbm-group/scorecard-cli/internal/model"
)

func writeRosterYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile_EmptyPathReturnsDefaults(t *testing.T) {
	r, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default().Len(), r.Len())
}

func TestLoadFile_AccountsReplaceDefaults(t *testing.T) {
	path := writeRosterYAML(t, `
accounts:
  - name: Acme
    vertical: Technology
  - name: Initech
`)
	r, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, model.VerticalTechnology, r.Vertical("Acme"))
	// Missing vertical falls back to Other.
	assert.Equal(t, model.VerticalOther, r.Vertical("Initech"))
	assert.False(t, r.Contains("Nike"))
}

func TestLoadFile_VariantsOverlayDefaults(t *testing.T) {
	path := writeRosterYAML(t, `
variants:
  Acme HQ: Acme
  Scratch Account: null
`)
	r, err := LoadFile(path)
	require.NoError(t, err)

	got, ok := r.Resolve("Acme HQ")
	require.True(t, ok)
	assert.Equal(t, "Acme", got)

	_, ok = r.Resolve("Scratch Account")
	assert.False(t, ok, "null variant marks the label excluded")

	// Built-in variants survive the overlay.
	got, ok = r.Resolve("Boeing")
	require.True(t, ok)
	assert.Equal(t, "Boeing Company", got)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := writeRosterYAML(t, "accounts: {not: a list}")
	_, err = LoadFile(bad)
	require.Error(t, err)
}
