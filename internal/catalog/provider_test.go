package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pocs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validCatalog = `{
  "pocs": [
    {"id": "poc-a", "name": "Alpha", "status": "active", "version": "1.0.0"},
    {"id": "poc-b", "name": "Beta", "status": "development"}
  ]
}`

func TestFileProviderList(t *testing.T) {
	provider := NewFileProvider(writeCatalog(t, validCatalog))

	pocs, err := provider.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pocs, 2)
	// File order is preserved.
	assert.Equal(t, "poc-a", pocs[0].ID)
	assert.Equal(t, "poc-b", pocs[1].ID)
	assert.Equal(t, "development", pocs[1].Status)
}

func TestFileProviderMissingFile(t *testing.T) {
	provider := NewFileProvider(filepath.Join(t.TempDir(), "absent.json"))

	_, err := provider.List(context.Background())
	assert.Error(t, err)
}

func TestFileProviderMalformedJSON(t *testing.T) {
	provider := NewFileProvider(writeCatalog(t, `{"pocs": [`))

	_, err := provider.List(context.Background())
	assert.Error(t, err)
}

func TestFileProviderDuplicateID(t *testing.T) {
	provider := NewFileProvider(writeCatalog(t, `{
  "pocs": [
    {"id": "poc-a", "name": "Alpha", "status": "active"},
    {"id": "poc-a", "name": "Alpha again", "status": "active"}
  ]
}`))

	_, err := provider.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestFileProviderInvalidRecord(t *testing.T) {
	for name, content := range map[string]string{
		"missing id":     `{"pocs": [{"name": "Alpha", "status": "active"}]}`,
		"missing name":   `{"pocs": [{"id": "poc-a", "status": "active"}]}`,
		"unknown status": `{"pocs": [{"id": "poc-a", "name": "Alpha", "status": "paused"}]}`,
	} {
		provider := NewFileProvider(writeCatalog(t, content))
		_, err := provider.List(context.Background())
		assert.Error(t, err, name)
	}
}

func TestFileProviderPicksUpChanges(t *testing.T) {
	path := writeCatalog(t, validCatalog)
	provider := NewFileProvider(path)

	pocs, err := provider.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pocs, 2)

	// The file is re-read per request, not cached.
	require.NoError(t, os.WriteFile(path, []byte(`{"pocs": [{"id": "poc-c", "name": "Gamma", "status": "active"}]}`), 0o600))
	pocs, err = provider.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pocs, 1)
	assert.Equal(t, "poc-c", pocs[0].ID)
}
