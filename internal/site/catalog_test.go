package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	demos, err := LoadCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, demos)

	for _, d := range demos {
		assert.NotEmpty(t, d.Slug)
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.Code, "demo %q has no snippet", d.Slug)
	}
}

func TestParseCatalog(t *testing.T) {
	demos, err := ParseCatalog([]byte(`
- slug: a
  title: A
  accept: [".png", "image/*"]
  max_files: 2
`))
	require.NoError(t, err)
	require.Len(t, demos, 1)
	assert.Equal(t, []string{".png", "image/*"}, demos[0].Accept)
	assert.Equal(t, 2, demos[0].MaxFiles)

	cfg := demos[0].Config("dark")
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "demo-a", cfg.Class)
	assert.Equal(t, 2, cfg.MaxFiles)
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not a list", "slug: a"},
		{"missing slug", "- title: A"},
		{"missing title", "- slug: a"},
		{"duplicate slug", "- {slug: a, title: A}\n- {slug: a, title: B}"},
		{"negative max", "- {slug: a, title: A, max_files: -1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
