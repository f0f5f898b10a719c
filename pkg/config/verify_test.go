package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacenexus/nexusfeed/pkg/registry"
)

func TestVerifyAgainstSchema(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		assert.NoError(t, VerifyAgainstSchema(Default()))
	})

	t.Run("configured sources pass", func(t *testing.T) {
		cfg := Default()
		cfg.Sources = []registry.Entry{
			{Slug: "spacenews", Name: "SpaceNews", URL: "https://spacenews.com", AuthorType: "journalist"},
		}
		assert.NoError(t, VerifyAgainstSchema(cfg))
	})

	t.Run("empty listen", func(t *testing.T) {
		cfg := Default()
		cfg.Server.Listen = ""
		err := VerifyAgainstSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen is required")
	})

	t.Run("source without name", func(t *testing.T) {
		cfg := Default()
		cfg.Sources = []registry.Entry{{Slug: "x", URL: "https://x.example.com", AuthorType: "engineer"}}
		err := VerifyAgainstSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sources[0].name is required")
	})

	t.Run("author type outside enum", func(t *testing.T) {
		cfg := Default()
		cfg.Sources = []registry.Entry{{Slug: "x", Name: "X", URL: "https://x.example.com", AuthorType: "pilot"}}
		err := VerifyAgainstSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sources[0].author_type")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"server", "database", "fetch", "sources"} {
		assert.Contains(t, props, key)
	}

	fetch, ok := props["fetch"].(map[string]any)
	require.True(t, ok)
	fetchProps, ok := fetch["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fetchProps, "schedule")
	assert.Contains(t, fetchProps, "max_items")
}
