package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTopicKeywords_BuiltinDefault(t *testing.T) {
	kws, err := LoadTopicKeywords("")
	require.NoError(t, err)
	assert.Contains(t, kws, "tarantula")
	assert.Contains(t, kws, "ทารันทูล่า")
	assert.Contains(t, kws, "ความชื้น")
}

func TestLoadTopicKeywords_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := "keywords:\n  - spider\n  - \"  \"\n  - แมงมุม\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	kws, err := LoadTopicKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"spider", "แมงมุม"}, kws)
}

func TestLoadTopicKeywords_MissingFile(t *testing.T) {
	_, err := LoadTopicKeywords(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadTopicKeywords_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keywords: []\n"), 0o600))
	_, err := LoadTopicKeywords(path)
	assert.ErrorContains(t, err, "no keywords")
}

func TestLoadTopicKeywords_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t not yaml ["), 0o600))
	_, err := LoadTopicKeywords(path)
	assert.Error(t, err)
}
