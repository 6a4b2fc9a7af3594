package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFromEnv(t *testing.T) {
	t.Setenv("SECRETS_TEST_KEY", "  hunter2  ")

	v, found := Resolve(Source{Env: "SECRETS_TEST_KEY"})
	assert.True(t, found)
	assert.Equal(t, "hunter2", v)
}

func TestResolveEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(path, []byte("from-file"), 0o600))
	t.Setenv("SECRETS_TEST_KEY", "from-env")

	v, found := Resolve(Source{Env: "SECRETS_TEST_KEY", File: path})
	assert.True(t, found)
	assert.Equal(t, "from-env", v)
}

func TestResolveFallsBackToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0o600))
	t.Setenv("SECRETS_TEST_KEY", "")

	v, found := Resolve(Source{Env: "SECRETS_TEST_KEY", File: path})
	assert.True(t, found)
	assert.Equal(t, "from-file", v)
}

func TestResolveNotFound(t *testing.T) {
	t.Setenv("SECRETS_TEST_KEY", "")

	tests := []struct {
		name string
		src  Source
	}{
		{"empty source", Source{}},
		{"env unset", Source{Env: "SECRETS_TEST_KEY"}},
		{"file missing", Source{File: filepath.Join(t.TempDir(), "nope")}},
		{"file whitespace only", Source{File: mustWrite(t, "  \n")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, found := Resolve(tc.src)
			assert.False(t, found)
			assert.Empty(t, v)
		})
	}
}

func mustWrite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
