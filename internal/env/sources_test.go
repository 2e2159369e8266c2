package env

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	doc := `WebsiteURL: https://example.com
Nested:
  Inner: dropped
List: [a, b]
true: boolean key
42: answer
Empty: null
Tilde: ~
Flag: true
Port: 8080
Quoted: "with \"quotes\""
`
	m, err := ParseYAML([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"WebsiteURL", "42", "Empty", "Tilde", "Flag", "Port", "Quoted"}, m.Keys())

	want := map[string]string{
		"WebsiteURL": "https://example.com",
		"42":         "answer",
		"Empty":      "",
		"Tilde":      "",
		"Flag":       "true",
		"Port":       "8080",
		"Quoted":     `with "quotes"`,
	}
	for key, value := range want {
		got, ok := m.Get(key)
		assert.True(t, ok, "key %s", key)
		assert.Equal(t, value, got, "key %s", key)
	}
}

func TestParseYAMLNonMapping(t *testing.T) {
	for _, doc := range []string{"", "# only a comment\n", "- a\n- b\n", "just a string\n"} {
		m, err := ParseYAML([]byte(doc))
		require.NoError(t, err, "doc %q", doc)
		assert.Zero(t, m.Len(), "doc %q", doc)
	}
}

func TestParseYAMLAliases(t *testing.T) {
	m, err := ParseYAML([]byte("DBUser: &user admin\nAdminUser: *user\n"))
	require.NoError(t, err)
	v, _ := m.Get("AdminUser")
	assert.Equal(t, "admin", v)
}

func TestParseYAMLSyntaxError(t *testing.T) {
	_, err := ParseYAML([]byte("key: [unclosed\n"))
	assert.Error(t, err)
}

func TestLoadMissingFilesAreEmpty(t *testing.T) {
	dir := t.TempDir()

	y, err := LoadYAMLFile(filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)
	assert.Zero(t, y.Len())

	e, err := LoadEnvFile(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Zero(t, e.Len())
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# c\r\nA=1\r\nB=\"two words\"\r\nnot a var\r\n"), 0644))

	m, err := LoadEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, m.Keys())
	b, _ := m.Get("B")
	assert.Equal(t, "two words", b)
}

func TestLoadDirectoryIsReadError(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadYAMLFile(dir)
	var readErr *ReadError
	require.True(t, errors.As(err, &readErr), "got %v", err)
	assert.Equal(t, dir, readErr.Path)

	_, err = LoadEnvFile(dir)
	assert.True(t, errors.As(err, &readErr), "got %v", err)
}

func TestLoadUnreadableFileIsReadError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("A=1\n"), 0000))

	_, err := LoadEnvFile(path)
	var readErr *ReadError
	assert.True(t, errors.As(err, &readErr), "got %v", err)
}

func TestLoadInvalidYAMLIsReadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.yml")
	require.NoError(t, os.WriteFile(path, []byte("a: [b\n"), 0644))

	_, err := LoadYAMLFile(path)
	var readErr *ReadError
	require.True(t, errors.As(err, &readErr), "got %v", err)
	assert.Contains(t, err.Error(), "invalid YAML")
}

func TestRequirePath(t *testing.T) {
	p, err := RequirePath("env file", "  .env ")
	require.NoError(t, err)
	assert.Equal(t, ".env", p)

	_, err = RequirePath("env file", " \t")
	assert.ErrorIs(t, err, ErrEmptyPath)
	assert.EqualError(t, err, "empty file path provided for env file")
}
